package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/notesmgr/notectx/internal/graph"
	"github.com/notesmgr/notectx/internal/utils"
)

var (
	geName         string
	geType         string
	geObservations []string

	grFrom string
	grTo   string
	grType string

	gexOutput string
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Talk to the knowledge-graph backend",
}

// printEnvelope renders a graph response envelope as indented JSON.
// A failed envelope still exits zero; the failure lives in the payload.
func printEnvelope(v any) error {
	out, err := utils.PrettyJSON(v)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

var graphCreateEntityCmd = &cobra.Command{
	Use:   "create-entity",
	Short: "Create an entity in the knowledge graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildGraphService()
		if err != nil {
			return err
		}
		return printEnvelope(svc.CreateEntity(cmd.Context(), geName, geType, geObservations))
	},
}

var graphCreateRelationshipCmd = &cobra.Command{
	Use:   "create-relationship",
	Short: "Create a relationship between two entities",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildGraphService()
		if err != nil {
			return err
		}
		return printEnvelope(svc.CreateRelationship(cmd.Context(), grFrom, grTo, grType))
	},
}

var graphSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search entities in the knowledge graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildGraphService()
		if err != nil {
			return err
		}
		return printEnvelope(svc.SearchEntities(cmd.Context(), args[0]))
	},
}

var graphGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Fetch an entity by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildGraphService()
		if err != nil {
			return err
		}
		return printEnvelope(svc.GetEntity(cmd.Context(), args[0]))
	},
}

var graphRelationshipsCmd = &cobra.Command{
	Use:   "relationships <name>",
	Short: "List the relationships touching an entity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildGraphService()
		if err != nil {
			return err
		}
		return printEnvelope(svc.GetEntityRelationships(cmd.Context(), args[0]))
	},
}

var graphExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a knowledge-graph snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildGraphService()
		if err != nil {
			return err
		}
		res := svc.ExportSnapshot(cmd.Context())
		if gexOutput != "" && res.Success && res.Snapshot != nil {
			out, err := utils.PrettyJSON(res.Snapshot)
			if err != nil {
				return err
			}
			if err := utils.EnsureDir(filepath.Dir(gexOutput)); err != nil {
				return err
			}
			if err := utils.SafeWriteFile(gexOutput, append(out, '\n')); err != nil {
				return err
			}
			fmt.Printf("✓ Snapshot exported: %s\n", gexOutput)
			return nil
		}
		return printEnvelope(res)
	},
}

var graphImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a knowledge-graph snapshot from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}
		var doc graph.SnapshotDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("decode snapshot: %w", err)
		}
		svc, err := buildGraphService()
		if err != nil {
			return err
		}
		return printEnvelope(svc.ImportSnapshot(cmd.Context(), doc))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.AddCommand(graphCreateEntityCmd)
	graphCmd.AddCommand(graphCreateRelationshipCmd)
	graphCmd.AddCommand(graphSearchCmd)
	graphCmd.AddCommand(graphGetCmd)
	graphCmd.AddCommand(graphRelationshipsCmd)
	graphCmd.AddCommand(graphExportCmd)
	graphCmd.AddCommand(graphImportCmd)

	graphCreateEntityCmd.Flags().StringVar(&geName, "name", "", "entity name")
	graphCreateEntityCmd.Flags().StringVar(&geType, "type", "", "entity type")
	graphCreateEntityCmd.Flags().StringArrayVar(&geObservations, "observation", nil, "observation about the entity (repeatable)")
	graphCreateRelationshipCmd.Flags().StringVar(&grFrom, "from", "", "source entity name")
	graphCreateRelationshipCmd.Flags().StringVar(&grTo, "to", "", "target entity name")
	graphCreateRelationshipCmd.Flags().StringVar(&grType, "type", "", "relationship type")
	graphExportCmd.Flags().StringVarP(&gexOutput, "output", "o", "", "write the snapshot JSON to file")
}
