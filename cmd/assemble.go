package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/notesmgr/notectx/internal/assemble"
	"github.com/notesmgr/notectx/internal/budget"
	"github.com/notesmgr/notectx/internal/utils"
)

var (
	asmDetail  string
	asmFocus   string
	asmTokens  int
	asmSummary bool
	asmOutput  string
)

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble the project context document",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		// Flags left at their defaults fall back to config.
		if !cmd.Flags().Changed("detail") && c.DefaultDetail != "" {
			asmDetail = c.DefaultDetail
		}
		if !cmd.Flags().Changed("tokens") && c.DefaultMaxTokens > 0 {
			asmTokens = c.DefaultMaxTokens
		}
		detail, err := parseDetail(asmDetail)
		if err != nil {
			return err
		}
		a := buildAssembler()

		if asmSummary {
			s, err := a.Summarize(detail, budget.FocusArea(asmFocus))
			if err != nil {
				return err
			}
			out, err := utils.PrettyJSON(s)
			if err != nil {
				return err
			}
			return writeOutput(asmOutput, append(out, '\n'))
		}

		doc, err := a.Assemble(assemble.Request{
			Detail:    detail,
			Focus:     budget.FocusArea(asmFocus),
			MaxTokens: asmTokens,
		})
		if err != nil {
			return err
		}
		return writeOutput(asmOutput, []byte(doc))
	},
}

// writeOutput prints to stdout, or saves to a file when path is set.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := utils.SafeWriteFile(path, data); err != nil {
		return err
	}
	fmt.Printf("✓ Wrote context to %s\n", path)
	return nil
}

func init() {
	rootCmd.AddCommand(assembleCmd)
	assembleCmd.Flags().StringVar(&asmDetail, "detail", "standard", "detail level (minimal, standard, comprehensive)")
	assembleCmd.Flags().StringVar(&asmFocus, "focus", "", "focus area (general, architecture, knowledge_graph, workflow, agent)")
	assembleCmd.Flags().IntVar(&asmTokens, "tokens", 8000, "maximum tokens for the context")
	assembleCmd.Flags().BoolVar(&asmSummary, "summary", false, "print a JSON summary of available context instead of the document")
	assembleCmd.Flags().StringVarP(&asmOutput, "output", "o", "", "write output to file instead of stdout")
}
