package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/notesmgr/notectx/internal/store"
)

var (
	snapType  string
	snapLevel string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage project snapshots",
}

var snapshotAddCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "File a markdown snapshot under a type and hierarchy level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := parseLevel(snapLevel)
		if err != nil {
			return err
		}
		typ := store.SnapshotType(snapType)
		known := false
		for _, t := range store.DefaultTypes() {
			if t == typ {
				known = true
				break
			}
		}
		if !known {
			fmt.Fprintf(os.Stderr, "⚠ Warning: snapshot type %q is not in standard types, filing anyway\n", snapType)
		}
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}
		path, err := buildStore().SaveSnapshot(typ, level, string(content), time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("✓ Snapshot added: %s\n", path)
		return nil
	},
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the latest snapshot per type and level",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := buildStore()
		types, err := s.SnapshotTypes()
		if err != nil {
			return err
		}
		found := false
		for _, typ := range types {
			for _, level := range store.Levels() {
				snap, ok, err := s.LatestSnapshot(typ, level)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
				fmt.Printf("- %s/%s: %s (%d tokens, updated %s)\n",
					typ, level, filepath.Base(snap.Path), snap.Tokens, snap.ModTime.Format("2006-01-02 15:04:05"))
				found = true
			}
		}
		if !found {
			fmt.Println("(no snapshots)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotAddCmd)
	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotAddCmd.Flags().StringVar(&snapType, "type", string(store.TypeGeneral), "snapshot type (general, architecture, knowledge_graph, workflow)")
	snapshotAddCmd.Flags().StringVar(&snapLevel, "level", string(store.LevelStandard), "hierarchy level (summary, standard, detailed)")
}
