package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/notesmgr/notectx/internal/store"
	"github.com/notesmgr/notectx/internal/utils"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the context directory layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := buildStore()
		if err := s.Scaffold(store.DefaultTypes()); err != nil {
			return err
		}
		// Seed starter documents, but never touch existing ones.
		seeds := []struct {
			path    string
			content string
		}{
			{s.DocumentPath(store.DocArchitecture), "# Architecture\n\n## Architecture Overview\n\nDescribe the system here.\n"},
			{s.DocumentPath(store.DocGlossary), "# Glossary\n\nDefine project terms here.\n"},
		}
		for _, seed := range seeds {
			if _, err := os.Stat(seed.path); err == nil {
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("stat %s: %w", seed.path, err)
			}
			if err := utils.SafeWriteFile(seed.path, []byte(seed.content)); err != nil {
				return err
			}
		}
		fmt.Printf("✓ Context initialized: %s\n", s.ContextDir())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
