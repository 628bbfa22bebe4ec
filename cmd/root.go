package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/notesmgr/notectx/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired later to config/viper)
	cfgFile  string
	flagRoot string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "notectx",
	Short: "notectx: token-budgeted project context for a notes assistant",
	Long:  `notectx assembles a project's README, architecture document, glossary, and markdown snapshots into one context document that fits a token budget, and handles the knowledge-graph bookkeeping around them.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.notectx/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "project root directory (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("root") && flagRoot != "" {
		cfg.ProjectRoot = flagRoot
	}
}
