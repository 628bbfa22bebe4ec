package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/notesmgr/notectx/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set notectx configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("project_root: %s\n", cfg.ProjectRoot)
		fmt.Printf("context_dir: %s\n", cfg.ContextDir)
		fmt.Printf("project_name: %s\n", cfg.ProjectName)
		fmt.Printf("default_detail: %s\n", cfg.DefaultDetail)
		fmt.Printf("default_max_tokens: %d\n", cfg.DefaultMaxTokens)
		fmt.Printf("graph_backend: %s\n", cfg.GraphBackend)
		fmt.Printf("promotion_threshold: %d\n", cfg.PromotionThreshold)
		if len(cfg.EntityTypes) > 0 {
			fmt.Printf("entity_types: %s\n", strings.Join(cfg.EntityTypes, ", "))
		}
		if len(cfg.RelationshipTypes) > 0 {
			fmt.Printf("relationship_types: %s\n", strings.Join(cfg.RelationshipTypes, ", "))
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "project_root":
			cfg.ProjectRoot = val
		case "context_dir":
			cfg.ContextDir = val
		case "project_name":
			cfg.ProjectName = val
		case "default_detail":
			if _, err := parseDetail(val); err != nil {
				return err
			}
			cfg.DefaultDetail = val
		case "default_max_tokens":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for default_max_tokens: %v", val)
			}
			cfg.DefaultMaxTokens = i
		case "graph_backend":
			cfg.GraphBackend = val
		case "promotion_threshold":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for promotion_threshold: %v", val)
			}
			cfg.PromotionThreshold = i
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
