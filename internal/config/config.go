package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	ProjectRoot      string `mapstructure:"project_root" yaml:"project_root"`
	ContextDir       string `mapstructure:"context_dir" yaml:"context_dir"`
	ProjectName      string `mapstructure:"project_name" yaml:"project_name"`
	DefaultDetail    string `mapstructure:"default_detail" yaml:"default_detail"`
	DefaultMaxTokens int    `mapstructure:"default_max_tokens" yaml:"default_max_tokens"`

	// Knowledge graph
	GraphBackend       string   `mapstructure:"graph_backend" yaml:"graph_backend"`
	PromotionThreshold int      `mapstructure:"promotion_threshold" yaml:"promotion_threshold"`
	EntityTypes        []string `mapstructure:"entity_types" yaml:"entity_types"`
	RelationshipTypes  []string `mapstructure:"relationship_types" yaml:"relationship_types"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.notectx/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".notectx")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("NOTECTX")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("project_root", ".")
	v.SetDefault("context_dir", "context")
	v.SetDefault("project_name", "Notes Manager 2")
	v.SetDefault("default_detail", "standard")
	v.SetDefault("default_max_tokens", 8000)
	v.SetDefault("graph_backend", "stub")
	v.SetDefault("promotion_threshold", 2)
	v.SetDefault("entity_types", []string{})
	v.SetDefault("relationship_types", []string{})

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".notectx")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
