package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "knackspec.yaml"

type Config struct {
	Schema    string     `koanf:"schema"`
	OutputDir string     `koanf:"output-dir"`
	Validate  bool       `koanf:"validate"`
	Info      InfoConfig `koanf:"info"`
}

type InfoConfig struct {
	Title   string `koanf:"title"`
	Version string `koanf:"version"`
}

// BindFlags binds the generate command's flags.
func BindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP("config", "c", "", "Config file path (default: knackspec.yaml)")
	flags.StringP("schema", "s", "", "Application schema path or URL")
	flags.StringP("output-dir", "o", "", "Output directory for generated documents")
	flags.String("title", "", "Override the generated info.title")
	flags.String("api-version", "", "Override the generated info.version")
	flags.Bool("no-validate", false, "Skip validating the generated document")
	flags.Bool("dry-run", false, "Print the JSON document without writing files")
}

// Load merges defaults, an optional knackspec.yaml, and flag
// overrides, lowest to highest precedence.
func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"schema":     "knack-schema.json",
		"output-dir": "openapi",
		"validate":   true,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			configFile = defaultConfigFile
		}
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.CheckValid(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)
	flags := cmd.Flags()

	if v, err := flags.GetString("schema"); err == nil && v != "" {
		m["schema"] = v
	}
	if v, err := flags.GetString("output-dir"); err == nil && v != "" {
		m["output-dir"] = v
	}
	if v, err := flags.GetString("title"); err == nil && v != "" {
		m["info.title"] = v
	}
	if v, err := flags.GetString("api-version"); err == nil && v != "" {
		m["info.version"] = v
	}
	if flags.Changed("no-validate") {
		if v, err := flags.GetBool("no-validate"); err == nil {
			m["validate"] = !v
		}
	}

	return m
}

func (c *Config) CheckValid() error {
	if c.Schema == "" {
		return fmt.Errorf("schema source is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	return nil
}
