package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/lamps/internal/paths"
	"github.com/mesh-intelligence/lamps/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Lamps    []string `yaml:"lamps"`
	Entry    string   `yaml:"entry,omitempty"`
	Delay    string   `yaml:"delay"`
	LogLevel string   `yaml:"log_level"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and write config.yaml with the\nnine-lamp chain unless the file already exists.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return fmt.Errorf("%w: resolve config dir: %w", errSystem, err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("%w: create config directory: %w", errSystem, err)
	}

	path := paths.ConfigFile(configDir)
	written, err := writeConfigIfMissing(path, types.DefaultConfig())
	if err != nil {
		return fmt.Errorf("%w: write config: %w", errSystem, err)
	}

	if written {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
	}
	return nil
}

// writeConfigIfMissing creates the file at path from cfg if it does not exist.
// It reports whether the file was written.
func writeConfigIfMissing(path string, cfg types.Config) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&configFile{
		Lamps:    cfg.Lamps,
		Entry:    cfg.Entry,
		Delay:    cfg.Delay.String(),
		LogLevel: cfg.LogLevel,
	})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	return true, os.WriteFile(path, data, 0o644)
}
