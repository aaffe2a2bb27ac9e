package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/lamps/internal/paths"
	"github.com/mesh-intelligence/lamps/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "LAMPS"

	cfgKeyLamps    = "lamps"
	cfgKeyEntry    = "entry"
	cfgKeyDelay    = "delay"
	cfgKeyLogLevel = "log_level"
)

// flagKeys maps command flags onto config keys.
var flagKeys = map[string]string{
	"entry":     cfgKeyEntry,
	"delay":     cfgKeyDelay,
	"log-level": cfgKeyLogLevel,
}

// loadConfig resolves the config directory and merges, lowest first:
// built-in defaults, config.yaml, LAMPS_* environment, and changed flags.
// A missing config.yaml is not an error.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("%w: resolve config dir: %w", errSystem, err)
	}

	v := viper.New()
	def := types.DefaultConfig()
	v.SetDefault(cfgKeyLamps, def.Lamps)
	v.SetDefault(cfgKeyEntry, def.Entry)
	v.SetDefault(cfgKeyDelay, def.Delay.String())
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return types.Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	delay, err := time.ParseDuration(v.GetString(cfgKeyDelay))
	if err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w: %w", types.ErrDelayInvalid, err)
	}

	cfg := types.Config{
		Lamps:    lampNames(v),
		Entry:    v.GetString(cfgKeyEntry),
		Delay:    delay,
		LogLevel: v.GetString(cfgKeyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// lampNames reads the lamp list. A plain string, as supplied through
// LAMPS_LAMPS, is split on commas so names may contain spaces.
func lampNames(v *viper.Viper) []string {
	s, ok := v.Get(cfgKeyLamps).(string)
	if !ok {
		return v.GetStringSlice(cfgKeyLamps)
	}
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
