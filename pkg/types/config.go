package types

import (
	"fmt"
	"time"
)

// Config holds the chain layout and demo pacing used by the lamps CLI.
type Config struct {
	// Lamps lists lamp names in chain order.
	Lamps []string `json:"lamps" yaml:"lamps"`

	// Entry names the lamp the ripple starts from. Empty means the last lamp.
	Entry string `json:"entry,omitempty" yaml:"entry,omitempty"`

	// Delay is the pause after each lamp actually switches.
	Delay time.Duration `json:"delay" yaml:"delay"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Supported log level names.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// DefaultDelay matches the pacing of the nine-lamp demo.
const DefaultDelay = time.Second

// DefaultLampNames returns the nine-lamp demo chain, "Lamp A" through "Lamp I".
func DefaultLampNames() []string {
	names := make([]string, 0, 9)
	for c := 'A'; c <= 'I'; c++ {
		names = append(names, "Lamp "+string(c))
	}
	return names
}

// DefaultConfig returns the configuration of the reference scenario.
func DefaultConfig() Config {
	return Config{
		Lamps:    DefaultLampNames(),
		Delay:    DefaultDelay,
		LogLevel: LogLevelInfo,
	}
}

var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package, wrapped with the offending value where useful.
func (c Config) Validate() error {
	if len(c.Lamps) == 0 {
		return ErrEmptyChain
	}
	seen := make(map[string]bool, len(c.Lamps))
	for _, name := range c.Lamps {
		if seen[name] {
			return fmt.Errorf("%w: %q", ErrDuplicateLamp, name)
		}
		seen[name] = true
	}
	if c.Entry != "" && !seen[c.Entry] {
		return fmt.Errorf("entry %q: %w", c.Entry, ErrLampNotFound)
	}
	if c.Delay < 0 {
		return ErrDelayNegative
	}
	if !knownLogLevels[c.LogLevel] {
		return fmt.Errorf("%w: %q", ErrLogLevelUnknown, c.LogLevel)
	}
	return nil
}

// EntryName returns the configured entry lamp, defaulting to the last lamp.
func (c Config) EntryName() string {
	if c.Entry != "" || len(c.Lamps) == 0 {
		return c.Entry
	}
	return c.Lamps[len(c.Lamps)-1]
}
