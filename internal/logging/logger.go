// Package logging builds the slog loggers used by the lamps CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/lamps/pkg/types"
)

// New creates a text logger writing to w. Stdout belongs to the lamp
// narration, so callers pass stderr. The "error" key is written as "err".
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a config log level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch name {
	case types.LogLevelDebug:
		return slog.LevelDebug, nil
	case types.LogLevelInfo, "":
		return slog.LevelInfo, nil
	case types.LogLevelWarn:
		return slog.LevelWarn, nil
	case types.LogLevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", types.ErrLogLevelUnknown, name)
	}
}
