// Package logging builds the structured loggers used by commands
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-state/internal/errors"
)

// Levels returns the accepted level names
func Levels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ParseLevel converts a level name to a slog.Level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", name).
			WithMeta("supported", Levels())
	}
}

// New returns a text logger writing to w at the named level
func New(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
