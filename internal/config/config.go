// Package config loads rpgstate settings from the environment
package config

import (
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-state/internal/codec"
	"github.com/KirkDiggler/rpg-state/internal/errors"
	"github.com/KirkDiggler/rpg-state/internal/pkg/logging"
)

// Config holds settings shared by every command
type Config struct {
	// Format is the default document format for output
	Format string `env:"RPGSTATE_FORMAT" envDefault:"json"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"RPGSTATE_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the format and log level are known, accepting the
// same spellings as the --format and --log-level flags
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if _, err := codec.ParseFormat(c.Format); err != nil {
		vb.Fieldf("RPGSTATE_FORMAT", "must be one of: %s", strings.Join(codec.Formats(), ", "))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		vb.Fieldf("RPGSTATE_LOG_LEVEL", "must be one of: %s", strings.Join(logging.Levels(), ", "))
	}
	return vb.Build()
}

// OutputFormat returns the configured format
func (c *Config) OutputFormat() (codec.Format, error) {
	return codec.ParseFormat(c.Format)
}
