// Package config provides configuration management for the datamodel CLI.
//
// Settings come from four layers, lowest to highest precedence:
// built-in defaults, a datamodel.yaml config file, DATAMODEL_*
// environment variables, and command-line flags.
package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/datamodel/internal/cli/output"
)

// Config holds all CLI configuration options.
type Config struct {
	Output  string `koanf:"output"`
	NoColor bool   `koanf:"no_color"`
	Verbose bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultOutput = "auto" // auto-detect: TTY=text, piped=markdown
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !output.Mode(c.Output).Valid() {
		return fmt.Errorf("invalid output mode %q (valid: auto, text, markdown, json, csv)", c.Output)
	}
	return nil
}

type configKey struct{}

// NewContext returns a context carrying the config.
func NewContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config from the context, or a default
// config if none was stored.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey{}).(*Config); ok {
		return cfg
	}
	return &Config{Output: DefaultOutput}
}

type loggerKey struct{}

// WithLogger returns a context carrying the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger retrieves the logger from the context, or slog.Default if
// none was stored.
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
