// Package config defines the configuration structures of the atomtype tool.
// No I/O or parsing logic lives here, only plain data types and validation.
package config

import (
	"fmt"

	"github.com/turtacn/KeyIP-AtomType/internal/infrastructure/monitoring/logging"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// LogConfig controls structured logging.
type LogConfig struct {
	Level       string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format      string   `mapstructure:"format"` // "json" | "console"
	OutputPaths []string `mapstructure:"output_paths"`
}

// PerceptionConfig controls batch perception.
type PerceptionConfig struct {
	// Concurrency is the number of molecules perceived in parallel.
	Concurrency int `mapstructure:"concurrency"`

	// FailFast stops a batch at the first molecule with a failed atom.
	FailFast bool `mapstructure:"fail_fast"`
}

// MetricsConfig controls Prometheus metrics.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`

	// Addr is the listen address of the /metrics endpoint; empty disables
	// serving while metrics are still recorded.
	Addr string `mapstructure:"addr"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration.
type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Perception PerceptionConfig `mapstructure:"perception"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// NewDefaultConfig returns a Config with every default applied.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// LoggingConfig converts the log section for logging.NewLogger.
func (c *Config) LoggingConfig() logging.LogConfig {
	return logging.LogConfig{
		Level:       logging.Level(c.Log.Level),
		Format:      c.Log.Format,
		OutputPaths: c.Log.OutputPaths,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config and
// returns the first error encountered.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	if c.Perception.Concurrency < 1 {
		return fmt.Errorf("config: perception.concurrency must be ≥ 1, got %d", c.Perception.Concurrency)
	}

	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("config: metrics.namespace is required when metrics are enabled")
	}
	return nil
}

//Personal.AI order the ending
