package config

import (
	"runtime"

	"github.com/spf13/viper"
)

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	DefaultPerceptionConcurrency = 4

	DefaultMetricsNamespace = "atomtype"
)

// DefaultLogOutput is stderr so that reports on stdout stay machine-readable.
var DefaultLogOutput = []string{"stderr"}

// ApplyDefaults fills every zero-value field in cfg with its default.  Fields
// already set are left unchanged so that explicit configuration always wins.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = append([]string(nil), DefaultLogOutput...)
	}

	// ── Perception ────────────────────────────────────────────────────────────
	if cfg.Perception.Concurrency == 0 {
		cfg.Perception.Concurrency = min(DefaultPerceptionConcurrency, runtime.NumCPU())
	}

	// ── Metrics ───────────────────────────────────────────────────────────────
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
}

// setViperDefaults registers every key with v so that environment variables
// are honoured even when no config file mentions the key.
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.output_paths", DefaultLogOutput)
	v.SetDefault("perception.concurrency", 0)
	v.SetDefault("perception.fail_fast", false)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.namespace", DefaultMetricsNamespace)
	v.SetDefault("metrics.addr", "")
}

//Personal.AI order the ending
