package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYAML = `
log:
  level: debug
  format: json
  output_paths: ["stdout"]
perception:
  concurrency: 8
  fail_fast: true
metrics:
  enabled: true
  namespace: chem
  addr: ":9102"
`

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FromFile_ValidConfig(t *testing.T) {
	cfg, err := Load(createTempConfigFile(t, validConfigYAML))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"stdout"}, cfg.Log.OutputPaths)
	assert.Equal(t, 8, cfg.Perception.Concurrency)
	assert.True(t, cfg.Perception.FailFast)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "chem", cfg.Metrics.Namespace)
	assert.Equal(t, ":9102", cfg.Metrics.Addr)
}

func TestLoad_FromFile_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_FromFile_InvalidYAML(t *testing.T) {
	_, err := Load(createTempConfigFile(t, "log: [unclosed"))
	assert.Error(t, err)
}

func TestLoad_FromFile_ValidationFailure(t *testing.T) {
	_, err := Load(createTempConfigFile(t, "perception:\n  concurrency: -2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load(createTempConfigFile(t, "metrics:\n  enabled: false\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, DefaultMetricsNamespace, cfg.Metrics.Namespace)
	assert.GreaterOrEqual(t, cfg.Perception.Concurrency, 1)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ATOMTYPE_PERCEPTION_CONCURRENCY", "3")
	t.Setenv("ATOMTYPE_LOG_LEVEL", "error")
	cfg, err := Load(createTempConfigFile(t, validConfigYAML))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Perception.Concurrency)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadFromEnv_NoFile(t *testing.T) {
	t.Setenv("ATOMTYPE_METRICS_ENABLED", "true")
	t.Setenv("ATOMTYPE_METRICS_ADDR", "127.0.0.1:9000")
	t.Setenv("ATOMTYPE_PERCEPTION_FAIL_FAST", "true")
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "127.0.0.1:9000", cfg.Metrics.Addr)
	assert.True(t, cfg.Perception.FailFast)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoadOptional(t *testing.T) {
	cfg, err := LoadOptional("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMetricsNamespace, cfg.Metrics.Namespace)

	cfg, err = LoadOptional(createTempConfigFile(t, validConfigYAML))
	require.NoError(t, err)
	assert.Equal(t, "chem", cfg.Metrics.Namespace)
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() { MustLoad(createTempConfigFile(t, validConfigYAML)) })
	assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yaml")) })
}
