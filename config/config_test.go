package config_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/config"
)

func envOf(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "large", cfg.DataDir)
	assert.Equal(t, config.ColorAuto, cfg.Output.Color)
	assert.Zero(t, cfg.Search.MaxDepth)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv("DEGREES_MAX_DEPTH", "")
	path := filepath.Join(t.TempDir(), "degrees.yaml")
	yml := `data_dir: small
log:
  level: debug
  format: json
search:
  max_depth: 6
  dedup: true
output:
  color: never
metrics_file: /tmp/degrees.prom
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "small", cfg.DataDir)
	assert.Equal(t, config.LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, config.SearchConfig{MaxDepth: 6, Dedup: true}, cfg.Search)
	assert.Equal(t, config.ColorNever, cfg.Output.Color)
	assert.Equal(t, "/tmp/degrees.prom", cfg.MetricsFile)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default().DataDir, cfg.DataDir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "degrees.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: small\n"), 0o600))
	t.Setenv("DEGREES_DATA_DIR", "tiny")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", cfg.DataDir)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "degrees.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search: [unclosed"), 0o600))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := config.Default()
	err := cfg.ApplyEnv(envOf(map[string]string{
		"DEGREES_DATA_DIR":     "small",
		"DEGREES_LOG_LEVEL":    "debug",
		"DEGREES_LOG_FORMAT":   "json",
		"DEGREES_MAX_DEPTH":    "3",
		"DEGREES_DEDUP":        "true",
		"DEGREES_COLOR":        "always",
		"DEGREES_METRICS_FILE": "out.prom",
	}))
	require.NoError(t, err)

	want := config.Config{
		DataDir:     "small",
		Log:         config.LogConfig{Level: "debug", Format: "json"},
		Search:      config.SearchConfig{MaxDepth: 3, Dedup: true},
		Output:      config.OutputConfig{Color: config.ColorAlways},
		MetricsFile: "out.prom",
	}
	assert.Equal(t, want, cfg)
}

func TestApplyEnv_Malformed(t *testing.T) {
	for _, env := range []map[string]string{
		{"DEGREES_MAX_DEPTH": "three"},
		{"DEGREES_DEDUP": "sometimes"},
	} {
		cfg := config.Default()
		assert.ErrorIs(t, cfg.ApplyEnv(envOf(env)), config.ErrInvalidConfig)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty data dir", func(c *config.Config) { c.DataDir = "" }},
		{"bad level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *config.Config) { c.Log.Format = "xml" }},
		{"negative depth", func(c *config.Config) { c.Search.MaxDepth = -1 }},
		{"bad color", func(c *config.Config) { c.Output.Color = "sometimes" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := config.NewLogger("warn", "json", &buf)

	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	logger.Warn("careful", "n", 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "careful", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])

	fallback := config.NewLogger("bogus", "bogus", &buf)
	assert.True(t, fallback.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, fallback.Enabled(context.Background(), slog.LevelDebug))
}
