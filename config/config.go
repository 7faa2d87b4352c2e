// Package config holds the runtime configuration of the degrees command:
// where the CSV catalogs live, how to log, how deep to search, whether to
// color output and where to export metrics.
//
// Priority is flags > environment > file > defaults. Load handles the last
// three; the command applies flags on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate, wrapped with the offending field.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Color modes for Output.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the full configuration.
type Config struct {
	// DataDir is the directory holding people.csv, movies.csv and stars.csv.
	DataDir string `yaml:"data_dir"`

	Log    LogConfig    `yaml:"log"`
	Search SearchConfig `yaml:"search"`
	Output OutputConfig `yaml:"output"`

	// MetricsFile, when set, receives a Prometheus text-format dump on exit.
	MetricsFile string `yaml:"metrics_file"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// SearchConfig tunes the search engine.
type SearchConfig struct {
	// MaxDepth limits the degrees of separation explored; 0 means unlimited.
	MaxDepth int `yaml:"max_depth"`
	// Dedup skips frontier adds for links already pending.
	Dedup bool `yaml:"dedup"`
}

// OutputConfig controls console rendering.
type OutputConfig struct {
	Color string `yaml:"color"` // auto, always, never
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir: "large",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Color: ColorAuto,
		},
	}
}

// Load builds a Config with priority env > file > defaults and validates it.
// An empty path or a file that does not exist leaves the defaults in place.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// ApplyEnv overrides fields from DEGREES_* variables found through lookup.
// A malformed numeric or boolean value is an error rather than silently ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("DEGREES_DATA_DIR"); ok && v != "" {
		c.DataDir = v
	}
	if v, ok := lookup("DEGREES_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup("DEGREES_LOG_FORMAT"); ok && v != "" {
		c.Log.Format = v
	}
	if v, ok := lookup("DEGREES_MAX_DEPTH"); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: DEGREES_MAX_DEPTH=%q", ErrInvalidConfig, v)
		}
		c.Search.MaxDepth = i
	}
	if v, ok := lookup("DEGREES_DEDUP"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: DEGREES_DEDUP=%q", ErrInvalidConfig, v)
		}
		c.Search.Dedup = b
	}
	if v, ok := lookup("DEGREES_COLOR"); ok && v != "" {
		c.Output.Color = v
	}
	if v, ok := lookup("DEGREES_METRICS_FILE"); ok && v != "" {
		c.MetricsFile = v
	}

	return nil
}

// Validate checks every enumerated and numeric field.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir must not be empty", ErrInvalidConfig)
	}
	if _, ok := levels[c.Log.Level]; !ok {
		return fmt.Errorf("%w: log.level %q (want debug, info, warn or error)", ErrInvalidConfig, c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	if c.Search.MaxDepth < 0 {
		return fmt.Errorf("%w: search.max_depth must be >= 0, got %d", ErrInvalidConfig, c.Search.MaxDepth)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: output.color %q (want auto, always or never)", ErrInvalidConfig, c.Output.Color)
	}

	return nil
}
