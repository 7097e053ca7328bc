// Package config loads tzclock's runtime settings. Sources are applied in
// order: defaults, an optional YAML file, .env and process environment
// (TZCLOCK_*), then command line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultWindowTitle   = "Timezone Converter"
	DefaultWindowScale   = 2.0
	DefaultScreenshotDir = "screenshots"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TZCLOCK_"

// Config holds the settings of the desktop host.
type Config struct {
	LogLevel      string  `yaml:"log_level"`
	LogFormat     string  `yaml:"log_format"`
	WindowTitle   string  `yaml:"window_title"`
	WindowScale   float64 `yaml:"window_scale"`
	ShowFPS       bool    `yaml:"show_fps"`
	ScreenshotDir string  `yaml:"screenshot_dir"`
	Script        string  `yaml:"script"`
}

// Default returns a Config with the built-in defaults.
func Default() Config {
	return Config{
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
		WindowTitle:   DefaultWindowTitle,
		WindowScale:   DefaultWindowScale,
		ScreenshotDir: DefaultScreenshotDir,
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), a .env file in the working directory if present, and the
// process environment. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// applyEnv overrides fields from TZCLOCK_* variables. Empty values are ignored.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(EnvPrefix + key)
		if !ok || v == "" {
			return "", false
		}
		return v, true
	}

	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	if v, ok := get("WINDOW_TITLE"); ok {
		c.WindowTitle = v
	}
	if v, ok := get("WINDOW_SCALE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sWINDOW_SCALE: %w", EnvPrefix, err)
		}
		c.WindowScale = f
	}
	if v, ok := get("SHOW_FPS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sSHOW_FPS: %w", EnvPrefix, err)
		}
		c.ShowFPS = b
	}
	if v, ok := get("SCREENSHOT_DIR"); ok {
		c.ScreenshotDir = v
	}
	if v, ok := get("SCRIPT"); ok {
		c.Script = v
	}
	return nil
}

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.WindowScale <= 0 {
		return fmt.Errorf("window scale must be positive, got %v", c.WindowScale)
	}
	if c.ScreenshotDir == "" {
		return errors.New("screenshot dir is required")
	}
	return nil
}
