// Package config loads the YAML configuration and applies environment
// overrides
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/todos/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvDB        = "TODOS_DB"
	EnvDriver    = "TODOS_DRIVER"
	EnvDSN       = "TODOS_DSN"
	EnvLogLevel  = "TODOS_LOG_LEVEL"
	EnvThemeFile = "TODOS_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig      `yaml:"storage"`
	Log         LogConfig          `yaml:"log"`
	Output      OutputConfig       `yaml:"output"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// StorageConfig selects the storage engine
type StorageConfig struct {
	Driver        string `yaml:"driver"`
	Path          string `yaml:"path"`
	DSN           string `yaml:"dsn"`
	BusyTimeoutMS int    `yaml:"busy_timeout_ms"`
}

// BusyTimeout returns the SQLite lock wait as a duration
func (s StorageConfig) BusyTimeout() time.Duration {
	return time.Duration(s.BusyTimeoutMS) * time.Millisecond
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// OutputConfig controls human-readable CLI output
type OutputConfig struct {
	Width int `yaml:"width"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver:        "sqlite",
			Path:          "database.db",
			BusyTimeoutMS: 5000,
		},
		Log: LogConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Width: 60,
		},
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields the defaults. Environment overrides are applied
// last.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := getConfigPath()
		if err == nil {
			path = p
		}
	}

	config := Default()
	// Colors are filled from the chosen preset after parsing
	config.ColorScheme = colors.ColorScheme{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case os.IsNotExist(err) && !explicit:
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	loadThemeFile(config)
	config.applyEnv()
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Path returns the config file location used when no path is given
func Path() (string, error) {
	return getConfigPath()
}

// Save writes the config as YAML to path, or to the default location when
// path is empty. Missing parent directories are created.
func (c *Config) Save(path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings the storage or logging layers cannot use
func (c *Config) Validate() error {
	switch strings.ToLower(c.Storage.Driver) {
	case "sqlite", "sqlite3":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path must not be empty for the sqlite driver")
		}
	case "postgres", "postgresql", "pg":
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn must be set for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q (must be: sqlite, postgres)", c.Storage.Driver)
	}

	if c.Storage.BusyTimeoutMS < 0 {
		return fmt.Errorf("storage.busy_timeout_ms must be >= 0")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log.level %q (must be: debug, info, warn, error)", c.Log.Level)
	}

	return nil
}

// loadThemeFile merges the theme from TODOS_THEME_FILE if it is set
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}
	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDB); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(EnvDriver); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv(EnvDSN); v != "" {
		c.Storage.DSN = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("TODOS_BUSY_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			c.Storage.BusyTimeoutMS = ms
		}
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "todos", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "todos", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	defaults := Default()
	if c.Storage.Driver == "" {
		c.Storage.Driver = defaults.Storage.Driver
	}
	if c.Storage.Path == "" {
		c.Storage.Path = defaults.Storage.Path
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Output.Width <= 0 {
		c.Output.Width = defaults.Output.Width
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
