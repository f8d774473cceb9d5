// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultFormat       = "plain"
	DefaultLogLevel     = "warn"
	DefaultLogMaxSizeMB = 1
	DefaultLogBackups   = 2
	DefaultWidth        = 80 // used when the terminal width is unknown

	appName          = "memento"
	birthdayFileName = "mortality"
)

// Config represents the memento configuration.
type Config struct {
	Greeting GreetingConfig `toml:"greeting"`
	Log      LogConfig      `toml:"log"`
}

// GreetingConfig holds greeting output options.
type GreetingConfig struct {
	Width    int    `toml:"width"`    // Wrap width (0 = terminal width)
	Emphasis bool   `toml:"emphasis"` // Underline the age clause on terminals
	Format   string `toml:"format"`   // plain, json, yaml
	Template string `toml:"template"` // Custom text/template (plain format only)
}

// LogConfig holds logging options.
type LogConfig struct {
	Level      string `toml:"level"`       // debug, info, warn, error
	File       string `toml:"file"`        // Empty = stderr
	MaxSizeMB  int    `toml:"max_size_mb"` // Rotate after this size
	MaxBackups int    `toml:"max_backups"` // Rotated files to keep
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Greeting: GreetingConfig{
			Width:    0,
			Emphasis: true,
			Format:   DefaultFormat,
		},
		Log: LogConfig{
			Level:      DefaultLogLevel,
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogBackups,
		},
	}
}

// configHome returns XDG_CONFIG_HOME if set, otherwise ~/.config.
func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// ConfigPath returns the path to the settings file.
func ConfigPath() string {
	return filepath.Join(configHome(), appName, "config.toml")
}

// BirthdayPath returns the path to the birthday file.
func BirthdayPath() string {
	return filepath.Join(configHome(), birthdayFileName)
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks option values that TOML typing cannot.
func (c *Config) Validate() error {
	if c.Greeting.Width < 0 {
		return fmt.Errorf("greeting.width must not be negative, got %d", c.Greeting.Width)
	}

	switch strings.ToLower(c.Greeting.Format) {
	case "", "plain", "json", "yaml", "yml":
	default:
		return fmt.Errorf("greeting.format %q is not one of plain, json, yaml", c.Greeting.Format)
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}

	return nil
}
