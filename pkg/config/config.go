// Package config provides environment-based configuration for the creational demos.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLogFile is the journal file name used when no path is configured.
const DefaultLogFile = "log.txt"

// Config holds all configuration for the demos.
type Config struct {
	// LogPath is the journal file. It is read once, when the journal sink is built.
	LogPath string

	// Logging configuration for diagnostics
	LogLevel  string
	LogFormat string

	// CatalogPath is an optional YAML prototype catalog. Empty means the embedded one.
	CatalogPath string

	// Platform selects the widget factory for the abstract factory demo.
	Platform string
}

// Override adjusts a loaded configuration before validation.
type Override func(*Config)

// Load reads configuration from environment variables, applies overrides
// (typically command-line flags) and validates the result.
func Load(overrides ...Override) (*Config, error) {
	cfg := LoadWithDefaults()

	for _, o := range overrides {
		o(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that configured values are usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.LogPath) == "" {
		return fmt.Errorf("CREATIONAL_LOG_PATH is required")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); err != nil {
			return fmt.Errorf("CREATIONAL_CATALOG: %w", err)
		}
	}
	return nil
}

// JSONLogs reports whether diagnostics are written as JSON.
func (c *Config) JSONLogs() bool {
	return c.LogFormat == "json"
}

// LoadWithDefaults loads configuration with defaults.
// It does not validate fields, useful for testing.
func LoadWithDefaults() *Config {
	return &Config{
		LogPath:     getEnv("CREATIONAL_LOG_PATH", defaultLogPath()),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
		CatalogPath: getEnv("CREATIONAL_CATALOG", ""),
		Platform:    getEnv("CREATIONAL_OS", "windows"),
	}
}

// defaultLogPath places the journal next to the running executable.
func defaultLogPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultLogFile
	}
	return filepath.Join(filepath.Dir(exe), DefaultLogFile)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
