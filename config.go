package fskit

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds library configuration, loadable from FSKIT_* environment
// variables (FSKIT_LOG_LEVEL, FSKIT_LOG_DEV, FSKIT_CSV_COMMA,
// FSKIT_CSV_HEADER).
type Config struct {
	Log LogConfig
	CSV CSVConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LEVEL" default:"info"`
	Development bool   `envconfig:"DEV" default:"false"`
}

// CSVConfig holds delimited-text defaults.
type CSVConfig struct {
	Comma     string `envconfig:"COMMA" default:","`
	HasHeader bool   `envconfig:"HEADER" default:"true"`
}

// Rune returns the configured delimiter as a rune, falling back to ','.
func (c CSVConfig) Rune() rune {
	for _, r := range c.Comma {
		return r
	}
	return ','
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("fskit", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:       "info",
			Development: false,
		},
		CSV: CSVConfig{
			Comma:     ",",
			HasHeader: true,
		},
	}
}
