// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"mobile-tariffs/internal/errors"
	"mobile-tariffs/internal/logging"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Catalog contains catalog source settings
	Catalog CatalogConfig `json:"catalog"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CatalogConfig selects where operators come from
type CatalogConfig struct {
	// File is an HCL catalog replacing the built-in operators; empty means built-in
	File string `json:"file,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is text or json
	Format string `json:"format"`

	// NoColor disables ANSI colors
	NoColor bool `json:"no_color"`
}

// DefaultPath is $HOME/.mobile-tariffs.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".mobile-tariffs.json")
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			Format:  FormatText,
			NoColor: false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrap(errors.TypeConfig, "failed to read config", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "failed to decode config", err).WithContext("path", path)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks option values
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Config("unknown output format: " + c.Output.Format).WithContext("format", c.Output.Format)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
