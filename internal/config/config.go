// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"amcost/core/model"
	"amcost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Parameters are the default cost assumptions, overridable per run
	// by scenario files and CLI flags
	Parameters model.Parameters `json:"parameters"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// NoColor disables ANSI colors in terminal reports
	NoColor bool `json:"no_color"`

	// ChartWidth is the ASCII chart width in columns
	ChartWidth int `json:"chart_width"`

	// ChartHeight is the ASCII chart height in rows
	ChartHeight int `json:"chart_height"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version:    "1.0",
		Parameters: model.Default(),
		Output: OutputConfig{
			DefaultFormat: "cli",
			NoColor:       false,
			ChartWidth:    64,
			ChartHeight:   16,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns the stock config file location
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".amcost.json")
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
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

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
