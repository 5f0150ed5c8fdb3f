// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Paths
	Survey string `json:"survey,omitempty"` // Path to survey responses JSON file

	// Services
	APIKey         string `json:"api_key,omitempty"`          // Gemini API key
	ClimatiqAPIKey string `json:"climatiq_api_key,omitempty"` // Climatiq API key
	DatabaseURL    string `json:"database_url,omitempty"`     // PostgreSQL connection URL

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.Survey != "" {
		if _, err := os.Stat(c.Survey); os.IsNotExist(err) {
			return fmt.Errorf("config error: survey file not found: %s", c.Survey)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Survey == "" {
		result.Survey = defaults.Survey
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ClimatiqAPIKey == "" {
		result.ClimatiqAPIKey = defaults.ClimatiqAPIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so CLI flags win.

	return result
}
