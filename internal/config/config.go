// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment variables.
type Config struct {
	// Paths
	Corpus string `json:"corpus,omitempty"` // Path to the job corpus JSON file

	// Behavior
	APIKey             string `json:"api_key,omitempty"`              // Gemini API key
	Model              string `json:"model,omitempty"`                // Override for the standard-tier model
	Port               int    `json:"port,omitempty"`                 // HTTP listen port
	PlanTimeoutSeconds int    `json:"plan_timeout_seconds,omitempty"` // Per-call reasoning timeout
	Verbose            bool   `json:"verbose,omitempty"`              // Print detailed output in CLI mode
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

// Validate checks that the configuration has valid values. Required fields
// are checked after merging, by the command that consumes the config.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.PlanTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'plan_timeout_seconds' must be non-negative")
	}
	if c.Corpus != "" {
		if _, err := os.Stat(c.Corpus); os.IsNotExist(err) {
			return fmt.Errorf("config error: corpus file not found: %s", c.Corpus)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags and environment variables.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Corpus == "" {
		result.Corpus = defaults.Corpus
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.PlanTimeoutSeconds == 0 {
		result.PlanTimeoutSeconds = defaults.PlanTimeoutSeconds
	}
	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
