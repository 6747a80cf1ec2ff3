// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Output
	Format string `json:"format,omitempty"`  // Output format: markdown, html, or pdf
	Out    string `json:"out,omitempty"`     // Output file path (single input)
	OutDir string `json:"out_dir,omitempty"` // Output directory (multiple inputs)

	// Styling
	Style string `json:"style,omitempty"` // Path to a CSS file replacing the embedded default

	// Behavior
	PDFTimeoutSeconds int  `json:"pdf_timeout_seconds,omitempty"` // Headless-browser print timeout
	Verbose           bool `json:"verbose,omitempty"`             // Print detailed document summaries
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
// are not checked here; CLI flag validation handles those after merging.
func (c *Config) Validate() error {
	if c.Out != "" && c.OutDir != "" {
		return fmt.Errorf("config error: 'out' and 'out_dir' are mutually exclusive")
	}

	if c.PDFTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'pdf_timeout_seconds' must be non-negative")
	}

	if c.Style != "" {
		if _, err := os.Stat(c.Style); os.IsNotExist(err) {
			return fmt.Errorf("config error: style file not found: %s", c.Style)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Style == "" {
		result.Style = defaults.Style
	}

	if result.PDFTimeoutSeconds == 0 {
		result.PDFTimeoutSeconds = defaults.PDFTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
