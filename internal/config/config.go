// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-docx/internal/schemas"
)

// Default values applied when neither the config file nor a flag sets a field.
const (
	DefaultPort                = 8000
	DefaultOutputDir           = "."
	DefaultConcurrency         = 4
	DefaultFetchTimeoutSeconds = 30
	DefaultMaxBodyBytes        = 10 << 20
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Port                int    `json:"port,omitempty"`                  // HTTP listen port for serve
	OutputDir           string `json:"output_dir,omitempty"`            // Directory for generated .docx files
	Concurrency         int    `json:"concurrency,omitempty"`           // Parallel conversions in batch mode
	UseBrowser          bool   `json:"use_browser,omitempty"`           // Render fetched pages in a headless browser
	FetchTimeoutSeconds int    `json:"fetch_timeout_seconds,omitempty"` // Timeout for URL fetches
	Verbose             bool   `json:"verbose,omitempty"`               // Print detailed debug information
	MaxBodyBytes        int64  `json:"max_body_bytes,omitempty"`        // Request body limit for /html2word
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:                DefaultPort,
		OutputDir:           DefaultOutputDir,
		Concurrency:         DefaultConcurrency,
		FetchTimeoutSeconds: DefaultFetchTimeoutSeconds,
		MaxBodyBytes:        DefaultMaxBodyBytes,
	}
}

// LoadConfig loads configuration from a JSON file.
// The file is checked against the config schema before it is decoded.
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

	if err := schemas.ValidateConfig(data); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
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
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.FetchTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'fetch_timeout_seconds' must be non-negative")
	}
	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("config error: 'max_body_bytes' must be non-negative")
	}

	if c.OutputDir != "" {
		if info, err := os.Stat(c.OutputDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: output_dir is not a directory: %s", c.OutputDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.FetchTimeoutSeconds == 0 {
		result.FetchTimeoutSeconds = defaults.FetchTimeoutSeconds
	}
	if result.MaxBodyBytes == 0 {
		result.MaxBodyBytes = defaults.MaxBodyBytes
	}

	// Bool fields: cannot distinguish unset from false, so either side enables them
	result.UseBrowser = result.UseBrowser || defaults.UseBrowser
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// FetchTimeout returns the fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}
