// Package config handles configuration loading and validation for taskhub.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/taskhub/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	API  APIConfig  `yaml:"api"`
	Form FormConfig `yaml:"form"`
	TUI  TUIConfig  `yaml:"tui"`
}

// APIConfig describes the remote task API.
type APIConfig struct {
	URL     string            `yaml:"url"`     // base URL; tasks are posted to <url>/api/tasks
	Headers map[string]string `yaml:"headers"` // static headers added to every request
}

// FormConfig holds create-form behavior.
type FormConfig struct {
	// ResetDelay is how long the success banner stays up before the form
	// is cleared. Zero or unset uses the 2s default; there is no way to
	// skip the banner.
	ResetDelay time.Duration `yaml:"reset_delay"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			URL:     "http://localhost:8080",
			Headers: map[string]string{},
		},
		Form: FormConfig{
			ResetDelay: 2 * time.Second,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.API.URL == "" {
		c.API.URL = defaults.API.URL
	}
	if c.API.Headers == nil {
		c.API.Headers = defaults.API.Headers
	}
	if c.Form.ResetDelay == 0 {
		c.Form.ResetDelay = defaults.Form.ResetDelay
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
