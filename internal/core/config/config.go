// Package config handles configuration loading and validation for jobform.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/jobform/internal/core/application"
	"github.com/colonyops/jobform/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Theme   string            `yaml:"theme"`
	Title   string            `yaml:"title"`
	Summary SummaryConfig     `yaml:"summary"`
	Prefill application.Draft `yaml:"prefill"`
}

// SummaryConfig controls the post-submission summary panel.
type SummaryConfig struct {
	Title    string `yaml:"title"`
	WordWrap int    `yaml:"word_wrap"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		Title: "Job Application Form",
		Summary: SummaryConfig{
			Title:    "Application Summary",
			WordWrap: 60,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
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
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Title == "" {
		c.Title = defaults.Title
	}
	if c.Summary.Title == "" {
		c.Summary.Title = defaults.Summary.Title
	}
	if c.Summary.WordWrap == 0 {
		c.Summary.WordWrap = defaults.Summary.WordWrap
	}
}
