// Package config loads caniq settings from an optional YAML file with
// CANIQ_* environment overrides. Missing files are not an error: the tool
// must work with zero setup, so every knob has a default.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all caniq configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Fetch   FetchConfig   `yaml:"fetch"`
	History HistoryConfig `yaml:"history"`
	UI      UIConfig      `yaml:"ui"`
}

// APIConfig configures the caniuse.com client.
type APIConfig struct {
	BaseURL   string `yaml:"base_url"`
	Timeout   string `yaml:"timeout"`
	UserAgent string `yaml:"user_agent"`
}

// FetchConfig bounds the parallel feature fetch.
type FetchConfig struct {
	Parallel int `yaml:"parallel"`
}

// HistoryConfig configures the local search-history store.
type HistoryConfig struct {
	Path    string `yaml:"path"`
	Limit   int    `yaml:"limit"`
	Enabled *bool  `yaml:"enabled"`
}

// UIConfig configures rendering.
type UIConfig struct {
	Theme string `yaml:"theme"` // auto, light, dark
	Wrap  int    `yaml:"wrap"`
}

// DefaultConfig returns a complete working configuration.
func DefaultConfig() *Config {
	enabled := true
	return &Config{
		API: APIConfig{
			BaseURL:   "https://caniuse.com",
			Timeout:   "30s",
			UserAgent: "caniq/1.0 (+https://github.com/caniq/caniq)",
		},
		Fetch: FetchConfig{Parallel: 4},
		History: HistoryConfig{
			Path:    defaultHistoryPath(),
			Limit:   200,
			Enabled: &enabled,
		},
		UI: UIConfig{Theme: "auto", Wrap: 100},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "caniq", "config.yaml")
}

func defaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "caniq", "history.db")
}

// Load reads the config file at path, falling back to defaults when it
// does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies CANIQ_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CANIQ_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("CANIQ_TIMEOUT"); v != "" {
		c.API.Timeout = v
	}
	if v := os.Getenv("CANIQ_USER_AGENT"); v != "" {
		c.API.UserAgent = v
	}
	if v := os.Getenv("CANIQ_PARALLEL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Fetch.Parallel = n
		}
	}
	if v := os.Getenv("CANIQ_HISTORY_PATH"); v != "" {
		c.History.Path = v
	}
	if v := os.Getenv("CANIQ_HISTORY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.History.Enabled = &b
		}
	}
	if v := os.Getenv("CANIQ_THEME"); v != "" {
		c.UI.Theme = v
	}
}

// Timeout parses the configured request timeout, falling back to 30s on
// malformed values.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// HistoryEnabled reports whether searches should be recorded.
func (c *Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}
