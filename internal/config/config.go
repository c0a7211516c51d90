// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Moham3dabdalla/ai-tui/internal/gemini"
	"github.com/Moham3dabdalla/ai-tui/internal/storage"
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config represents the complete ai-tui configuration.
type Config struct {
	// APIURL is the Gemini endpoint prefix. Empty means the public API.
	APIURL string `toml:"api_url"`

	// APIKey authenticates Gemini requests. GEMINI_API_KEY overrides it.
	APIKey string `toml:"api_key"`

	// DefaultModel is used for new conversations when nothing is persisted.
	DefaultModel string `toml:"default_model"`

	// Models lists the identifiers offered by the /model command.
	Models []string `toml:"models"`

	// RequestTimeout is the per-request timeout in seconds.
	RequestTimeoutSecs int `toml:"request_timeout_secs"`

	// Storage selects the persistence backend: "sqlite" or "file".
	Storage string `toml:"storage"`

	// DataDir holds the KV database and log file. Empty means ~/.ai-tui.
	DataDir string `toml:"data_dir"`

	// Theme is "auto", "dark", or "light". A persisted isDarkTheme value
	// takes precedence once the user has toggled.
	Theme string `toml:"theme"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		APIURL:             gemini.DefaultBaseURL,
		DefaultModel:       "gemini-2.0-flash",
		Models:             []string{"gemini-2.0-flash", "gemini-2.5-flash", "gemini-2.5-pro"},
		RequestTimeoutSecs: 30,
		Storage:            storage.BackendSQLite,
		Theme:              "auto",
	}
}

// RequestTimeout returns the per-request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSecs) * time.Second
}

// HasModel reports whether name is in the configured model list.
func (c *Config) HasModel(name string) bool {
	for _, m := range c.Models {
		if m == name {
			return true
		}
	}
	return false
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the ai-tui home directory (~/.ai-tui).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ai-tui"), nil
}

// Path returns the config file path (~/.ai-tui/config.toml).
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD
// =============================================================================

// Load reads the config file, applies environment overrides, and validates.
// A missing file yields the defaults, not an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
//
// Supported variables:
//   - GEMINI_API_KEY: overrides api_key
//   - AI_TUI_MODEL: overrides default_model
//   - AI_TUI_DATA_DIR: overrides data_dir
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.APIKey = key
	}
	if model := os.Getenv("AI_TUI_MODEL"); model != "" {
		c.DefaultModel = model
	}
	if dir := os.Getenv("AI_TUI_DATA_DIR"); dir != "" {
		c.DataDir = dir
	}
}

// setDefaults fills zero values left by a partial config file.
func (c *Config) setDefaults() {
	d := Default()
	if c.APIURL == "" {
		c.APIURL = d.APIURL
	}
	if c.DefaultModel == "" {
		c.DefaultModel = d.DefaultModel
	}
	if len(c.Models) == 0 {
		c.Models = d.Models
	}
	if c.RequestTimeoutSecs <= 0 {
		c.RequestTimeoutSecs = d.RequestTimeoutSecs
	}
	if c.Storage == "" {
		c.Storage = d.Storage
	}
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	if c.DataDir == "" {
		if dir, err := Dir(); err == nil {
			c.DataDir = dir
		}
	}
	// The configured default must be selectable.
	if !c.HasModel(c.DefaultModel) {
		c.Models = append(c.Models, c.DefaultModel)
	}
}

// Validate rejects values no component can act on.
func (c *Config) Validate() error {
	switch c.Storage {
	case storage.BackendSQLite, storage.BackendFile:
	default:
		return fmt.Errorf("storage must be %q or %q, got %q",
			storage.BackendSQLite, storage.BackendFile, c.Storage)
	}

	switch c.Theme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("theme must be auto, dark, or light, got %q", c.Theme)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir could not be resolved")
	}
	return nil
}
