// Package config persists mimi's application preferences. Preferences are
// deliberately separate from journal data: config.json holds how the app
// behaves, journal.json (pkg/store) holds what the user wrote.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const configVersion = "1.0"

// Config holds the persisted application preferences.
type Config struct {
	// Language is the UI language tag (see pkg/i18n). Empty selects the
	// default.
	Language string `json:"language,omitempty"`

	// DataPath overrides where the journal store file lives. Empty selects
	// ~/.mimi/journal.json.
	DataPath string `json:"data_path,omitempty"`

	// PageSize is how many posts the feed renders per screenful.
	PageSize int `json:"page_size,omitempty"`
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{PageSize: 20}
}

// DefaultPath returns ~/.mimi/config.json.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ".mimi", "config.json"), nil
}

// Load reads the configuration at path. A missing file yields the defaults;
// an unreadable or undecodable file is an error.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var file struct {
		Version string `json:"version"`
		Config  Config `json:"config"`
	}
	if err := json.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg := file.Config
	if cfg.PageSize <= 0 {
		cfg.PageSize = Default().PageSize
	}
	return &cfg, nil
}

// Save writes the configuration to path atomically, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	file := struct {
		Version string `json:"version"`
		Config  Config `json:"config"`
	}{
		Version: configVersion,
		Config:  *c,
	}
	b, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("config: write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("config: rename %s: %w", path, err)
	}
	return nil
}
