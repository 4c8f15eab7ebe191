// Package config loads and persists the Tabula configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the full Tabula configuration
type Config struct {
	Storage StorageConfig `json:"storage"`
	Daily   DailyConfig   `json:"daily"`
	Profile ProfileConfig `json:"profile"`
}

// StorageConfig selects and parameterizes the key-value backend
type StorageConfig struct {
	// Backend is "file" or "sqlite".
	Backend string `json:"backend"`
	// DataDir holds the per-key JSON files for the file backend.
	DataDir string `json:"dataDir"`
	// SQLitePath is the database file for the sqlite backend.
	SQLitePath string `json:"sqlitePath"`
	// WatchIntervalMs is the poll interval for external-change detection.
	WatchIntervalMs int `json:"watchIntervalMs"`
}

// DailyConfig tunes the daily overview
type DailyConfig struct {
	// RefreshIntervalSec is the staleness safety-net poll interval.
	RefreshIntervalSec int `json:"refreshIntervalSec"`
}

// ProfileConfig identifies the local user for membership operations
type ProfileConfig struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Backends supported by StorageConfig.Backend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".local", "share", "tabula")

	return &Config{
		Storage: StorageConfig{
			Backend:         BackendFile,
			DataDir:         dataDir,
			SQLitePath:      filepath.Join(dataDir, "tabula.db"),
			WatchIntervalMs: 2000,
		},
		Daily: DailyConfig{
			RefreshIntervalSec: 60,
		},
	}
}

// configPath is a variable holding the function that returns the path to the
// config file, so tests can override it.
var configPath = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tabula", "config.json"), nil
}

// Load reads the config file, filling missing values with defaults. A
// missing file yields the defaults without error.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return MergeWithDefaults(&cfg), nil
}

// Save writes the config file, creating the directory if needed.
func Save(cfg *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = defaults.Storage.Backend
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = defaults.Storage.DataDir
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = defaults.Storage.SQLitePath
	}
	if cfg.Storage.WatchIntervalMs <= 0 {
		cfg.Storage.WatchIntervalMs = defaults.Storage.WatchIntervalMs
	}
	if cfg.Daily.RefreshIntervalSec <= 0 {
		cfg.Daily.RefreshIntervalSec = defaults.Daily.RefreshIntervalSec
	}
	return cfg
}

// ApplyEnv overlays TABULA_* environment variables onto the config. Values
// loaded from a .env file by the caller take effect here too.
func ApplyEnv(cfg *Config) *Config {
	if v := os.Getenv("TABULA_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("TABULA_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("TABULA_SQLITE_PATH"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := os.Getenv("TABULA_WATCH_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Storage.WatchIntervalMs = n
		}
	}
	if v := os.Getenv("TABULA_PROFILE_NAME"); v != "" {
		cfg.Profile.Name = v
	}
	if v := os.Getenv("TABULA_PROFILE_EMAIL"); v != "" {
		cfg.Profile.Email = v
	}
	return cfg
}
