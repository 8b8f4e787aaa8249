package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/DevCompass/compass-cli/internal/util/env"
)

// Config represents the compass CLI configuration
type Config struct {
	HistoryDir   string `json:"history_dir,omitempty"`   // Where the decision history database lives
	KeywordsPath string `json:"keywords_path,omitempty"` // Custom path for keywords.yaml overlay
}

var (
	configDir  string
	configPath string
)

func init() {
	homeDir := os.Getenv("HOME")
	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	}
	configDir = filepath.Join(homeDir, ".config", "compass")
	configPath = filepath.Join(configDir, "config.json")
}

// ensureConfigDir creates the config directory if it doesn't exist
func ensureConfigDir() error {
	return os.MkdirAll(configDir, 0700)
}

// Defaults returns the configuration used when no config file exists.
func Defaults() *Config {
	home := os.Getenv("HOME")
	if runtime.GOOS == "windows" {
		home = os.Getenv("USERPROFILE")
	}
	return &Config{
		HistoryDir:   filepath.Join(home, ".compass"),
		KeywordsPath: filepath.Join(configDir, "keywords.yaml"),
	}
}

// LoadConfig loads the configuration from file. A missing file is not
// an error: defaults are returned so every command works out of the box.
// Project-level .compass/config.json overrides the user config, and
// COMPASS_HISTORY_DIR and COMPASS_KEYWORDS_PATH override both.
func LoadConfig() (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config file: %w", err)
		}
	}

	if proj, err := LoadProjectConfig(); err == nil {
		if proj.HistoryDir != "" {
			cfg.HistoryDir = proj.HistoryDir
		}
		if proj.KeywordsPath != "" {
			cfg.KeywordsPath = proj.KeywordsPath
		}
	}

	if v := env.Get("COMPASS_HISTORY_DIR"); v != "" {
		cfg.HistoryDir = v
	}
	if v := env.Get("COMPASS_KEYWORDS_PATH"); v != "" {
		cfg.KeywordsPath = v
	}

	return cfg, nil
}

// SaveConfig saves the configuration to file
func SaveConfig(cfg *Config) error {
	if err := ensureConfigDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// ConfigPath returns the path of the config file.
func ConfigPath() string {
	return configPath
}
