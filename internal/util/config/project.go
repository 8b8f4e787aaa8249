package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ProjectConfig represents the .compass/config.json structure.
// Values set here override the user-level configuration for tasks
// classified inside the project.
type ProjectConfig struct {
	HistoryDir   string `json:"history_dir,omitempty"`
	KeywordsPath string `json:"keywords_path,omitempty"`
}

const (
	compassDir        = ".compass"
	projectConfigFile = "config.json"
)

// GetProjectConfigPath returns the path to .compass/config.json
func GetProjectConfigPath() string {
	return filepath.Join(compassDir, projectConfigFile)
}

// LoadProjectConfig loads the project configuration from .compass/config.json
func LoadProjectConfig() (*ProjectConfig, error) {
	data, err := os.ReadFile(GetProjectConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &ProjectConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read project config: %w", err)
	}

	var cfg ProjectConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid project config file: %w", err)
	}

	return &cfg, nil
}

// SaveProjectConfig saves the project configuration to .compass/config.json
func SaveProjectConfig(cfg *ProjectConfig) error {
	if err := os.MkdirAll(compassDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", compassDir, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project config: %w", err)
	}

	if err := os.WriteFile(GetProjectConfigPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write project config: %w", err)
	}

	return nil
}

// ProjectConfigExists checks if .compass/config.json exists
func ProjectConfigExists() bool {
	_, err := os.Stat(GetProjectConfigPath())
	return err == nil
}
