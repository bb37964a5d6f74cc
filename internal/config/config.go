package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DirName  = "project-identity"
	FileName = "config.json"
)

// Config holds user preferences shared across workspaces
type Config struct {
	SettingsDir   string `json:"settingsDir,omitempty"`   // Overrides .vscode
	ReloadCommand string `json:"reloadCommand,omitempty"` // Run in the workspace after writing
	LastColor     string `json:"lastColor,omitempty"`     // Preselected in the color picker
}

// DefaultDir returns the directory holding the config file
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

// Load loads configuration from dir
func Load(dir string) Config {
	if dir == "" {
		return Config{}
	}
	configPath := filepath.Join(dir, FileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return Config{} // Return empty config (use defaults)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{} // Malformed config, use defaults
	}

	return cfg
}

// Save saves configuration to dir, creating it if needed
func Save(dir string, cfg Config) error {
	if dir == "" {
		return fmt.Errorf("no config directory")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, FileName), data, 0644)
}
