package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings represents the structure of ~/.hyprbind/settings.json
type Settings struct {
	BackupDir       string `json:"backup_dir,omitempty"`
	BackupKeepCount *int   `json:"backup_keep_count,omitempty"`
	ConfigPath      string `json:"config_path,omitempty"`
	DBPath          string `json:"db_path,omitempty"`
	Debug           *bool  `json:"debug,omitempty"`
	MaxLogFiles     *int   `json:"max_log_files,omitempty"`
}

// LoadSettings loads settings from ~/.hyprbind/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	path := filepath.Join(homeDir, ".hyprbind", "settings.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	// Expand paths that start with ~
	settings.BackupDir = ExpandPath(settings.BackupDir)
	settings.ConfigPath = ExpandPath(settings.ConfigPath)
	settings.DBPath = ExpandPath(settings.DBPath)

	return &settings, nil
}

// ExpandPath expands ~ to the home directory in paths
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path // Return as-is if we can't get home dir
		}
		if len(path) == 1 {
			return homeDir
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
