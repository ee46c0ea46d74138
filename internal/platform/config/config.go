package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config locates everything tempo persists under one home directory.
type Config struct {
	HomePath     string
	DBPath       string
	SettingsPath string
	SnapshotPath string
	PluginsPath  string
	LogsPath     string
}

func New(homePath string) (Config, error) {
	if homePath == "" {
		base, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve user home: %w", err)
		}
		homePath = filepath.Join(base, ".tempo")
	}
	return Config{
		HomePath:     homePath,
		DBPath:       filepath.Join(homePath, "tempo.db"),
		SettingsPath: filepath.Join(homePath, "settings.yaml"),
		SnapshotPath: filepath.Join(homePath, "session-snapshot.json"),
		PluginsPath:  filepath.Join(homePath, "plugins"),
		LogsPath:     filepath.Join(homePath, "logs"),
	}, nil
}
