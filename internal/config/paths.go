package config

import (
	"os"
	"path/filepath"
)

// GetFlowStateHome returns FLOWSTATE_HOME or ~/.flowstate default
func GetFlowStateHome() string {
	home := os.Getenv("FLOWSTATE_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".flowstate"
		}
		return filepath.Join(homeDir, ".flowstate")
	}
	return ExpandPath(home)
}

// GetDBPath returns $FLOWSTATE_HOME/flowstate.db
func GetDBPath() string {
	return filepath.Join(GetFlowStateHome(), "flowstate.db")
}

// GetSettingsPath returns $FLOWSTATE_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetFlowStateHome(), "settings.json")
}

// GetEnvFilePath returns $FLOWSTATE_HOME/.env
func GetEnvFilePath() string {
	return filepath.Join(GetFlowStateHome(), ".env")
}

// GetLockPath returns $FLOWSTATE_HOME/flowstate.lock
func GetLockPath() string {
	return filepath.Join(GetFlowStateHome(), "flowstate.lock")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
