package utils

import (
	"os"
	"path/filepath"

	"github.com/civiscope/civiscope/logging"
)

func GetHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		logging.ErrorLogger.Printf("Failed to get user home directory: %v\n", err)

		return ""
	}
	return homeDir
}

// GetConfigDir returns the directory holding the configuration JSON file.
func GetConfigDir() string {
	return filepath.Join(GetHomeDir(), ".config", "civiscope")
}

// GetConfigPath returns the path to the configuration JSON file.
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.json")
}

// GetLogPath returns the default log file path.
func GetLogPath() string {
	return filepath.Join(GetConfigDir(), "civiscope.log")
}
