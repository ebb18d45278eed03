package config

import (
	"os"
	"path/filepath"
)

const (
	AppName      = "navkit"
	MenuFileName = "menu.yaml"
	LogFileName  = "navkit.log"
)

// DataDir returns the path to the navkit data directory (~/.navkit/)
// Creates the directory if it doesn't exist
// Can be overridden with NAVKIT_DATA_DIR environment variable (primarily for testing)
func DataDir() (string, error) {
	if dataDir := os.Getenv("NAVKIT_DATA_DIR"); dataDir != "" {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return "", err
		}
		return dataDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dataDir := filepath.Join(home, "."+AppName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// MenuPath returns the path to the menu definition file (~/.navkit/menu.yaml).
// The file itself is not created.
func MenuPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dataDir, MenuFileName), nil
}

// LogDir returns the path to the log directory (~/.navkit/logs/)
// Creates the directory if it doesn't exist
func LogDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	logDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", err
	}

	return logDir, nil
}
