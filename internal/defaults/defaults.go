// Package defaults resolves the platform data directory for browserauto.
//
// Platform paths:
//
//	macOS:   ~/Library/Application Support/browserauto/
//	Windows: %AppData%\browserauto\
//	Linux:   ~/.config/browserauto/
//
// Override with the BROWSERAUTO_DATA_DIR environment variable.
package defaults

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDir returns the platform-appropriate data directory.
// Set BROWSERAUTO_DATA_DIR to override.
func DataDir() (string, error) {
	if dir := os.Getenv("BROWSERAUTO_DATA_DIR"); dir != "" {
		return dir, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}

	return filepath.Join(configDir, "browserauto"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dir, nil
}

// ConfigFilePath returns the path of the persisted auto-detect record.
func ConfigFilePath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "chrome_auto_config.json"), nil
}
