package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Manifest defaults
	DefaultManifestPath = "config.yaml"

	// PDF defaults
	DefaultInfoBinary = "pdfinfo"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".testplan"
	}
	return filepath.Join(home, ".testplan")
}
