// internal/config/discover.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./damastes.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "damastes", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. DAMASTES_CONFIG environment variable
//  2. ./damastes.toml (current directory)
//  3. $XDG_CONFIG_HOME/damastes/config.toml
//  4. /etc/damastes/config.toml
func Discover() (string, error) {
	if envPath := os.Getenv("DAMASTES_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("DAMASTES_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./damastes.toml",
		DefaultPath(),
		"/etc/damastes/config.toml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("config not found, checked: %s", strings.Join(paths, ", "))
}
