// internal/config/write.go
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// defaultConfig is the commented template written by `damastes config init`.
//
//go:embed default_config.toml
var defaultConfig []byte

// WriteDefault materializes the default configuration at path, creating
// parent directories as needed. An existing file is overwritten; the CLI
// guards that with --force.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, defaultConfig, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
