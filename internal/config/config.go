// Package config handles TOML configuration loading with environment
// variable substitution. The config supplies per-user defaults; command-line
// flags always win.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Tags    TagsConfig    `toml:"tags"`
	Probe   ProbeConfig   `toml:"probe"`
	History HistoryConfig `toml:"history"`
	Console ConsoleConfig `toml:"console"`
}

// TagsConfig holds default tag values applied when the flags are absent.
type TagsConfig struct {
	Artist string `toml:"artist"`
	Album  string `toml:"album"`
}

// ProbeConfig restricts which files count as audio.
type ProbeConfig struct {
	// FileType is a single type ("mp3") or a file-name glob ("*.ogg").
	FileType string `toml:"file_type"`
}

// HistoryConfig controls the run-history database.
type HistoryConfig struct {
	Disabled bool   `toml:"disabled"`
	Path     string `toml:"path"`
}

// ConsoleConfig controls output volume.
type ConsoleConfig struct {
	Verbose  bool   `toml:"verbose"`
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	cfgErr := &Error{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Console.LogLevel == "" {
		c.Console.LogLevel = "info"
	}
	if c.History.Path == "" {
		c.History.Path = defaultHistoryPath()
	}
}

// defaultHistoryPath returns the XDG-compliant history database location.
func defaultHistoryPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./damastes-history.db"
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "damastes", "history.db")
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
// and reports the variables it could not resolve.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		missing = append(missing, varName)
		return match
	})
	return out, missing
}
