// internal/config/validate.go
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Console.LogLevel] {
		errs = append(errs, fmt.Sprintf("console.log_level: must be one of debug, info, warn, error; got %q", c.Console.LogLevel))
	}

	if ft := c.Probe.FileType; ft != "" && strings.ContainsAny(ft, "*?[") {
		if _, err := filepath.Match(ft, "probe"); err != nil {
			errs = append(errs, fmt.Sprintf("probe.file_type: bad pattern %q", ft))
		}
	}

	if !c.History.Disabled && c.History.Path == "" {
		errs = append(errs, "history.path: required unless history is disabled")
	}

	return errs
}
