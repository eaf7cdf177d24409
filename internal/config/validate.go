package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Destinations.Images == "" {
		errs = append(errs, "destinations.images: required")
	}
	if c.Destinations.Videos == "" {
		errs = append(errs, "destinations.videos: required")
	}
	if c.Destinations.Images != "" && filepath.Clean(c.Destinations.Images) == filepath.Clean(c.Destinations.Videos) {
		errs = append(errs, fmt.Sprintf("destinations: images and videos must differ, both are %q", c.Destinations.Images))
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	return errs
}
