// internal/config/discover.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Discover when no config file exists.
var ErrNotFound = errors.New("config not found")

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./sortmedia.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "sortmedia", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. SORTMEDIA_CONFIG environment variable
//  2. $XDG_CONFIG_HOME/sortmedia/config.toml
func Discover() (string, error) {
	if envPath := os.Getenv("SORTMEDIA_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("SORTMEDIA_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{DefaultPath()}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}

// Resolve loads the config at path, or the discovered one when path is
// empty. With no path and nothing discovered, Default is returned and the
// returned path is empty.
func Resolve(path string) (*Config, string, error) {
	if path == "" {
		found, err := Discover()
		if errors.Is(err, ErrNotFound) {
			return Default(), "", nil
		}
		if err != nil {
			return nil, "", err
		}
		path = found
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}
