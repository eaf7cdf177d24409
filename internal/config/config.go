// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vmunix/sortmedia/internal/media"
)

// Config is the root configuration structure.
type Config struct {
	Destinations DestinationsConfig `toml:"destinations"`
	Move         MoveConfig         `toml:"move"`
	Log          LogConfig          `toml:"log"`
}

// DestinationsConfig names the directory each category is moved into.
// Relative paths are resolved against the home directory.
type DestinationsConfig struct {
	Images string `toml:"images"`
	Videos string `toml:"videos"`
}

type MoveConfig struct {
	CreateDirs bool `toml:"create_dirs"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Destinations: DestinationsConfig{
			Images: media.DefaultImageDir,
			Videos: media.DefaultVideoDir,
		},
		Move: MoveConfig{CreateDirs: true},
		Log:  LogConfig{Level: "info"},
	}
}

// MediaDestinations converts the destinations section for the sorter.
func (c *Config) MediaDestinations() media.Destinations {
	return media.Destinations{Images: c.Destinations.Images, Videos: c.Destinations.Videos}
}

// Load reads, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}

	if cfgErr := (&ConfigError{Path: path, Errors: cfg.Validate()}); cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file.
// Keys absent from the file keep their Default values.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	cfg := Default()
	md, err := toml.Decode(content, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		errs := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			errs = append(errs, fmt.Sprintf("%s: unknown key", key.String()))
		}
		return nil, &ConfigError{Path: path, Errors: errs}
	}

	return cfg, nil
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([-?])([^}]*))?\}`)

// substituteEnvVars replaces environment variable references and returns
// the names (or name: message) of the ones that could not be resolved.
// Unresolved references are left unchanged.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]
		value := os.Getenv(name)

		switch op {
		case "-":
			if value == "" {
				return arg
			}
			return value
		case "?":
			if value == "" {
				missing = append(missing, fmt.Sprintf("%s: %s", name, strings.TrimSpace(arg)))
				return match
			}
			return value
		}

		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		missing = append(missing, name)
		return match
	})
	return result, missing
}
