package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// ErrReadConfig indicates the config file exists but could not be read or
// parsed.
var ErrReadConfig = errors.New("reading config")

// Config holds user-level defaults for the sst CLI, loaded from an
// optional YAML file. [Default] returns the built-in default: 80-column
// rendering, "less -R" as the pager, and info/text logging.
type Config struct {
	// Width is the default column width passed to the renderer by the
	// `read` subcommand when -w/--width is not given.
	Width int `yaml:"width"`
	// Pager is the command (plus arguments) spawned when stdout is a
	// TTY; the first element is the executable name looked up on PATH.
	Pager []string `yaml:"pager"`
	// LogLevel and LogFormat seed the [log.Config] defaults, overridden
	// by the --log-level/--log-format flags when given.
	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`
}

// Default returns the built-in configuration used when no config file is
// present.
func Default() *Config {
	return &Config{
		Width:     80,
		Pager:     []string{"less", "-R"},
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// DefaultPath returns the path sst looks for its config file at:
// $XDG_CONFIG_HOME/sst/config.yaml, falling back to ~/.config/sst/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: resolving user config dir: %w", ErrReadConfig, err)
	}

	return filepath.Join(dir, "sst", "config.yaml"), nil
}

// Load reads and parses the config file at path, overlaying its fields
// onto [Default]. A missing file is not an error: Load returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // Config path is a fixed, user-controlled location.
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return nil, fmt.Errorf("%w: %s: %w", ErrReadConfig, path, err)
	}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadConfig, path, err)
	}

	return cfg, nil
}
