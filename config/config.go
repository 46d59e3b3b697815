// Package config provides configuration parsing for hostpulse.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/hostpulse/collectors"
)

// Config represents the hostpulse configuration.
type Config struct {
	// Interval is a duration string (e.g. "1s", "500ms") between sampling
	// ticks.
	Interval string `yaml:"interval"`

	// Style selects the gauge glyph style: "blocks", "shaded", or "ascii".
	Style string `yaml:"style"`

	// ProcessRows caps the process table height. 0 derives the row count
	// from the terminal size alone.
	ProcessRows int `yaml:"process_rows"`

	// Services extends the built-in service catalog.
	Services []collectors.ServiceCatalogEntry `yaml:"services"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Interval: "1s",
		Style:    "blocks",
	}
}

// DefaultPath returns the standard config file location:
// $XDG_CONFIG_HOME/hostpulse/config.yaml, falling back to
// ~/.config/hostpulse/config.yaml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "hostpulse", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hostpulse", "config.yaml")
}

// Load reads configuration from path, or from DefaultPath when path is
// empty. A missing file is not an error; defaults are returned. Environment
// overrides are applied last.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults.
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// Catalog returns the built-in service catalog extended with any entries
// from the config file.
func (c *Config) Catalog() []collectors.ServiceCatalogEntry {
	return append(collectors.DefaultCatalog(), c.Services...)
}

// WriteDefault writes a commented default config file to path, creating
// parent directories as needed. Existing files are left untouched.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	const defaultFile = `# hostpulse configuration
# Sampling cadence between dashboard ticks.
interval: 1s

# Gauge glyph style: blocks, shaded, or ascii.
style: blocks

# Cap the process table height (0 = size from terminal).
process_rows: 0

# Extra service catalog entries, matched case-insensitively against
# process names.
#services:
#  - name: MyService
#    patterns: [myservice]
`
	if err := os.WriteFile(path, []byte(defaultFile), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies HOSTPULSE_* environment variables on top of the
// file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HOSTPULSE_INTERVAL"); v != "" {
		cfg.Interval = v
	}
	if v := os.Getenv("HOSTPULSE_STYLE"); v != "" {
		cfg.Style = v
	}
}
