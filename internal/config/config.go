// Package config handles global configuration for the analyzer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/risa/config.yml.
type Config struct {
	OutputDir string `yaml:"output_dir,omitempty"`
	NoCatalog bool   `yaml:"no_catalog,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "risa"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"

	// DefaultOutputDir is used when no output directory is configured.
	DefaultOutputDir = "analysis"

	// CatalogFile is the run-history database name inside the output directory.
	CatalogFile = "catalog.db"
)

// Environment variables that override the config file.
const (
	EnvOutputDir = "RISA_OUTPUT_DIR"
	EnvNoCatalog = "RISA_NO_CATALOG"
)

// configCache caches the loaded global config.
var configCache *Config

// Path returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/risa/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// Load loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	path := Path()
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	configCache = &cfg
	return &cfg, nil
}

// ResetCache clears the cached global config. Useful for testing.
func ResetCache() {
	configCache = nil
}

// ResolveOutputDir picks the output directory: flag value, then
// environment, then config file, then the default.
func (c *Config) ResolveOutputDir(flagValue string) string {
	if flagValue != "" {
		return ExpandTilde(flagValue)
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		return ExpandTilde(v)
	}
	if c.OutputDir != "" {
		return ExpandTilde(c.OutputDir)
	}
	return DefaultOutputDir
}

// CatalogEnabled reports whether analysis runs should be recorded,
// honoring the flag, the environment, and the config file in that order.
func (c *Config) CatalogEnabled(noCatalogFlag bool) bool {
	if noCatalogFlag {
		return false
	}
	if v := os.Getenv(EnvNoCatalog); v != "" {
		if disabled, err := strconv.ParseBool(v); err == nil && disabled {
			return false
		}
	}
	return !c.NoCatalog
}

// CatalogPath returns the run-history database path under the output directory.
func CatalogPath(outputDir string) string {
	return filepath.Join(outputDir, CatalogFile)
}

// ExpandTilde expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
