// Package config handles global project-update configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the global configuration loaded from config.toml.
type Config struct {
	// Token is the GitHub token used for API calls. The GITHUB_TOKEN
	// environment variable and the --token flag both take precedence.
	Token string `toml:"token"`

	// Endpoint overrides the GraphQL endpoint (GitHub Enterprise).
	// Empty means the public api.github.com endpoint.
	Endpoint string `toml:"endpoint"`

	// Defaults pre-fill per-run target flags.
	Defaults Defaults `toml:"defaults"`
}

// Defaults are fallback values for flags that identify the board.
type Defaults struct {
	// Owner is the organization (or user, with User set) that owns the
	// board.
	Owner string `toml:"owner"`

	// User marks Owner as a user login rather than an organization.
	User bool `toml:"user"`

	// Project is the board number.
	Project int `toml:"project"`
}

// ResolveToken picks the token with flag > environment > config
// precedence.
func (c *Config) ResolveToken(flagToken string) string {
	if flagToken != "" {
		return flagToken
	}
	if env := os.Getenv("GITHUB_TOKEN"); env != "" {
		return env
	}
	return c.Token
}

// ResolveEndpoint picks the endpoint, preferring the flag over config.
func (c *Config) ResolveEndpoint(flagEndpoint string) string {
	if flagEndpoint != "" {
		return flagEndpoint
	}
	return c.Endpoint
}

// Load loads the configuration from the default location.
// Returns an empty config if the file doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads the configuration from a specific path. A missing file
// yields an empty config; a malformed file is an error.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}

	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path, honoring
// XDG_CONFIG_HOME.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "project-update", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".project-update.toml")
	}
	return filepath.Join(home, ".config", "project-update", "config.toml")
}

// ResolveConfigPath returns the explicit path when given, the default
// location otherwise.
func ResolveConfigPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return DefaultPath()
}
