// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; credentials go to env vars or the
// OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"s1fetch/cli/internal/xdg"
)

// DefaultAPIURL is the catalog endpoint queried when no override is configured.
const DefaultAPIURL = "https://scihub.copernicus.eu/dhus/"

// Config holds non-sensitive CLI settings.
type Config struct {
	APIURL         string `json:"api_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	PageSize       int    `json:"page_size"`
	LogLevel       string `json:"log_level"`
}

// Timeout returns the HTTP client timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Default returns the built-in configuration values.
func Default() Config {
	return Config{
		APIURL:         DefaultAPIURL,
		TimeoutSeconds: 60,
		PageSize:       100, // catalog maximum rows per page
		LogLevel:       "info",
	}
}

// Load reads configuration; missing file returns defaults.
func Load() (Config, error) {
	c := Default()
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = Default().TimeoutSeconds
	}
	if c.PageSize <= 0 || c.PageSize > 100 {
		c.PageSize = Default().PageSize
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
