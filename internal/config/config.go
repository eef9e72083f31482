// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; secrets go to the OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"careerprep/cli/internal/xdg"
)

// BackendModeMemory selects the in-memory simulated backend.
const BackendModeMemory = "memory"

// BackendModeHTTP selects the real HTTP backend.
const BackendModeHTTP = "http"

// Config holds non-sensitive CLI settings.
type Config struct {
	LogLevel string        `json:"log_level"`
	Backend  BackendConfig `json:"backend"`
	// OAuth maps a provider name (lowercased) to its sign-in redirect URL.
	// Absent entries are valid; dispatch for an unconfigured provider fails.
	OAuth map[string]string `json:"oauth"`
}

// BackendConfig selects and locates the auth backend implementation.
type BackendConfig struct {
	Mode    string `json:"mode"` // "memory" or "http"
	BaseURL string `json:"base_url"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
// Environment variables override file values:
//
//	CAREERPREP_LOG_LEVEL
//	CAREERPREP_BACKEND_MODE
//	CAREERPREP_BACKEND_URL
//	CAREERPREP_OAUTH_<PROVIDER>_URL
func Load() (Config, error) {
	var c Config
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c = defaults()
			applyEnv(&c)
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Backend.Mode == "" {
		c.Backend.Mode = BackendModeMemory
	}
	applyEnv(&c)
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

// OAuthURL returns the configured redirect URL for a provider, case-insensitively.
// The second return value reports whether the provider is configured.
func (c Config) OAuthURL(provider string) (string, bool) {
	url, ok := c.OAuth[strings.ToLower(provider)]
	if !ok || url == "" {
		return "", false
	}
	return url, true
}

func defaults() Config {
	return Config{
		LogLevel: "info",
		// Memory backend by default so the CLI works without a deployed service.
		Backend: BackendConfig{Mode: BackendModeMemory},
	}
}

// applyEnv overlays CAREERPREP_* environment variables onto c.
func applyEnv(c *Config) {
	if v := os.Getenv("CAREERPREP_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("CAREERPREP_BACKEND_MODE"); v != "" {
		c.Backend.Mode = v
	}
	if v := os.Getenv("CAREERPREP_BACKEND_URL"); v != "" {
		c.Backend.BaseURL = v
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || v == "" {
			continue
		}
		const prefix = "CAREERPREP_OAUTH_"
		if !strings.HasPrefix(k, prefix) || !strings.HasSuffix(k, "_URL") {
			continue
		}
		provider := strings.TrimSuffix(strings.TrimPrefix(k, prefix), "_URL")
		if provider == "" {
			continue
		}
		if c.OAuth == nil {
			c.OAuth = map[string]string{}
		}
		c.OAuth[strings.ToLower(provider)] = v
	}
}
