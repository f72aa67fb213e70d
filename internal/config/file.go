package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ClientConfig configures the admin CLI. Values from the YAML file are
// fallbacks; environment variables always win.
type ClientConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	TokenPath      string `yaml:"token_path"`
}

// DefaultClientConfigPath is resolved under the user home directory.
func DefaultClientConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "dukefarm.yaml"
	}
	return filepath.Join(home, ".dukefarm", "config.yaml")
}

// LoadClientConfig reads the YAML config at path and applies env overrides.
// A missing file is not an error; defaults are used instead.
func LoadClientConfig(path string) (ClientConfig, error) {
	cfg := ClientConfig{
		BaseURL:        "http://localhost:8080/api",
		TimeoutSeconds: 30,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.TokenPath = filepath.Join(home, ".dukefarm", "token")
	} else {
		cfg.TokenPath = ".dukefarm-token"
	}

	raw, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, err
		}
	}

	if v := strings.TrimSpace(os.Getenv("DUKEFARM_API_URL")); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("DUKEFARM_TOKEN_PATH")); v != "" {
		cfg.TokenPath = v
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 30
	}
	return cfg, nil
}

// Timeout returns the configured request timeout.
func (c ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
