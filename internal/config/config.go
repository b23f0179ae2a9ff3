// Package config provides configuration loading and validation for the job aggregator.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the process configuration. It is built once at startup and
// passed by value to the components that need it.
type Config struct {
	// Server
	Port      int    `json:"port,omitempty" yaml:"port,omitempty" validate:"min=1,max=65535"`
	StaticDir string `json:"static_dir,omitempty" yaml:"static_dir,omitempty"` // Directory of front-end assets

	// Aggregation
	ProviderTimeout Duration `json:"provider_timeout,omitempty" yaml:"provider_timeout,omitempty" validate:"gt=0"` // Bound on each outbound call
	Sequential      bool     `json:"sequential,omitempty" yaml:"sequential,omitempty"`                             // Query providers one at a time

	// Credentials (never checked for presence; providers reject bad ones)
	AdzunaAppID    string `json:"adzuna_app_id,omitempty" yaml:"adzuna_app_id,omitempty"`
	AdzunaAppKey   string `json:"adzuna_app_key,omitempty" yaml:"adzuna_app_key,omitempty"`
	FindworkAPIKey string `json:"findwork_api_key,omitempty" yaml:"findwork_api_key,omitempty"`

	// Provider endpoints
	RemotiveBaseURL  string `json:"remotive_base_url,omitempty" yaml:"remotive_base_url,omitempty" validate:"omitempty,url"`
	AdzunaBaseURL    string `json:"adzuna_base_url,omitempty" yaml:"adzuna_base_url,omitempty" validate:"omitempty,url"`
	ArbeitnowBaseURL string `json:"arbeitnow_base_url,omitempty" yaml:"arbeitnow_base_url,omitempty" validate:"omitempty,url"`
	FindworkBaseURL  string `json:"findwork_base_url,omitempty" yaml:"findwork_base_url,omitempty" validate:"omitempty,url"`
}

// LoadConfig loads configuration from a JSON or YAML file.
// YAML is chosen by a .yml or .yaml extension; anything else is parsed as JSON.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Credentials are deliberately left alone: a missing key surfaces as a
// provider failure at request time.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.StaticDir == "" {
		result.StaticDir = defaults.StaticDir
	}
	if result.ProviderTimeout == 0 {
		result.ProviderTimeout = defaults.ProviderTimeout
	}
	if result.AdzunaAppID == "" {
		result.AdzunaAppID = defaults.AdzunaAppID
	}
	if result.AdzunaAppKey == "" {
		result.AdzunaAppKey = defaults.AdzunaAppKey
	}
	if result.FindworkAPIKey == "" {
		result.FindworkAPIKey = defaults.FindworkAPIKey
	}
	if result.RemotiveBaseURL == "" {
		result.RemotiveBaseURL = defaults.RemotiveBaseURL
	}
	if result.AdzunaBaseURL == "" {
		result.AdzunaBaseURL = defaults.AdzunaBaseURL
	}
	if result.ArbeitnowBaseURL == "" {
		result.ArbeitnowBaseURL = defaults.ArbeitnowBaseURL
	}
	if result.FindworkBaseURL == "" {
		result.FindworkBaseURL = defaults.FindworkBaseURL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (environment variables always win for bools)

	return result
}
