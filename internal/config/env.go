package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Default values used when neither a config file nor the environment sets a field.
const (
	DefaultPort             = 5000
	DefaultStaticDir        = "../sample"
	DefaultProviderTimeout  = 15 * time.Second
	DefaultRemotiveBaseURL  = "https://remotive.com"
	DefaultAdzunaBaseURL    = "https://api.adzuna.com"
	DefaultArbeitnowBaseURL = "https://www.arbeitnow.com"
	DefaultFindworkBaseURL  = "https://findwork.dev"
)

// ConfigFileEnv names the environment variable pointing at an optional config file.
const ConfigFileEnv = "JOB_AGGREGATOR_CONFIG"

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:             DefaultPort,
		StaticDir:        DefaultStaticDir,
		ProviderTimeout:  Duration(DefaultProviderTimeout),
		RemotiveBaseURL:  DefaultRemotiveBaseURL,
		AdzunaBaseURL:    DefaultAdzunaBaseURL,
		ArbeitnowBaseURL: DefaultArbeitnowBaseURL,
		FindworkBaseURL:  DefaultFindworkBaseURL,
	}
}

// Load builds the process configuration from defaults, the optional config
// file named by JOB_AGGREGATOR_CONFIG, and environment variables, in that
// order of increasing precedence.
func Load() (*Config, error) {
	cfg := Defaults()

	if path := os.Getenv(ConfigFileEnv); path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv overlays environment variables onto c.
func (c *Config) applyEnv() error {
	port, err := getEnvInt("PORT", c.Port)
	if err != nil {
		return err
	}
	c.Port = port

	timeout, err := getEnvDuration("PROVIDER_TIMEOUT", c.ProviderTimeout.Std())
	if err != nil {
		return err
	}
	c.ProviderTimeout = Duration(timeout)

	sequential, err := getEnvBool("AGGREGATOR_SEQUENTIAL", c.Sequential)
	if err != nil {
		return err
	}
	c.Sequential = sequential

	c.StaticDir = getEnvString("STATIC_DIR", c.StaticDir)
	c.AdzunaAppID = getEnvString("ADZUNA_APP_ID", c.AdzunaAppID)
	c.AdzunaAppKey = getEnvString("ADZUNA_API_KEY", c.AdzunaAppKey)
	c.FindworkAPIKey = getEnvString("FINDWORK_API_KEY", c.FindworkAPIKey)
	c.RemotiveBaseURL = getEnvString("REMOTIVE_BASE_URL", c.RemotiveBaseURL)
	c.AdzunaBaseURL = getEnvString("ADZUNA_BASE_URL", c.AdzunaBaseURL)
	c.ArbeitnowBaseURL = getEnvString("ARBEITNOW_BASE_URL", c.ArbeitnowBaseURL)
	c.FindworkBaseURL = getEnvString("FINDWORK_BASE_URL", c.FindworkBaseURL)

	return nil
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return intValue, nil
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %v", key, err)
	}
	return boolValue, nil
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return duration, nil
}
