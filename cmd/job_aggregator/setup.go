package main

import (
	"fmt"

	"github.com/jonathan/job-aggregator/internal/aggregator"
	"github.com/jonathan/job-aggregator/internal/config"
	"github.com/jonathan/job-aggregator/internal/providers"
)

// loadConfig reads and validates configuration. A positive port overrides
// the configured one.
func loadConfig(port int) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if port > 0 {
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newAggregator wires the four providers from cfg.
func newAggregator(cfg *config.Config) *aggregator.Aggregator {
	return aggregator.New(providers.FromConfig(*cfg, nil), aggregator.Options{
		Sequential: cfg.Sequential,
		Timeout:    cfg.ProviderTimeout.Std(),
	})
}
