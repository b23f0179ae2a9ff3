package providers

import (
	"net/http"

	"github.com/jonathan/job-aggregator/internal/config"
)

// FromConfig builds the four providers in aggregation order:
// Remotive, Adzuna, Arbeitnow, Findwork.
func FromConfig(cfg config.Config, client *http.Client) []Provider {
	opts := func(baseURL string) Options {
		return Options{
			BaseURL: baseURL,
			Timeout: cfg.ProviderTimeout.Std(),
			Client:  client,
		}
	}

	return []Provider{
		NewRemotive(opts(cfg.RemotiveBaseURL)),
		NewAdzuna(opts(cfg.AdzunaBaseURL), cfg.AdzunaAppID, cfg.AdzunaAppKey),
		NewArbeitnow(opts(cfg.ArbeitnowBaseURL)),
		NewFindwork(opts(cfg.FindworkBaseURL), cfg.FindworkAPIKey),
	}
}
