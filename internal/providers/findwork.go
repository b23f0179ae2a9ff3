package providers

import (
	"context"

	"github.com/jonathan/job-aggregator/internal/schemas"
	"github.com/jonathan/job-aggregator/internal/types"
)

const (
	// FindworkFallbackURL is the public search page linked from every Findwork listing.
	FindworkFallbackURL = "https://findwork.dev/?search="

	// DefaultFindworkLocation is used when a posting has no location.
	DefaultFindworkLocation = "Remote"
)

type findworkResponse struct {
	Results []findworkJob `json:"results"`
}

type findworkJob struct {
	Role        string `json:"role"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	URL         string `json:"url"`
}

// Findwork queries the Findwork search API using token authentication.
type Findwork struct {
	opts   Options
	apiKey string
	schema *schemas.Validator
}

// NewFindwork creates a Findwork client.
func NewFindwork(opts Options, apiKey string) *Findwork {
	return &Findwork{opts: opts, apiKey: apiKey, schema: schemas.MustForProvider("findwork")}
}

// Source returns types.SourceFindwork.
func (p *Findwork) Source() types.Source { return types.SourceFindwork }

// Search returns Findwork's listings for skill, in provider order.
func (p *Findwork) Search(ctx context.Context, skill string) ([]types.JobListing, error) {
	endpoint := joinURL(p.opts.BaseURL, "/api/jobs/?search="+escapeSkill(skill))
	headers := map[string]string{"Authorization": "Token " + p.apiKey}

	var payload findworkResponse
	if err := getPayload(ctx, p.Source(), endpoint, p.opts.fetchOptions(headers), p.schema, &payload); err != nil {
		return nil, err
	}

	fallback := FindworkFallbackURL + escapeSkill(skill)
	listings := make([]types.JobListing, 0, len(payload.Results))
	for _, job := range payload.Results {
		location := job.Location
		if location == "" {
			location = DefaultFindworkLocation
		}
		listings = append(listings, types.JobListing{
			Source:    types.SourceFindwork,
			Title:     job.Role,
			Company:   job.CompanyName,
			Location:  location,
			ApplyLink: job.URL,
			Fallback:  fallback,
		})
	}
	return listings, nil
}
