package providers

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jonathan/job-aggregator/internal/schemas"
	"github.com/jonathan/job-aggregator/internal/types"
)

const (
	// AdzunaFallbackURL is the public search page linked from every Adzuna listing.
	AdzunaFallbackURL = "https://www.adzuna.in/search?q="

	adzunaCountry        = "in"
	adzunaPage           = 1
	adzunaResultsPerPage = 10
)

type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
}

type adzunaJob struct {
	Title       string `json:"title"`
	RedirectURL string `json:"redirect_url"`
	Company     struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
}

// Adzuna queries the Adzuna India search API with application credentials.
type Adzuna struct {
	opts   Options
	appID  string
	appKey string
	schema *schemas.Validator
}

// NewAdzuna creates an Adzuna client. Empty credentials are left out of the
// query and Adzuna rejects the call.
func NewAdzuna(opts Options, appID, appKey string) *Adzuna {
	return &Adzuna{
		opts:   opts,
		appID:  appID,
		appKey: appKey,
		schema: schemas.MustForProvider("adzuna"),
	}
}

// Source returns types.SourceAdzuna.
func (p *Adzuna) Source() types.Source { return types.SourceAdzuna }

// Search returns the first page of Adzuna results for skill.
func (p *Adzuna) Search(ctx context.Context, skill string) ([]types.JobListing, error) {
	params := url.Values{}
	if p.appID != "" {
		params.Set("app_id", p.appID)
	}
	if p.appKey != "" {
		params.Set("app_key", p.appKey)
	}
	params.Set("what", skill)
	params.Set("results_per_page", fmt.Sprint(adzunaResultsPerPage))

	path := fmt.Sprintf("/v1/api/jobs/%s/search/%d?%s", adzunaCountry, adzunaPage, params.Encode())
	endpoint := joinURL(p.opts.BaseURL, path)

	var payload adzunaResponse
	if err := getPayload(ctx, p.Source(), endpoint, p.opts.fetchOptions(nil), p.schema, &payload); err != nil {
		return nil, err
	}

	fallback := AdzunaFallbackURL + escapeSkill(skill)
	listings := make([]types.JobListing, 0, len(payload.Results))
	for _, job := range payload.Results {
		listings = append(listings, types.JobListing{
			Source:    types.SourceAdzuna,
			Title:     job.Title,
			Company:   job.Company.DisplayName,
			Location:  job.Location.DisplayName,
			ApplyLink: job.RedirectURL,
			Fallback:  fallback,
		})
	}
	return listings, nil
}
