package providers

import (
	"context"

	"github.com/jonathan/job-aggregator/internal/schemas"
	"github.com/jonathan/job-aggregator/internal/types"
)

// RemotiveFallbackURL is the public search page linked from every Remotive listing.
const RemotiveFallbackURL = "https://remotive.com/remote-jobs?search="

type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

type remotiveJob struct {
	Title                     string `json:"title"`
	CompanyName               string `json:"company_name"`
	CandidateRequiredLocation string `json:"candidate_required_location"`
	URL                       string `json:"url"`
}

// Remotive queries the Remotive remote-jobs API. No authentication.
type Remotive struct {
	opts   Options
	schema *schemas.Validator
}

// NewRemotive creates a Remotive client.
func NewRemotive(opts Options) *Remotive {
	return &Remotive{opts: opts, schema: schemas.MustForProvider("remotive")}
}

// Source returns types.SourceRemotive.
func (p *Remotive) Source() types.Source { return types.SourceRemotive }

// Search returns Remotive's listings for skill, in provider order.
func (p *Remotive) Search(ctx context.Context, skill string) ([]types.JobListing, error) {
	endpoint := joinURL(p.opts.BaseURL, "/api/remote-jobs?search="+escapeSkill(skill))

	var payload remotiveResponse
	if err := getPayload(ctx, p.Source(), endpoint, p.opts.fetchOptions(nil), p.schema, &payload); err != nil {
		return nil, err
	}

	fallback := RemotiveFallbackURL + escapeSkill(skill)
	listings := make([]types.JobListing, 0, len(payload.Jobs))
	for _, job := range payload.Jobs {
		listings = append(listings, types.JobListing{
			Source:    types.SourceRemotive,
			Title:     job.Title,
			Company:   job.CompanyName,
			Location:  job.CandidateRequiredLocation,
			ApplyLink: job.URL,
			Fallback:  fallback,
		})
	}
	return listings, nil
}
