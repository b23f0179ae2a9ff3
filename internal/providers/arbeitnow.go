package providers

import (
	"context"
	"strings"

	"github.com/jonathan/job-aggregator/internal/schemas"
	"github.com/jonathan/job-aggregator/internal/types"
)

const (
	// ArbeitnowFallbackURL is the public listing page linked from every Arbeitnow listing.
	ArbeitnowFallbackURL = "https://www.arbeitnow.com/jobs"

	// ArbeitnowMaxResults caps how many tag matches are returned.
	ArbeitnowMaxResults = 10
)

type arbeitnowResponse struct {
	Data []arbeitnowJob `json:"data"`
}

type arbeitnowJob struct {
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	Location    string   `json:"location"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags"`
}

// Arbeitnow queries the Arbeitnow job board. The API has no search, so the
// whole board is fetched and filtered by tag locally.
type Arbeitnow struct {
	opts   Options
	schema *schemas.Validator
}

// NewArbeitnow creates an Arbeitnow client.
func NewArbeitnow(opts Options) *Arbeitnow {
	return &Arbeitnow{opts: opts, schema: schemas.MustForProvider("arbeitnow")}
}

// Source returns types.SourceArbeitnow.
func (p *Arbeitnow) Source() types.Source { return types.SourceArbeitnow }

// Search returns up to ArbeitnowMaxResults board postings whose tags mention skill.
func (p *Arbeitnow) Search(ctx context.Context, skill string) ([]types.JobListing, error) {
	endpoint := joinURL(p.opts.BaseURL, "/api/job-board-api")

	var payload arbeitnowResponse
	if err := getPayload(ctx, p.Source(), endpoint, p.opts.fetchOptions(nil), p.schema, &payload); err != nil {
		return nil, err
	}

	listings := make([]types.JobListing, 0, ArbeitnowMaxResults)
	for _, job := range payload.Data {
		if len(listings) == ArbeitnowMaxResults {
			break
		}
		if !MatchesTags(job.Tags, skill) {
			continue
		}
		listings = append(listings, types.JobListing{
			Source:    types.SourceArbeitnow,
			Title:     job.Title,
			Company:   job.CompanyName,
			Location:  job.Location,
			ApplyLink: job.URL,
			Fallback:  ArbeitnowFallbackURL,
		})
	}
	return listings, nil
}

// MatchesTags reports whether the space-joined, lowercased tags contain the
// lowercased skill as a substring. A skill may therefore span two tags.
func MatchesTags(tags []string, skill string) bool {
	joined := strings.ToLower(strings.Join(tags, " "))
	return strings.Contains(joined, strings.ToLower(skill))
}
