// Package types provides type definitions for structured data used throughout the job aggregator.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Source identifies the provider a listing came from.
type Source string

const (
	// SourceRemotive is the Remotive remote-jobs API
	SourceRemotive Source = "Remotive"
	// SourceAdzuna is the Adzuna search API (India endpoint)
	SourceAdzuna Source = "Adzuna"
	// SourceArbeitnow is the Arbeitnow job board API
	SourceArbeitnow Source = "Arbeitnow"
	// SourceFindwork is the Findwork search API
	SourceFindwork Source = "Findwork"
)

// Sources returns every provider in aggregation order.
func Sources() []Source {
	return []Source{SourceRemotive, SourceAdzuna, SourceArbeitnow, SourceFindwork}
}

// JobListing is a normalized job posting, uniform across providers.
type JobListing struct {
	Source    Source `json:"source"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Location  string `json:"location"`
	ApplyLink string `json:"applyLink"`
	Fallback  string `json:"fallback"` // Provider search page built from the skill
}
