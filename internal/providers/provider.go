// Package providers implements clients for the external job-search APIs and
// normalizes their payloads into types.JobListing.
package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/job-aggregator/internal/fetch"
	"github.com/jonathan/job-aggregator/internal/schemas"
	"github.com/jonathan/job-aggregator/internal/types"
)

// Provider fetches listings for a skill from one external job API.
type Provider interface {
	Source() types.Source
	Search(ctx context.Context, skill string) ([]types.JobListing, error)
}

// Options configures a provider client.
type Options struct {
	BaseURL string        // API origin, e.g. https://remotive.com
	Timeout time.Duration // Bound on the outbound call
	Client  *http.Client  // Optional shared client
}

// Error represents a failed provider call: transport, status, decode or payload shape.
type Error struct {
	Provider types.Source
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s provider error: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s provider error: %s", e.Provider, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// fetchOptions builds fetch options from provider options plus extra headers.
func (o Options) fetchOptions(headers map[string]string) *fetch.Options {
	opts := fetch.DefaultOptions()
	if o.Timeout > 0 {
		opts.Timeout = o.Timeout
	}
	opts.Client = o.Client
	opts.Headers = headers
	return opts
}

// getPayload fetches urlStr, decodes it into out and checks it against the
// provider's payload schema. Every failure is wrapped in *Error.
func getPayload(ctx context.Context, source types.Source, urlStr string, opts *fetch.Options, schema *schemas.Validator, out any) error {
	result, err := fetch.JSON(ctx, urlStr, opts, out)
	if err != nil {
		return &Error{Provider: source, Message: "request failed", Cause: err}
	}

	if err := schema.Validate(result.Body); err != nil {
		return &Error{Provider: source, Message: "unexpected payload", Cause: err}
	}

	return nil
}

// escapeSkill percent-encodes a skill for use in a query string, spelling
// spaces as %20 so fallback links match what browsers produce.
func escapeSkill(skill string) string {
	return strings.ReplaceAll(url.QueryEscape(skill), "+", "%20")
}

// joinURL appends path to a base URL, tolerating a trailing slash on base.
func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + path
}
