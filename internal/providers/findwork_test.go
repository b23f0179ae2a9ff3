package providers

import (
	"context"
	"net/http"
	"testing"

	"github.com/jonathan/job-aggregator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const findworkFixture = `{
	"count": 4,
	"next": null,
	"results": [
		{"id": 1, "role": "Go Engineer", "company_name": "Initech", "location": "London", "url": "https://findwork.dev/1/go-engineer"},
		{"id": 2, "role": "SRE", "company_name": "Hooli", "location": null, "url": "https://findwork.dev/2/sre"},
		{"id": 3, "role": "Platform Engineer", "company_name": "Umbrella", "location": "", "url": "https://findwork.dev/3/platform"},
		{"id": 4, "role": "Data Engineer", "company_name": "Stark", "url": "https://findwork.dev/4/data"}
	]
}`

func TestFindwork_Search(t *testing.T) {
	server, rec := newProviderServer(t, http.StatusOK, findworkFixture)

	listings, err := NewFindwork(testOptions(server.URL), "fw-token").Search(context.Background(), "go")
	require.NoError(t, err)
	require.Len(t, listings, 4)

	u, header, _ := rec.last()
	assert.Equal(t, "/api/jobs/", u.Path)
	assert.Equal(t, "go", u.Query().Get("search"))
	assert.Equal(t, "Token fw-token", header.Get("Authorization"))

	assert.Equal(t, types.JobListing{
		Source:    types.SourceFindwork,
		Title:     "Go Engineer",
		Company:   "Initech",
		Location:  "London",
		ApplyLink: "https://findwork.dev/1/go-engineer",
		Fallback:  "https://findwork.dev/?search=go",
	}, listings[0])
}

func TestFindwork_LocationDefaultsToRemote(t *testing.T) {
	server, _ := newProviderServer(t, http.StatusOK, findworkFixture)

	listings, err := NewFindwork(testOptions(server.URL), "k").Search(context.Background(), "go")
	require.NoError(t, err)

	// null, empty and absent all fall back
	for _, listing := range listings[1:] {
		assert.Equal(t, DefaultFindworkLocation, listing.Location, listing.Title)
	}
}

func TestFindwork_Unauthorized(t *testing.T) {
	server, _ := newProviderServer(t, http.StatusUnauthorized, `{"detail":"Invalid token."}`)

	_, err := NewFindwork(testOptions(server.URL), "").Search(context.Background(), "go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Findwork")
}
