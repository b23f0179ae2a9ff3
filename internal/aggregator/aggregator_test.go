package aggregator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonathan/job-aggregator/internal/providers"
	"github.com/jonathan/job-aggregator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider returns canned listings after an optional delay.
type stubProvider struct {
	source   types.Source
	titles   []string
	delay    time.Duration
	err      error
	calls    atomic.Int32
	sawSkill atomic.Value
}

func (s *stubProvider) Source() types.Source { return s.source }

func (s *stubProvider) Search(ctx context.Context, skill string) ([]types.JobListing, error) {
	s.calls.Add(1)
	s.sawSkill.Store(skill)

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}

	listings := make([]types.JobListing, 0, len(s.titles))
	for _, title := range s.titles {
		listings = append(listings, types.JobListing{Source: s.source, Title: title})
	}
	return listings, nil
}

func newStubs() []*stubProvider {
	return []*stubProvider{
		{source: types.SourceRemotive, titles: []string{"r1", "r2"}, delay: 40 * time.Millisecond},
		{source: types.SourceAdzuna, titles: []string{"a1"}, delay: 30 * time.Millisecond},
		{source: types.SourceArbeitnow, titles: []string{"b1", "b2"}},
		{source: types.SourceFindwork, titles: []string{"f1"}, delay: 10 * time.Millisecond},
	}
}

func asProviders(stubs []*stubProvider) []providers.Provider {
	list := make([]providers.Provider, len(stubs))
	for i, s := range stubs {
		list[i] = s
	}
	return list
}

func titles(listings []types.JobListing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.Title
	}
	return out
}

func TestSearch_ConcurrentPreservesProviderOrder(t *testing.T) {
	stubs := newStubs()
	agg := New(asProviders(stubs), Options{Timeout: time.Second})

	listings, err := agg.Search(context.Background(), "go")
	require.NoError(t, err)

	// Completion order is Arbeitnow, Findwork, Adzuna, Remotive.
	assert.Equal(t, []string{"r1", "r2", "a1", "b1", "b2", "f1"}, titles(listings))
	for _, s := range stubs {
		assert.Equal(t, int32(1), s.calls.Load())
		assert.Equal(t, "go", s.sawSkill.Load())
	}
}

func TestSearch_SequentialPreservesProviderOrder(t *testing.T) {
	agg := New(asProviders(newStubs()), Options{Sequential: true})

	listings, err := agg.Search(context.Background(), "go")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2", "a1", "b1", "b2", "f1"}, titles(listings))
}

func TestSearch_SourceMatchesProvider(t *testing.T) {
	agg := New(asProviders(newStubs()), Options{})

	listings, err := agg.Search(context.Background(), "go")
	require.NoError(t, err)

	assert.Equal(t, types.SourceRemotive, listings[0].Source)
	assert.Equal(t, types.SourceAdzuna, listings[2].Source)
	assert.Equal(t, types.SourceArbeitnow, listings[3].Source)
	assert.Equal(t, types.SourceFindwork, listings[5].Source)
}

func TestSearch_EmptyResultIsNotNil(t *testing.T) {
	stubs := []*stubProvider{
		{source: types.SourceRemotive},
		{source: types.SourceAdzuna},
	}

	for _, sequential := range []bool{false, true} {
		listings, err := New(asProviders(stubs), Options{Sequential: sequential}).Search(context.Background(), "x")
		require.NoError(t, err)
		assert.NotNil(t, listings)
		assert.Empty(t, listings)
	}
}

func TestSearch_OneFailureFailsAll(t *testing.T) {
	upstream := errors.New("adzuna exploded")

	for _, sequential := range []bool{false, true} {
		stubs := newStubs()
		stubs[1].err = upstream

		listings, err := New(asProviders(stubs), Options{Sequential: sequential}).Search(context.Background(), "go")
		require.Error(t, err, "sequential=%v", sequential)
		assert.ErrorIs(t, err, upstream)
		assert.Nil(t, listings)
	}
}

func TestSearch_SequentialStopsAtFirstFailure(t *testing.T) {
	stubs := newStubs()
	stubs[0].err = errors.New("remotive down")

	_, err := New(asProviders(stubs), Options{Sequential: true}).Search(context.Background(), "go")
	require.Error(t, err)

	for _, s := range stubs[1:] {
		assert.Equal(t, int32(0), s.calls.Load(), string(s.source))
	}
}

func TestSearch_FailureCancelsSiblings(t *testing.T) {
	slow := &stubProvider{source: types.SourceRemotive, titles: []string{"r"}, delay: 5 * time.Second}
	failing := &stubProvider{source: types.SourceAdzuna, err: errors.New("boom")}

	start := time.Now()
	_, err := New([]providers.Provider{slow, failing}, Options{}).Search(context.Background(), "go")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSearch_PerCallTimeout(t *testing.T) {
	slow := &stubProvider{source: types.SourceFindwork, titles: []string{"f"}, delay: 2 * time.Second}

	_, err := New([]providers.Provider{slow}, Options{Timeout: 20 * time.Millisecond}).Search(context.Background(), "go")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSearch_CanceledContext(t *testing.T) {
	stubs := newStubs()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, sequential := range []bool{false, true} {
		_, err := New(asProviders(stubs), Options{Sequential: sequential}).Search(ctx, "go")
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	}
	for _, s := range stubs {
		assert.Equal(t, int32(0), s.calls.Load())
	}
}

func TestSources(t *testing.T) {
	agg := New(asProviders(newStubs()), Options{})
	assert.Equal(t, types.Sources(), agg.Sources())
}
