// Package aggregator fans a skill search out to every provider and combines
// the results in a fixed provider order.
package aggregator

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-aggregator/internal/providers"
	"github.com/jonathan/job-aggregator/internal/types"
)

// Options controls how providers are queried.
type Options struct {
	// Sequential queries providers one at a time instead of concurrently.
	Sequential bool
	// Timeout bounds each provider call. Zero leaves the call to the parent context.
	Timeout time.Duration
}

// Aggregator queries a fixed, ordered list of providers.
type Aggregator struct {
	providers []providers.Provider
	opts      Options
}

// New creates an Aggregator. Results are concatenated in the order of list.
func New(list []providers.Provider, opts Options) *Aggregator {
	return &Aggregator{providers: list, opts: opts}
}

// Sources returns the provider sources in aggregation order.
func (a *Aggregator) Sources() []types.Source {
	sources := make([]types.Source, 0, len(a.providers))
	for _, p := range a.providers {
		sources = append(sources, p.Source())
	}
	return sources
}

// Search returns every provider's listings for skill, concatenated in
// provider order. The first provider failure fails the whole search and no
// partial results are returned. The result is never nil.
func (a *Aggregator) Search(ctx context.Context, skill string) ([]types.JobListing, error) {
	start := time.Now()

	var (
		slots [][]types.JobListing
		err   error
	)
	if a.opts.Sequential {
		slots, err = a.searchSequential(ctx, skill)
	} else {
		slots, err = a.searchConcurrent(ctx, skill)
	}
	if err != nil {
		log.Printf("[aggregator] search %q failed after %v: %v", skill, time.Since(start), err)
		return nil, err
	}

	total := 0
	for _, slot := range slots {
		total += len(slot)
	}
	listings := make([]types.JobListing, 0, total)
	for _, slot := range slots {
		listings = append(listings, slot...)
	}

	log.Printf("[aggregator] search %q returned %d listings from %d providers in %v",
		skill, len(listings), len(a.providers), time.Since(start))
	return listings, nil
}

func (a *Aggregator) searchSequential(ctx context.Context, skill string) ([][]types.JobListing, error) {
	slots := make([][]types.JobListing, len(a.providers))
	for i, p := range a.providers {
		listings, err := a.call(ctx, p, skill)
		if err != nil {
			return nil, err
		}
		slots[i] = listings
	}
	return slots, nil
}

func (a *Aggregator) searchConcurrent(ctx context.Context, skill string) ([][]types.JobListing, error) {
	// Each goroutine owns one slot, so no locking is needed.
	slots := make([][]types.JobListing, len(a.providers))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range a.providers {
		g.Go(func() error {
			listings, err := a.call(gctx, p, skill)
			if err != nil {
				return err
			}
			slots[i] = listings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slots, nil
}

// call runs one provider search under the per-call timeout.
func (a *Aggregator) call(ctx context.Context, p providers.Provider, skill string) ([]types.JobListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s search canceled: %w", p.Source(), err)
	}

	if a.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	listings, err := p.Search(ctx, skill)
	if err != nil {
		log.Printf("[provider] %s failed after %v: %v", p.Source(), time.Since(start), err)
		return nil, err
	}
	log.Printf("[provider] %s returned %d listings in %v", p.Source(), len(listings), time.Since(start))
	return listings, nil
}
