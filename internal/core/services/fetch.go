package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/bargo/internal/core/domain"
	"github.com/custodia-labs/bargo/internal/core/ports/driven"
)

// FetcherRegistry selects a fetcher for a dependency source.
// Fetchers are consulted in registration order.
type FetcherRegistry struct {
	fetchers []driven.Fetcher
}

// NewFetcherRegistry creates a registry over the given fetchers.
func NewFetcherRegistry(fetchers ...driven.Fetcher) *FetcherRegistry {
	r := &FetcherRegistry{}
	for _, f := range fetchers {
		r.Register(f)
	}
	return r
}

// Register adds a fetcher. Nil fetchers are ignored.
func (r *FetcherRegistry) Register(f driven.Fetcher) {
	if f == nil {
		return
	}
	r.fetchers = append(r.fetchers, f)
}

// For returns the first fetcher supporting source.
func (r *FetcherRegistry) For(source string) (driven.Fetcher, error) {
	if r != nil {
		for _, f := range r.fetchers {
			if f.Supports(source) {
				return f, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedSource, source)
}

// Fetch downloads source with the matching fetcher.
// Every failure wraps domain.ErrFetchFailed.
func (r *FetcherRegistry) Fetch(ctx context.Context, source string) ([]byte, error) {
	f, err := r.For(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	body, err := f.Fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrFetchFailed, f.Name(), err)
	}
	return body, nil
}
