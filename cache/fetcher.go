// Package cache provides a sitescan.Fetcher decorator that reuses stored
// responses until they expire.
package cache

import (
	"context"
	"time"

	"github.com/fwojciec/sitescan"
)

// DefaultExpiry is how long a stored response is served without refetching.
const DefaultExpiry = time.Hour

// Ensure Fetcher implements sitescan.Fetcher at compile time.
var _ sitescan.Fetcher = (*Fetcher)(nil)

// Fetcher serves fresh responses from a ResponseStore and falls through to
// the wrapped Fetcher for misses and expired entries. Only successful
// fetches are stored. There is no invalidation; stale entries are
// overwritten on the next fetch of the same URL.
type Fetcher struct {
	next   sitescan.Fetcher
	store  sitescan.ResponseStore
	expiry time.Duration
	now    func() time.Time
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithExpiry sets how long stored responses stay fresh.
// A non-positive duration makes every entry stale.
func WithExpiry(d time.Duration) Option {
	return func(f *Fetcher) {
		f.expiry = d
	}
}

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(f *Fetcher) {
		f.now = now
	}
}

// NewFetcher wraps next with a cache backed by store.
func NewFetcher(next sitescan.Fetcher, store sitescan.ResponseStore, opts ...Option) *Fetcher {
	f := &Fetcher{
		next:   next,
		store:  store,
		expiry: DefaultExpiry,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the stored body for url if it is fresh, otherwise fetches
// it from the wrapped Fetcher and stores the result.
// Store failures never fail a fetch.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if resp, err := f.store.FindResponse(ctx, url); err == nil && f.fresh(resp) {
		return resp.Body, nil
	}

	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	_ = f.store.SaveResponse(ctx, &sitescan.CachedResponse{
		URL:     url,
		Body:    html,
		SavedAt: f.now(),
	})

	return html, nil
}

// Close closes the wrapped Fetcher. The store is owned by the caller.
func (f *Fetcher) Close() error {
	return f.next.Close()
}

func (f *Fetcher) fresh(resp *sitescan.CachedResponse) bool {
	return f.now().Sub(resp.SavedAt) < f.expiry
}
