package sitescan

import (
	"context"
	"time"
)

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch returns the body of the page at url.
	// Transport failures, timeouts and non-2xx responses return EFETCH.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// CachedResponse is a successful response body kept for reuse.
type CachedResponse struct {
	URL         string    `json:"url"`
	Body        string    `json:"body"`
	ContentHash string    `json:"contentHash"`
	SavedAt     time.Time `json:"savedAt"`
}

// Validate returns an error if the response contains invalid fields.
func (r *CachedResponse) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "cached response URL required")
	}
	return nil
}

// ResponseStore persists fetched responses keyed by exact request URL.
type ResponseStore interface {
	// FindResponse returns the stored response for url.
	// Returns ENOTFOUND if nothing usable is stored.
	FindResponse(ctx context.Context, url string) (*CachedResponse, error)

	// SaveResponse inserts or replaces the response for resp.URL.
	SaveResponse(ctx context.Context, resp *CachedResponse) error
}
