package http

import (
	"context"
	"time"

	"github.com/fwojciec/sitescan"
)

var _ sitescan.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries EFETCH failures of the wrapped fetcher with
// doubling delays. Other error codes are returned immediately.
type RetryFetcher struct {
	next   sitescan.Fetcher
	delays []time.Duration
}

// RetryDelays returns n delays doubling from base: base, 2*base, 4*base...
func RetryDelays(n int, base time.Duration) []time.Duration {
	delays := make([]time.Duration, 0, max(n, 0))
	for i := range n {
		delays = append(delays, base<<i)
	}
	return delays
}

// NewRetryFetcher wraps next so that each fetch makes up to len(delays)+1
// attempts, sleeping delays[i] before retry i+1.
func NewRetryFetcher(next sitescan.Fetcher, delays []time.Duration) *RetryFetcher {
	return &RetryFetcher{next: next, delays: delays}
}

// Fetch implements sitescan.Fetcher.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		html, err := f.next.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= len(f.delays) || sitescan.ErrorCode(err) != sitescan.EFETCH {
			return "", lastErr
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}
}

// Close closes the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
