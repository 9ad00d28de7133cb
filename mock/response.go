package mock

import (
	"context"

	"github.com/fwojciec/sitescan"
)

var _ sitescan.ResponseStore = (*ResponseStore)(nil)

// ResponseStore is a mock implementation of sitescan.ResponseStore.
type ResponseStore struct {
	FindResponseFn func(ctx context.Context, url string) (*sitescan.CachedResponse, error)
	SaveResponseFn func(ctx context.Context, resp *sitescan.CachedResponse) error
}

func (s *ResponseStore) FindResponse(ctx context.Context, url string) (*sitescan.CachedResponse, error) {
	return s.FindResponseFn(ctx, url)
}

func (s *ResponseStore) SaveResponse(ctx context.Context, resp *sitescan.CachedResponse) error {
	return s.SaveResponseFn(ctx, resp)
}
