package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitescan"
)

// Ensure LoggingResponseStore implements sitescan.ResponseStore.
var _ sitescan.ResponseStore = (*LoggingResponseStore)(nil)

// LoggingResponseStore wraps a ResponseStore with debug logging of cache
// lookups and saves. Read and write failures other than a miss are logged
// as warnings.
type LoggingResponseStore struct {
	next   sitescan.ResponseStore
	logger *slog.Logger
}

// NewLoggingResponseStore creates a new LoggingResponseStore.
func NewLoggingResponseStore(next sitescan.ResponseStore, logger *slog.Logger) *LoggingResponseStore {
	return &LoggingResponseStore{next: next, logger: logger}
}

// FindResponse delegates to the wrapped store and logs hit or miss.
func (s *LoggingResponseStore) FindResponse(ctx context.Context, url string) (resp *sitescan.CachedResponse, err error) {
	defer func(begin time.Time) {
		logger := forRun(ctx, s.logger)
		attrs := []any{
			"url", url,
			"hit", err == nil,
			"duration", time.Since(begin),
		}
		switch {
		case err == nil:
			attrs = append(attrs, "age", time.Since(resp.SavedAt).Round(time.Second))
		case sitescan.ErrorCode(err) != sitescan.ENOTFOUND:
			logger.WarnContext(ctx, "cache lookup", append(attrs, "err", err)...)
			return
		}
		logger.DebugContext(ctx, "cache lookup", attrs...)
	}(time.Now())
	return s.next.FindResponse(ctx, url)
}

// SaveResponse delegates to the wrapped store and logs the write.
func (s *LoggingResponseStore) SaveResponse(ctx context.Context, resp *sitescan.CachedResponse) (err error) {
	defer func(begin time.Time) {
		logger := forRun(ctx, s.logger)
		if err != nil {
			logger.WarnContext(ctx, "cache save",
				"url", resp.URL,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		logger.DebugContext(ctx, "cache save",
			"url", resp.URL,
			"bytes", len(resp.Body),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.SaveResponse(ctx, resp)
}
