package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/sitescan"
)

// Compile-time interface verification.
var _ sitescan.ResponseStore = (*ResponseStore)(nil)

// ResponseStore implements sitescan.ResponseStore using SQLite.
// Rows are keyed by the exact request URL.
type ResponseStore struct {
	db *DB
}

// NewResponseStore creates a new ResponseStore.
func NewResponseStore(db *DB) *ResponseStore {
	return &ResponseStore{db: db}
}

// FindResponse retrieves the response stored for url.
// A row whose body no longer matches its content hash is reported as
// ENOTFOUND so callers refetch it.
func (s *ResponseStore) FindResponse(ctx context.Context, url string) (*sitescan.CachedResponse, error) {
	var resp sitescan.CachedResponse
	var savedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT url, body, content_hash, saved_at
		FROM responses
		WHERE url = ?
	`, url).Scan(&resp.URL, &resp.Body, &resp.ContentHash, &savedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, sitescan.Errorf(sitescan.ENOTFOUND, "cached response not found")
	}
	if err != nil {
		return nil, err
	}

	if resp.SavedAt, err = parseRFC3339(savedAt, "saved_at"); err != nil {
		return nil, err
	}

	if resp.ContentHash != hashContent(resp.Body) {
		return nil, sitescan.Errorf(sitescan.ENOTFOUND, "cached response for %s is corrupt", url)
	}

	return &resp, nil
}

// SaveResponse inserts or replaces the response for resp.URL.
// ContentHash is computed from the body; SavedAt defaults to now.
func (s *ResponseStore) SaveResponse(ctx context.Context, resp *sitescan.CachedResponse) error {
	if err := resp.Validate(); err != nil {
		return err
	}

	if resp.SavedAt.IsZero() {
		resp.SavedAt = time.Now()
	}
	resp.SavedAt = resp.SavedAt.UTC()
	resp.ContentHash = hashContent(resp.Body)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO responses (url, body, content_hash, saved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			body = excluded.body,
			content_hash = excluded.content_hash,
			saved_at = excluded.saved_at
	`, resp.URL, resp.Body, resp.ContentHash, resp.SavedAt.Format(time.RFC3339Nano))

	return err
}
