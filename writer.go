package sitescan

import "context"

// ResultWriter persists scan results as JSON documents.
type ResultWriter interface {
	// WriteJSON serializes v to the file at path.
	// Returns EIO if the file cannot be written.
	WriteJSON(ctx context.Context, path string, v any) error
}
