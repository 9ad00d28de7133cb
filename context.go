package sitescan

import "context"

// contextKey represents an internal key for adding context fields.
type contextKey int

const (
	// runIDContextKey stores the ID of the scan in progress.
	runIDContextKey = contextKey(iota + 1)
)

// NewContextWithRunID returns a new context carrying the scan run ID.
func NewContextWithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDContextKey, id)
}

// RunIDFromContext returns the scan run ID stored in ctx, if any.
func RunIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runIDContextKey).(string)
	return id
}
