package mock

import (
	"context"

	"github.com/fwojciec/sitescan"
)

var _ sitescan.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of sitescan.ResultWriter.
type ResultWriter struct {
	WriteJSONFn func(ctx context.Context, path string, v any) error
}

func (w *ResultWriter) WriteJSON(ctx context.Context, path string, v any) error {
	return w.WriteJSONFn(ctx, path, v)
}
