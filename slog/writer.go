package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitescan"
)

// Ensure LoggingResultWriter implements sitescan.ResultWriter.
var _ sitescan.ResultWriter = (*LoggingResultWriter)(nil)

// LoggingResultWriter wraps a ResultWriter and logs each file written.
type LoggingResultWriter struct {
	next   sitescan.ResultWriter
	logger *slog.Logger
}

// NewLoggingResultWriter creates a new LoggingResultWriter.
func NewLoggingResultWriter(next sitescan.ResultWriter, logger *slog.Logger) *LoggingResultWriter {
	return &LoggingResultWriter{next: next, logger: logger}
}

// WriteJSON delegates to the wrapped writer and logs the operation.
func (w *LoggingResultWriter) WriteJSON(ctx context.Context, path string, v any) (err error) {
	defer func(begin time.Time) {
		forRun(ctx, w.logger).InfoContext(ctx, "write results",
			"path", path,
			"entries", entries(v),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteJSON(ctx, path, v)
}

// entries reports the size of known result types, or -1.
func entries(v any) int {
	switch v := v.(type) {
	case []string:
		return len(v)
	case sitescan.FrequencyTable:
		return len(v)
	}
	return -1
}
