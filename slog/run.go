package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/sitescan"
)

// forRun returns logger tagged with the run ID carried by ctx.
func forRun(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if id := sitescan.RunIDFromContext(ctx); id != "" {
		return logger.With("run", id)
	}
	return logger
}
