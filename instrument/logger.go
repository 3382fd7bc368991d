// SPDX-License-Identifier: MIT
package instrument

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/kmeans/kmeans"
)

// NoopLogger returns a logger that discards all output.
func NoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}

// logRun writes one record per Run: Error on failure, Warn when the run
// ended on a cap or left an unrepairable cluster, Debug otherwise.
func logRun(ctx context.Context, l *slog.Logger, algorithm string, ndim, nobs, k int, det kmeans.Details, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "kmeans run failed",
			"algorithm", algorithm,
			"ndim", ndim,
			"nobs", nobs,
			"k", k,
			"error", err,
		)
		return
	}

	attrs := []any{
		"algorithm", algorithm,
		"ndim", ndim,
		"nobs", nobs,
		"k", k,
		"status", det.Status.String(),
		"iterations", det.Iterations,
		"withinss", det.TotalWithinss(),
		"duration", duration,
	}
	if det.Status != kmeans.StatusConverged {
		l.WarnContext(ctx, "kmeans run did not converge", attrs...)
		return
	}
	l.DebugContext(ctx, "kmeans run completed", attrs...)
}
