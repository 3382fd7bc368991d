// SPDX-License-Identifier: MIT
// Package instrument - observability decorator for kmeans.Algorithm.
//
// Wrap returns an Algorithm that delegates to the wrapped one and, around
// every Run, records metrics and writes a structured log record. The
// clustering result is passed through untouched.
//
// Options (functional, applied in order):
//   - WithRecorder: metrics sink (default NoopRecorder).
//   - WithLogger:   *slog.Logger (default NoopLogger).
//   - WithContext:  context attached to log records (default Background).
package instrument

import (
	"context"
	"log/slog"
	"time"

	"github.com/katalvlaran/kmeans/kmeans"
)

// Option configures Wrap.
type Option func(*config)

type config struct {
	recorder Recorder
	logger   *slog.Logger
	ctx      context.Context
}

// WithRecorder sets the metrics sink. A nil r keeps the current sink.
func WithRecorder(r Recorder) Option {
	return func(c *config) {
		if r != nil {
			c.recorder = r
		}
	}
}

// WithLogger sets the structured logger. A nil l keeps the current logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithContext attaches ctx to every log record.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// Instrumented decorates an Algorithm with metrics and logging.
// Like the algorithm it wraps, it is not safe for concurrent use.
type Instrumented struct {
	name string
	next kmeans.Algorithm
	cfg  config
}

var _ kmeans.Algorithm = (*Instrumented)(nil)

// Wrap decorates next. name becomes the "algorithm" label and log attribute;
// an empty name falls back to "kmeans".
func Wrap(name string, next kmeans.Algorithm, opts ...Option) *Instrumented {
	if name == "" {
		name = "kmeans"
	}
	cfg := config{
		recorder: NoopRecorder{},
		logger:   NoopLogger(),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Instrumented{name: name, next: next, cfg: cfg}
}

// Name returns the label used for metrics and logs.
func (in *Instrumented) Name() string { return in.name }

// Run implements kmeans.Algorithm.
func (in *Instrumented) Run(ndim, nobs int, data []float64, ncenters int, centers []float64, clusters []int) (kmeans.Details, error) {
	start := time.Now()
	det, err := in.next.Run(ndim, nobs, data, ncenters, centers, clusters)
	elapsed := time.Since(start)

	in.cfg.recorder.RecordRun(in.name, det, elapsed, err)
	logRun(in.cfg.ctx, in.cfg.logger, in.name, ndim, nobs, ncenters, det, elapsed, err)

	return det, err
}
