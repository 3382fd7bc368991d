// SPDX-License-Identifier: MIT
// Package instrument - Prometheus metrics for clustering runs.
package instrument

import (
	"time"

	"github.com/katalvlaran/kmeans/kmeans"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kmeans"

// Recorder receives one observation per finished Run.
// Implement it to feed a monitoring system other than Prometheus.
type Recorder interface {
	// RecordRun is called after every Run. det is the zero value when err != nil.
	RecordRun(algorithm string, det kmeans.Details, duration time.Duration, err error)
}

// NoopRecorder discards every observation.
type NoopRecorder struct{}

// RecordRun implements Recorder.
func (NoopRecorder) RecordRun(string, kmeans.Details, time.Duration, error) {}

// Metrics is the Prometheus Recorder. All vectors are labelled by the
// algorithm name given to Wrap.
type Metrics struct {
	// Runs counts successful runs per algorithm and status.
	Runs *prometheus.CounterVec

	// Errors counts runs rejected with an error.
	Errors *prometheus.CounterVec

	// Iterations observes Details.Iterations of successful runs.
	Iterations *prometheus.HistogramVec

	// Duration observes the wall time of every run in seconds.
	Duration *prometheus.HistogramVec

	// EmptyClusters counts clusters left without members.
	EmptyClusters *prometheus.CounterVec

	// Withinss holds the total within-cluster sum of squares of the last run.
	Withinss *prometheus.GaugeVec
}

var _ Recorder = (*Metrics)(nil)

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total clustering runs",
			},
			[]string{"algorithm", "status"}, // status: converged/empty-cluster/max-iterations/quick-transfer-cap
		),
		Errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total clustering runs rejected with an error",
			},
			[]string{"algorithm"},
		),
		Iterations: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "iterations",
				Help:      "Refinement rounds per run",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
			},
			[]string{"algorithm"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Clustering run latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"algorithm"},
		),
		EmptyClusters: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "empty_clusters_total",
				Help:      "Total clusters left without members",
			},
			[]string{"algorithm"},
		),
		Withinss: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "withinss",
				Help:      "Total within-cluster sum of squares of the last run",
			},
			[]string{"algorithm"},
		),
	}
}

// RecordRun implements Recorder.
func (m *Metrics) RecordRun(algorithm string, det kmeans.Details, duration time.Duration, err error) {
	m.Duration.WithLabelValues(algorithm).Observe(duration.Seconds())
	if err != nil {
		m.Errors.WithLabelValues(algorithm).Inc()
		return
	}
	m.Runs.WithLabelValues(algorithm, det.Status.String()).Inc()
	m.Iterations.WithLabelValues(algorithm).Observe(float64(det.Iterations))
	m.EmptyClusters.WithLabelValues(algorithm).Add(float64(det.EmptyClusters().GetCardinality()))
	m.Withinss.WithLabelValues(algorithm).Set(det.TotalWithinss())
}
