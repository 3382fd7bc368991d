// SPDX-License-Identifier: MIT
// Package kmeans - configuration for the variant dispatcher.
//
// Options is a plain struct (zero value is NOT the default; start from
// DefaultOptions). Every field is read once by New and copied into the
// concrete algorithm value, so mutating Options after New has no effect.
package kmeans

import "math"

// Defaults (single source of truth).
const (
	// DefaultHartiganWongMaxIterations mirrors the classic AS 136 / R default.
	DefaultHartiganWongMaxIterations = 10

	// DefaultLloydMaxIterations is the Lloyd iteration cap.
	DefaultLloydMaxIterations = 100

	// DefaultQuickTransferFactor bounds a quick-transfer stage at factor·nobs steps.
	DefaultQuickTransferFactor = 50

	// DefaultStarts is the number of seeded restarts run by the Kmeans driver.
	DefaultStarts = 1
)

// Options configures New.
type Options struct {
	// Algo is the refinement strategy.
	Algo Algo

	// Init selects centroid seeding. InitNone makes New return the bare
	// refinement algorithm that starts from caller-supplied centroids.
	Init InitMethod

	// Seed drives every stochastic step. 0 selects a fixed default stream.
	Seed int64

	// MaxIterations caps refinement rounds. 0 ⇒ the per-algorithm default.
	MaxIterations int

	// QuickTransferFactor bounds each Hartigan–Wong quick-transfer stage at
	// QuickTransferFactor·nobs steps. 0 ⇒ DefaultQuickTransferFactor.
	QuickTransferFactor int

	// Tolerance is Lloyd's relative WCSS-improvement threshold. 0 ⇒ iterate
	// until no observation changes cluster. Ignored by other variants.
	Tolerance float64

	// Starts is the number of independent seeded restarts (Kmeans driver
	// only); the lowest total withinss wins. 0 ⇒ DefaultStarts.
	Starts int
}

// DefaultOptions returns k-means++ seeding followed by Hartigan–Wong.
func DefaultOptions() Options {
	return Options{
		Algo:   AlgoHartiganWong,
		Init:   InitKmeansPP,
		Seed:   0,
		Starts: DefaultStarts,
	}
}

// validateOptions checks internal consistency of Options.
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.MaxIterations < 0 {
		return kmeansErrorf("MaxIterations", ErrInvalidOption)
	}
	if opts.QuickTransferFactor < 0 {
		return kmeansErrorf("QuickTransferFactor", ErrInvalidOption)
	}
	if opts.Tolerance < 0 || math.IsNaN(opts.Tolerance) || math.IsInf(opts.Tolerance, 0) {
		return kmeansErrorf("Tolerance", ErrInvalidOption)
	}
	if opts.Starts < 0 {
		return kmeansErrorf("Starts", ErrInvalidOption)
	}
	switch opts.Algo {
	case AlgoHartiganWong, AlgoLloyd, AlgoReinitialize:
		// ok
	default:
		return ErrUnsupportedAlgorithm
	}
	switch opts.Init {
	case InitKmeansPP, InitRandom, InitNone:
		// ok
	default:
		return ErrUnsupportedInit
	}
	// Seeding followed by a repair-only pass has nothing to repair.
	if opts.Init != InitNone && opts.Algo == AlgoReinitialize {
		return kmeansErrorf("Init with AlgoReinitialize", ErrUnsupportedAlgorithm)
	}

	return nil
}

// orDefault returns v when positive, def otherwise.
func orDefault(v, def int) int {
	if v > 0 {
		return v
	}

	return def
}
