// SPDX-License-Identifier: MIT
// Package: kmeans/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng     = nil        (seed argument of the generator decides)
//   • spread  = 1.0        (Gaussian σ around blob centres, ring jitter scale)
//   • lo, hi  = 0.0, 1.0   (Uniform bounding box per dimension)
//   • shuffle = false      (observations grouped by cluster, in order)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// RNG for stochastic draws; nil means "derive from the seed argument".
	rng *rand.Rand

	// Gaussian standard deviation of the noise around a blob centre (>= 0).
	spread float64

	// Uniform bounding box, identical for every dimension (lo < hi).
	lo, hi float64

	// Permute observations (and labels) after generation.
	shuffle bool
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultSpread = 1.0
	defaultLo     = 0.0
	defaultHi     = 1.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		spread: defaultSpread,
		lo:     defaultLo,
		hi:     defaultHi,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns the configured RNG, or a fresh one seeded with seed.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
