// SPDX-License-Identifier: MIT
// Package: kmeans/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via the seed argument,
//     WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a generator by mutating a builderConfig before
// any observation is drawn.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG, overriding the seed argument.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed, overriding the
// seed argument of the generator.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSpread sets the Gaussian standard deviation around blob centres and
// the radial jitter of Ring. Panics on negative or non-finite sigma.
func WithSpread(sigma float64) BuilderOption {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic("builder: WithSpread(sigma) requires a finite sigma >= 0")
	}
	return func(c *builderConfig) {
		c.spread = sigma
	}
}

// WithBox sets the per-dimension bounding box [lo, hi) of Uniform.
// Panics unless lo < hi and both are finite.
func WithBox(lo, hi float64) BuilderOption {
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		panic("builder: WithBox(lo, hi) requires finite lo < hi")
	}
	return func(c *builderConfig) {
		c.lo, c.hi = lo, hi
	}
}

// WithShuffle permutes generated observations together with their labels,
// so that cluster membership is not implied by position.
func WithShuffle() BuilderOption {
	return func(c *builderConfig) {
		c.shuffle = true
	}
}
