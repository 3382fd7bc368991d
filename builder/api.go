// SPDX-License-Identifier: MIT
// Package: kmeans/builder
//
// api.go - public entry points of the dataset generators.
//
// Every generator returns an n×d *matrix.Dense (one observation per row,
// the same layout the kmeans package reads) together with ground-truth
// labels where the generator has a notion of membership.
//
// Determinism:
//   • The seed argument fixes every draw; WithSeed/WithRand override it.
//   • Grid is fully deterministic and takes no seed.

package builder

import (
	"github.com/katalvlaran/kmeans/matrix"
)

// Blobs draws perCluster observations around each centre with isotropic
// Gaussian noise (σ set by WithSpread, default 1).
// labels[i] is the index of the centre observation i was drawn around.
//
// Errors: ErrTooFewPoints (perCluster < 1 or no centres), ErrBadDimension,
// ErrBadParameter (non-finite centre coordinate).
// Complexity: O(k·perCluster·d).
func Blobs(perCluster int, centres [][]float64, seed int64, opts ...BuilderOption) (*matrix.Dense, []int, error) {
	cfg := newBuilderConfig(opts...)

	return buildBlobs(cfg, perCluster, centres, seed)
}

// Uniform draws n observations uniformly from the box [lo, hi)^dim
// (WithBox, default [0, 1)). There are no labels.
//
// Errors: ErrTooFewPoints (n < 1), ErrBadDimension (dim < 1).
// Complexity: O(n·d).
func Uniform(n, dim int, seed int64, opts ...BuilderOption) (*matrix.Dense, error) {
	cfg := newBuilderConfig(opts...)

	return buildUniform(cfg, n, dim, seed)
}

// Ring places n observations on a circle of the given radius in the plane,
// at evenly spaced angles, each pushed radially by Gaussian jitter scaled by
// WithSpread (default 1, so pass WithSpread(0) for an exact polygon).
//
// Errors: ErrTooFewPoints (n < 3), ErrBadParameter (radius not finite > 0).
// Complexity: O(n).
func Ring(n int, radius float64, seed int64, opts ...BuilderOption) (*matrix.Dense, error) {
	cfg := newBuilderConfig(opts...)

	return buildRing(cfg, n, radius, seed)
}

// Grid lays out rows×cols planar observations on a lattice with spacing
// step, row-major from the origin. labels[i] is the lattice row of point i,
// which makes Grid a deterministic fixture for band-shaped clusterings.
//
// Errors: ErrTooFewPoints (rows or cols < 1), ErrBadParameter (step not finite > 0).
// Complexity: O(rows·cols).
func Grid(rows, cols int, step float64) (*matrix.Dense, []int, error) {
	return buildGrid(rows, cols, step)
}
