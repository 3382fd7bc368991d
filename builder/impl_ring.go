// SPDX-License-Identifier: MIT
// Package: kmeans/builder
//
// impl_ring.go - noisy circle in the plane.
//
// Point i sits at angle 2πi/n; its radius is radius + σ·N(0,1).
// A ring has no compact clusters, so it is the usual fixture for checking
// that k-means still terminates with every invariant intact on data it
// cannot separate.

package builder

import (
	"math"

	"github.com/katalvlaran/kmeans/matrix"
)

const ringDim = 2

func buildRing(cfg builderConfig, n int, radius float64, seed int64) (*matrix.Dense, error) {
	if err := validateMin(MethodRing, n, MinRingPoints); err != nil {
		return nil, err
	}
	if err := validatePositive(MethodRing, "radius", radius); err != nil {
		return nil, err
	}

	var (
		rng   = rngFrom(cfg, seed)
		data  = make([]float64, n*ringDim)
		theta float64
		r     float64
		i     int
	)
	for i = 0; i < n; i++ {
		theta = 2 * math.Pi * float64(i) / float64(n)
		r = radius + cfg.spread*rng.NormFloat64()
		data[i*ringDim] = r * math.Cos(theta)
		data[i*ringDim+1] = r * math.Sin(theta)
	}
	if cfg.shuffle {
		shuffleRows(rng, data, nil, ringDim)
	}

	return matrix.FromSlice(n, ringDim, data)
}
