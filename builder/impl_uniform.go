// SPDX-License-Identifier: MIT
// Package: kmeans/builder
//
// impl_uniform.go - structureless noise inside a box.

package builder

import "github.com/katalvlaran/kmeans/matrix"

func buildUniform(cfg builderConfig, n, dim int, seed int64) (*matrix.Dense, error) {
	if err := validateMin(MethodUniform, n, MinPoints); err != nil {
		return nil, err
	}
	if dim < MinDim {
		return nil, builderErrorf(MethodUniform, ErrBadDimension, "dim must be ≥ %d, got %d", MinDim, dim)
	}

	var (
		rng   = rngFrom(cfg, seed)
		width = cfg.hi - cfg.lo
		data  = make([]float64, n*dim)
		i     int
	)
	for i = range data {
		data[i] = cfg.lo + width*rng.Float64()
	}

	return matrix.FromSlice(n, dim, data)
}
