// SPDX-License-Identifier: MIT
// Package: kmeans/builder
//
// impl_grid.go - deterministic planar lattice.

package builder

import "github.com/katalvlaran/kmeans/matrix"

const gridDim = 2

func buildGrid(rows, cols int, step float64) (*matrix.Dense, []int, error) {
	if err := validateMin(MethodGrid, rows, MinPoints); err != nil {
		return nil, nil, err
	}
	if err := validateMin(MethodGrid, cols, MinPoints); err != nil {
		return nil, nil, err
	}
	if err := validatePositive(MethodGrid, "step", step); err != nil {
		return nil, nil, err
	}

	var (
		n      = rows * cols
		data   = make([]float64, n*gridDim)
		labels = make([]int, n)
		r, c   int
		idx    int
	)
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			data[idx*gridDim] = float64(r) * step
			data[idx*gridDim+1] = float64(c) * step
			labels[idx] = r
			idx++
		}
	}

	m, err := matrix.FromSlice(n, gridDim, data)
	if err != nil {
		return nil, nil, err
	}

	return m, labels, nil
}
