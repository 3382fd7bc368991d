// SPDX-License-Identifier: MIT
// Package: kmeans/builder
//
// impl_blobs.go - Gaussian blobs around fixed centres.
//
// Contract:
//   • Observations are emitted centre by centre, perCluster each, unless
//     WithShuffle permutes them (labels follow their rows).
//   • Noise: x = centre + σ·N(0,1) independently per coordinate.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/kmeans/matrix"
)

func buildBlobs(cfg builderConfig, perCluster int, centres [][]float64, seed int64) (*matrix.Dense, []int, error) {
	if err := validateMin(MethodBlobs, perCluster, MinPoints); err != nil {
		return nil, nil, err
	}
	dim, err := validateProfiles(MethodBlobs, centres)
	if err != nil {
		return nil, nil, err
	}

	var (
		rng    = rngFrom(cfg, seed)
		n      = perCluster * len(centres)
		data   = make([]float64, n*dim)
		labels = make([]int, n)
		row    int
		c, p   int
		d      int
	)
	for c = range centres {
		for p = 0; p < perCluster; p++ {
			for d = 0; d < dim; d++ {
				data[row*dim+d] = centres[c][d] + cfg.spread*rng.NormFloat64()
			}
			labels[row] = c
			row++
		}
	}
	if cfg.shuffle {
		shuffleRows(rng, data, labels, dim)
	}

	m, err := matrix.FromSlice(n, dim, data)
	if err != nil {
		return nil, nil, err
	}

	return m, labels, nil
}

// shuffleRows applies one Fisher-Yates permutation to the rows of data and
// to labels (when non-nil).
func shuffleRows(rng *rand.Rand, data []float64, labels []int, dim int) {
	n := len(data) / dim
	rng.Shuffle(n, func(i, j int) {
		var d int
		for d = 0; d < dim; d++ {
			data[i*dim+d], data[j*dim+d] = data[j*dim+d], data[i*dim+d]
		}
		if labels != nil {
			labels[i], labels[j] = labels[j], labels[i]
		}
	})
}
