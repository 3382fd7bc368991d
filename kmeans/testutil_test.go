// Package kmeans_test provides the fixtures and invariant checks shared by
// the *_test.go files of this package.
package kmeans_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/kmeans/kmeans"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the deterministic seed used by stochastic tests.
	seedDet = int64(7)

	// epsTight bounds floating-point disagreement between equivalent computations.
	epsTight = 1e-9
)

// flatten converts row-wise observations into a column-major ndim×nobs buffer.
func flatten(points [][]float64) (ndim, nobs int, data []float64) {
	nobs = len(points)
	if nobs == 0 {
		return 0, 0, nil
	}
	ndim = len(points[0])
	data = make([]float64, 0, ndim*nobs)
	var i int
	for i = range points {
		data = append(data, points[i]...)
	}

	return ndim, nobs, data
}

// twoBlobs returns six 2-D points forming two groups of three:
// indices 0..2 around (1.5, 1.33) and 3..5 around (8.5, 8.67).
func twoBlobs() [][]float64 {
	return [][]float64{
		{1, 1}, {1.5, 2}, {2, 1},
		{8, 8}, {9, 8.5}, {8.5, 9.5},
	}
}

// threeBlobs returns twelve 2-D points in three tight, far-apart groups of four.
func threeBlobs() [][]float64 {
	return [][]float64{
		{0, 0}, {0.5, 0}, {0, 0.5}, {0.5, 0.5},
		{100, 0}, {100.5, 0}, {100, 0.5}, {100.5, 0.5},
		{0, 100}, {0.5, 100}, {0, 100.5}, {0.5, 100.5},
	}
}

// transferLine is a 1-D set whose initial assignment from centers {0, 1}
// forces one optimal transfer (observation 1 moves to cluster 0).
func transferLine() (ndim, nobs int, data []float64) {
	return 1, 5, []float64{0, 1, 10, 11, 12}
}

// randomPoints returns n uniformly drawn ndim-dimensional observations.
func randomPoints(n, ndim int, seed int64) []float64 {
	var (
		rng  = rand.New(rand.NewSource(seed))
		data = make([]float64, n*ndim)
		i    int
	)
	for i = range data {
		data[i] = rng.Float64() * 100
	}

	return data
}

// requireInvariants checks the properties every Run must satisfy:
// clusters in range, Σ Sizes == nobs, Sizes agree with clusters, withinss
// non-negative and equal to a from-scratch recomputation. When meanCentroids
// is true clusters with at most one member must also have zero withinss.
func requireInvariants(t *testing.T, ndim, nobs int, data []float64, k int, centers []float64, clusters []int, det kmeans.Details, meanCentroids bool) {
	t.Helper()

	require.Len(t, det.Sizes, k)
	require.Len(t, det.Withinss, k)

	var (
		sizes = make([]int, k)
		total int
		i     int
	)
	for i = 0; i < nobs; i++ {
		require.GreaterOrEqual(t, clusters[i], 0, "cluster index of obs %d", i)
		require.Less(t, clusters[i], k, "cluster index of obs %d", i)
		sizes[clusters[i]]++
	}
	for i = range det.Sizes {
		total += det.Sizes[i]
	}
	require.Equal(t, nobs, total, "Σ sizes must equal nobs")
	require.Equal(t, sizes, det.Sizes, "sizes must match the assignment")

	oracle := make([]float64, k)
	kmeans.ComputeWithinss(ndim, nobs, data, k, centers, clusters, oracle)
	for i = range det.Withinss {
		require.GreaterOrEqual(t, det.Withinss[i], 0.0)
		require.InDelta(t, oracle[i], det.Withinss[i], epsTight, "withinss[%d]", i)
		if meanCentroids && det.Sizes[i] <= 1 {
			require.Zero(t, det.Withinss[i], "withinss[%d] of a cluster with %d members", i, det.Sizes[i])
		}
	}
}

// filled returns a slice of n copies of v.
func filled(n int, v float64) []float64 {
	out := make([]float64, n)
	var i int
	for i = range out {
		out[i] = v
	}

	return out
}

func nan() float64 { return math.NaN() }
func inf() float64 { return math.Inf(1) }

// Repeat runs fn n times as numbered subtests.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		t.Run("", fn)
	}
}
