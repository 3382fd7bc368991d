// SPDX-License-Identifier: MIT
package kmeans_test

import (
	"testing"

	"github.com/katalvlaran/kmeans/kmeans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLloyd_Converges moves observation 1 across in the first round and
// detects the stable assignment in the second.
func TestLloyd_Converges(t *testing.T) {
	var (
		ndim, nobs, data = transferLine()
		centers          = []float64{0, 1}
		clusters         = make([]int, nobs)
		ll               kmeans.Lloyd
	)
	det, err := ll.Run(ndim, nobs, data, 2, centers, clusters)
	require.NoError(t, err)

	assert.Equal(t, kmeans.StatusConverged, det.Status)
	assert.Equal(t, 2, det.Iterations)
	assert.Equal(t, []int{0, 0, 1, 1, 1}, clusters)
	assert.InDeltaSlice(t, []float64{0.5, 11}, centers, epsTight)
	requireInvariants(t, ndim, nobs, data, 2, centers, clusters, det, true)
}

func TestLloyd_MaxIterations(t *testing.T) {
	var (
		ndim, nobs, data = transferLine()
		centers          = []float64{0, 1}
		clusters         = make([]int, nobs)
		ll               = kmeans.Lloyd{MaxIterations: 1}
	)
	det, err := ll.Run(ndim, nobs, data, 2, centers, clusters)
	require.NoError(t, err)

	assert.Equal(t, kmeans.StatusMaxIterations, det.Status)
	assert.Equal(t, 1, det.Iterations)
	// Returned centroids are the means of the returned assignment.
	assert.InDeltaSlice(t, []float64{0.5, 11}, centers, epsTight)
	requireInvariants(t, ndim, nobs, data, 2, centers, clusters, det, true)
}

// TestLloyd_AgreesWithHartiganWong compares both refiners on well-separated data.
func TestLloyd_AgreesWithHartiganWong(t *testing.T) {
	var (
		ndim, nobs, data = flatten(threeBlobs())
		start            = []float64{1, 1, 99, 1, 1, 99}
		c1               = append([]float64(nil), start...)
		c2               = append([]float64(nil), start...)
		a1               = make([]int, nobs)
		a2               = make([]int, nobs)
		ll               kmeans.Lloyd
		hw               kmeans.HartiganWong
	)
	d1, err := ll.Run(ndim, nobs, data, 3, c1, a1)
	require.NoError(t, err)
	d2, err := hw.Run(ndim, nobs, data, 3, c2, a2)
	require.NoError(t, err)

	assert.Equal(t, a2, a1)
	assert.Equal(t, d2.Sizes, d1.Sizes)
	assert.InDeltaSlice(t, c2, c1, epsTight)
	assert.InDelta(t, d2.TotalWithinss(), d1.TotalWithinss(), epsTight)
}

// TestLloyd_Tolerance stops early once the relative improvement is tiny.
func TestLloyd_Tolerance(t *testing.T) {
	const (
		ndim = 2
		nobs = 300
		k    = 5
	)
	var (
		data    = randomPoints(nobs, ndim, seedDet)
		strict  = kmeans.Lloyd{MaxIterations: 500}
		relaxed = kmeans.Lloyd{MaxIterations: 500, Tolerance: 0.5}
		c1      = append([]float64(nil), data[:ndim*k]...)
		c2      = append([]float64(nil), data[:ndim*k]...)
		a1      = make([]int, nobs)
		a2      = make([]int, nobs)
	)
	d1, err := strict.Run(ndim, nobs, data, k, c1, a1)
	require.NoError(t, err)
	d2, err := relaxed.Run(ndim, nobs, data, k, c2, a2)
	require.NoError(t, err)

	assert.Equal(t, kmeans.StatusConverged, d2.Status)
	assert.LessOrEqual(t, d2.Iterations, d1.Iterations)
	requireInvariants(t, ndim, nobs, data, k, c2, a2, d2, true)
}

func TestLloyd_EdgeCases(t *testing.T) {
	var ll kmeans.Lloyd

	det, err := ll.Run(1, 0, nil, 2, []float64{3, 4}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, det.Sizes)

	var (
		centers  = filled(5, 42)
		clusters = make([]int, 3)
	)
	det, err = ll.Run(1, 3, []float64{4, 5, 6}, 5, centers, clusters)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6, 42, 42}, centers)
	assert.Equal(t, []int{1, 1, 1, 0, 0}, det.Sizes)
}
