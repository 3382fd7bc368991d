// SPDX-License-Identifier: MIT
package kmeans_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kmeans/kmeans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptiedRun refines twoBlobs with a third centroid that attracts nobody and
// returns the buffers left behind together with the Details of that run.
func emptiedRun(t *testing.T) (ndim, nobs int, data, centers []float64, clusters []int, det kmeans.Details) {
	t.Helper()

	ndim, nobs, data = flatten(twoBlobs())
	centers = []float64{1, 1, 9, 9, 100, 100}
	clusters = make([]int, nobs)

	var hw kmeans.HartiganWong
	det, err := hw.Run(ndim, nobs, data, 3, centers, clusters)
	require.NoError(t, err)
	require.Equal(t, []uint32{2}, det.EmptyClusters().ToArray())

	return ndim, nobs, data, centers, clusters, det
}

// isObservation reports whether col equals one of the observation columns.
func isObservation(ndim, nobs int, data, col []float64) bool {
	var (
		i int
		d int
	)
	for i = 0; i < nobs; i++ {
		for d = 0; d < ndim; d++ {
			if data[i*ndim+d] != col[d] {
				break
			}
		}
		if d == ndim {
			return true
		}
	}

	return false
}

// TestReinitialize_RepairsAndImproves follows an empty cluster through a
// seeded repair and a refinement pass.
func TestReinitialize_RepairsAndImproves(t *testing.T) {
	ndim, nobs, data, centers, clusters, before := emptiedRun(t)
	kept := append([]float64(nil), centers[:4]...)

	det, err := kmeans.NewReinitializer(seedDet).Run(ndim, nobs, data, 3, centers, clusters)
	require.NoError(t, err)

	assert.Equal(t, kmeans.StatusConverged, det.Status)
	assert.Zero(t, det.Iterations)
	assert.True(t, det.EmptyClusters().IsEmpty())
	assert.Equal(t, kept, centers[:4], "populated centroids are not touched")
	assert.True(t, isObservation(ndim, nobs, data, centers[4:6]), "donor must be an observation, got %v", centers[4:6])
	// The first draw of seedDet (≈0.919) lands in the weight of observation 5.
	assert.Equal(t, []float64{8.5, 9.5}, centers[4:6])
	assert.Equal(t, []int{0, 0, 0, 1, 1, 2}, clusters)
	assert.Less(t, det.TotalWithinss(), before.TotalWithinss())
	requireInvariants(t, ndim, nobs, data, 3, centers, clusters, det, false)

	var hw kmeans.HartiganWong
	after, err := hw.Run(ndim, nobs, data, 3, centers, clusters)
	require.NoError(t, err)
	assert.Equal(t, kmeans.StatusConverged, after.Status)
	assert.True(t, after.EmptyClusters().IsEmpty())
	assert.Less(t, after.TotalWithinss(), before.TotalWithinss())
	requireInvariants(t, ndim, nobs, data, 3, centers, clusters, after, true)
}

// TestReinitialize_Reproducible checks that a fixed seed picks the same donor.
func TestReinitialize_Reproducible(t *testing.T) {
	var donors [][]float64
	Repeat(t, 3, func(t *testing.T) {
		ndim, nobs, data, centers, clusters, _ := emptiedRun(t)
		_, err := kmeans.NewReinitializer(seedDet).Run(ndim, nobs, data, 3, centers, clusters)
		require.NoError(t, err)
		donors = append(donors, append([]float64(nil), centers[4:6]...))
	})
	require.Len(t, donors, 3)
	assert.Equal(t, []float64{8.5, 9.5}, donors[0])
	assert.Equal(t, donors[0], donors[1])
	assert.Equal(t, donors[0], donors[2])

	// An explicit stream with the same seed behaves identically.
	ndim, nobs, data, centers, clusters, _ := emptiedRun(t)
	_, err := kmeans.NewReinitializerWithRand(rand.New(rand.NewSource(seedDet))).Run(ndim, nobs, data, 3, centers, clusters)
	require.NoError(t, err)
	assert.Equal(t, donors[0], centers[4:6])
}

// TestReinitialize_NoDonor keeps the cluster empty when every observation
// already sits on a centroid.
func TestReinitialize_NoDonor(t *testing.T) {
	var (
		data     = []float64{2, 2, 2, 2, 2, 2, 2, 2}
		centers  = []float64{2, 2, 50, 50}
		clusters = make([]int, 4)
	)
	det, err := kmeans.NewReinitializer(seedDet).Run(2, 4, data, 2, centers, clusters)
	require.NoError(t, err)

	assert.Equal(t, kmeans.StatusEmptyCluster, det.Status)
	assert.Equal(t, []int{4, 0}, det.Sizes)
	assert.Equal(t, []float64{2, 2, 50, 50}, centers)
	assert.Equal(t, []uint32{1}, det.EmptyClusters().ToArray())
}

// TestReinitialize_NothingToRepair leaves a fully populated partition alone.
func TestReinitialize_NothingToRepair(t *testing.T) {
	var (
		ndim, nobs, data = flatten(twoBlobs())
		centers          = []float64{1.5, 4.0 / 3, 8.5, 26.0 / 3}
		clusters         = make([]int, nobs)
	)
	det, err := kmeans.NewReinitializer(seedDet).Run(ndim, nobs, data, 2, centers, clusters)
	require.NoError(t, err)

	assert.Equal(t, kmeans.StatusConverged, det.Status)
	assert.Equal(t, []int{3, 3}, det.Sizes)
	assert.Equal(t, []float64{1.5, 4.0 / 3, 8.5, 26.0 / 3}, centers)
	requireInvariants(t, ndim, nobs, data, 2, centers, clusters, det, false)
}

// TestReinitializeThen composes repair and refinement in one Algorithm.
func TestReinitializeThen(t *testing.T) {
	ndim, nobs, data, centers, clusters, before := emptiedRun(t)

	alg := kmeans.ReinitializeThen(kmeans.NewReinitializer(seedDet), &kmeans.HartiganWong{})
	det, err := alg.Run(ndim, nobs, data, 3, centers, clusters)
	require.NoError(t, err)

	assert.Equal(t, kmeans.StatusConverged, det.Status)
	assert.True(t, det.EmptyClusters().IsEmpty())
	assert.Less(t, det.TotalWithinss(), before.TotalWithinss())
	requireInvariants(t, ndim, nobs, data, 3, centers, clusters, det, true)

	_, err = alg.Run(0, 0, nil, 0, nil, nil)
	assert.ErrorIs(t, err, kmeans.ErrInvalidDimension)
}

func TestReinitialize_EdgeCases(t *testing.T) {
	r := kmeans.NewReinitializer(0)

	det, err := r.Run(1, 0, nil, 2, []float64{1, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, det.Sizes)

	var (
		centers  = filled(4, 9)
		clusters = make([]int, 2)
	)
	det, err = r.Run(1, 2, []float64{3, 4}, 4, centers, clusters)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 9, 9}, centers)
	assert.Equal(t, []int{1, 1, 0, 0}, det.Sizes)
	assert.Equal(t, kmeans.StatusConverged, det.Status)
}
