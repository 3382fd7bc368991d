// SPDX-License-Identifier: MIT
// Package kmeans - matrix front-end.
//
// The Run contract works on flat column-major spans. Cluster, Refine and
// Predict accept *matrix.Dense values whose ROWS are observations: an
// nobs×ndim row-major Dense has the same flat layout as an ndim×nobs
// column-major buffer, so no transposition or copy of the data is needed.
package kmeans

import (
	"github.com/katalvlaran/kmeans/matrix"
)

// Result bundles the outputs of Cluster and Refine.
type Result struct {
	// Centers is k×ndim; row c is the centroid of cluster c.
	Centers *matrix.Dense

	// Clusters[i] is the cluster index of observation (row) i.
	Clusters []int

	Details
}

// Cluster partitions the rows of obs into k clusters using opts.
// opts.Init must seed centroids (InitKmeansPP or InitRandom).
//
// Errors: ErrNilMatrix (matrix package), ErrUnsupportedInit for InitNone,
// and everything New and Run report.
//
// Complexity: see the configured variant.
func Cluster(obs *matrix.Dense, k int, opts Options) (Result, error) {
	if err := matrix.ValidateNotNil(obs); err != nil {
		return Result{}, kmeansErrorf("Cluster", err)
	}
	if opts.Init == InitNone {
		return Result{}, kmeansErrorf("Cluster", ErrUnsupportedInit)
	}
	if k < 1 {
		return Result{}, kmeansErrorf("Cluster", ErrNoCenters)
	}

	centers, err := matrix.NewDense(k, obs.Cols())
	if err != nil {
		return Result{}, kmeansErrorf("Cluster", err)
	}

	return run(obs, centers, opts)
}

// Refine improves the given centroids (rows of centers) on obs. centers is
// not modified; the refined centroids are returned in Result.Centers.
// opts.Init is ignored: refinement always starts from centers.
//
// Complexity: see the configured variant.
func Refine(obs, centers *matrix.Dense, opts Options) (Result, error) {
	if err := matrix.ValidateNotNil(obs); err != nil {
		return Result{}, kmeansErrorf("Refine", err)
	}
	if err := matrix.ValidateNotNil(centers); err != nil {
		return Result{}, kmeansErrorf("Refine", err)
	}
	if centers.Cols() != obs.Cols() {
		return Result{}, kmeansErrorf("Refine", matrix.ErrDimensionMismatch)
	}
	opts.Init = InitNone

	return run(obs, centers.Clone(), opts)
}

// run dispatches opts on the flat views of obs and centers (mutated in place).
func run(obs, centers *matrix.Dense, opts Options) (Result, error) {
	alg, err := New(opts)
	if err != nil {
		return Result{}, err
	}

	var (
		nobs, ndim = obs.Shape()
		clusters   = make([]int, nobs)
	)
	det, err := alg.Run(ndim, nobs, obs.RawData(), centers.Rows(), centers.RawData(), clusters)
	if err != nil {
		return Result{}, err
	}

	return Result{Centers: centers, Clusters: clusters, Details: det}, nil
}

// Predict assigns every row of obs to its nearest centroid (row of centers).
// Ties go to the lowest centroid index.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (matrix package), ErrNonFinite.
// Complexity: O(nobs · k · ndim).
func Predict(obs, centers *matrix.Dense) ([]int, error) {
	if err := matrix.ValidateNotNil(obs); err != nil {
		return nil, kmeansErrorf("Predict", err)
	}
	if err := matrix.ValidateNotNil(centers); err != nil {
		return nil, kmeansErrorf("Predict", err)
	}
	if centers.Cols() != obs.Cols() {
		return nil, kmeansErrorf("Predict", matrix.ErrDimensionMismatch)
	}
	if centers.Rows() == 0 && obs.Rows() > 0 {
		return nil, kmeansErrorf("Predict", ErrNoCenters)
	}
	if err := matrix.ValidateFiniteMatrix(obs); err != nil {
		return nil, kmeansErrorf("Predict", ErrNonFinite)
	}
	if err := matrix.ValidateFiniteMatrix(centers); err != nil {
		return nil, kmeansErrorf("Predict", ErrNonFinite)
	}

	var (
		nobs, ndim = obs.Shape()
		out        = make([]int, nobs)
		i          int
	)
	for i = 0; i < nobs; i++ {
		out[i], _ = NearestCentroid(column(obs.RawData(), ndim, i), centers.RawData(), ndim, nil)
	}

	return out, nil
}
