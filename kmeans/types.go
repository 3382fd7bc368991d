// SPDX-License-Identifier: MIT

// Package kmeans: domain types shared by every clustering variant.
// This file contains ONLY the result record, the status codes, the algorithm
// contract and the variant tags. Errors and options live in errors.go and
// options.go.
package kmeans

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Status is the discrete outcome code of a run.
// The numeric values are stable and follow Algorithm AS 136 IFAULT codes.
type Status int

const (
	// StatusConverged reports normal termination: a full pass made no transfer.
	StatusConverged Status = 0

	// StatusEmptyCluster reports that the Reinitializer found an empty cluster
	// but no observation with positive weight could be donated to it.
	StatusEmptyCluster Status = 1

	// StatusMaxIterations reports that the iteration cap was reached with
	// transfers still pending. Outputs hold the best state reached.
	StatusMaxIterations Status = 2

	// StatusQuickTransferCap reports that a quick-transfer stage exceeded its
	// step budget (QuickTransferFactor·nobs). Outputs hold the state reached.
	StatusQuickTransferCap Status = 4
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusEmptyCluster:
		return "empty-cluster"
	case StatusMaxIterations:
		return "max-iterations"
	case StatusQuickTransferCap:
		return "quick-transfer-cap"
	default:
		return "unknown"
	}
}

// Details summarises one Run. It is created fresh per call and never
// mutated by the engine afterwards.
type Details struct {
	// Sizes[i] is the number of observations assigned to cluster i.
	// len(Sizes) == ncenters.
	Sizes []int

	// Withinss[i] is the sum of squared distances of the members of cluster i
	// to its centroid. Zero for clusters with at most one member.
	// len(Withinss) == ncenters.
	Withinss []float64

	// Status distinguishes normal convergence from the capped outcomes.
	Status Status

	// Iterations counts the refinement rounds executed.
	Iterations int
}

// newDetails allocates a zeroed Details for k clusters.
func newDetails(k int) Details {
	return Details{
		Sizes:    make([]int, k),
		Withinss: make([]float64, k),
	}
}

// TotalWithinss returns Σ Withinss, the k-means objective.
// Complexity: O(k).
func (d Details) TotalWithinss() float64 {
	var (
		total float64
		i     int
	)
	for i = range d.Withinss {
		total += d.Withinss[i]
	}

	return total
}

// EmptyClusters returns the indices of clusters with no members.
// The bitmap is freshly allocated; iteration order is ascending.
// Complexity: O(k).
func (d Details) EmptyClusters() *roaring.Bitmap {
	return emptyClusters(d.Sizes)
}

// emptyClusters builds the ascending set {i : sizes[i] == 0}.
func emptyClusters(sizes []int) *roaring.Bitmap {
	var (
		bm = roaring.New()
		i  int
	)
	for i = range sizes {
		if sizes[i] == 0 {
			bm.Add(uint32(i))
		}
	}

	return bm
}

// Algorithm is the contract every clustering strategy implements.
//
// Inputs:
//   - ndim ≥ 1: number of dimensions.
//   - nobs ≥ 0: number of observations.
//   - data: ndim×nobs column-major (len == ndim*nobs); column j is observation j.
//     Borrowed for the duration of the call and never modified.
//   - ncenters: requested number of clusters.
//   - centers: ndim×ncenters column-major (len == ndim*ncenters). Initial
//     centroids on entry for refinement variants, final centroids on exit.
//     When ncenters > nobs only the first nobs columns are written.
//   - clusters: len == nobs, fully overwritten with indices in [0, ncenters).
//
// Returns a Details record. Data conditions (nobs==0, ncenters>nobs,
// non-convergence, empty clusters) are reported through Details only; the
// error is reserved for precondition violations (see errors.go).
//
// Implementations hold configuration only and are not safe for concurrent
// use by multiple goroutines.
type Algorithm interface {
	Run(ndim, nobs int, data []float64, ncenters int, centers []float64, clusters []int) (Details, error)
}

// Algo selects a refinement strategy from the closed set of variants.
type Algo int

const (
	// AlgoHartiganWong selects the Hartigan–Wong transfer algorithm (AS 136).
	AlgoHartiganWong Algo = iota

	// AlgoLloyd selects batch Lloyd iteration (assign, then recompute means).
	AlgoLloyd

	// AlgoReinitialize selects the repair-only pass that reseeds empty clusters.
	AlgoReinitialize
)

// String implements fmt.Stringer.
func (a Algo) String() string {
	switch a {
	case AlgoHartiganWong:
		return "hartigan-wong"
	case AlgoLloyd:
		return "lloyd"
	case AlgoReinitialize:
		return "reinitialize"
	default:
		return "unknown"
	}
}

// InitMethod selects how the Kmeans driver seeds centroids before refinement.
type InitMethod int

const (
	// InitKmeansPP seeds with k-means++ (squared-distance weighted sampling).
	InitKmeansPP InitMethod = iota

	// InitRandom seeds with k distinct observations chosen uniformly.
	InitRandom

	// InitNone uses the caller-supplied centroids verbatim.
	InitNone
)

// String implements fmt.Stringer.
func (m InitMethod) String() string {
	switch m {
	case InitKmeansPP:
		return "kmeans++"
	case InitRandom:
		return "random"
	case InitNone:
		return "none"
	default:
		return "unknown"
	}
}
