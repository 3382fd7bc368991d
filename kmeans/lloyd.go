// SPDX-License-Identifier: MIT
package kmeans

import "math"

// Lloyd refines caller-supplied centroids with batch Lloyd iteration:
// assign every observation to its nearest centroid, recompute each centroid
// as the mean of its members, repeat until no assignment changes.
//
// Empty clusters keep their previous centroid and may attract members again
// in a later round. The zero value is ready to use.
type Lloyd struct {
	// MaxIterations caps update rounds. 0 ⇒ DefaultLloydMaxIterations.
	MaxIterations int

	// Tolerance stops early once the relative WCSS improvement of a round
	// drops to Tolerance or below. 0 ⇒ only a stable assignment stops.
	Tolerance float64
}

var _ Algorithm = (*Lloyd)(nil)

// Run implements Algorithm.
//
// Status: StatusConverged when the assignment is stable (or the tolerance
// is met), StatusMaxIterations otherwise. Iterations counts update rounds.
//
// Complexity: O(iter · nobs · k · ndim).
func (ll *Lloyd) Run(ndim, nobs int, data []float64, ncenters int, centers []float64, clusters []int) (Details, error) {
	if err := validateRun(ndim, nobs, data, ncenters, centers, clusters, true); err != nil {
		return Details{}, kmeansErrorf("Lloyd.Run", err)
	}
	if ec := classifyEdge(nobs, ncenters); ec != edgeNone {
		return runEdgeCase(ec, ndim, nobs, data, ncenters, centers, clusters), nil
	}

	var (
		maxIter = orDefault(ll.MaxIterations, DefaultLloydMaxIterations)
		det     = newDetails(ncenters)
		prev    = math.Inf(1)
		cur     float64
		changed int
		iter    int
	)

	assignNearest(ndim, nobs, data, ncenters, centers, clusters, nil)

	det.Status = StatusMaxIterations
	for iter = 1; iter <= maxIter; iter++ {
		ComputeCentroids(ndim, nobs, data, ncenters, centers, clusters, det.Sizes)
		changed = assignNearest(ndim, nobs, data, ncenters, centers, clusters, nil)
		det.Iterations = iter
		if changed == 0 {
			det.Status = StatusConverged
			break
		}
		if ll.Tolerance > 0 {
			ComputeWithinss(ndim, nobs, data, ncenters, centers, clusters, det.Withinss)
			cur = det.TotalWithinss()
			if prev-cur <= ll.Tolerance*cur {
				det.Status = StatusConverged
				break
			}
			prev = cur
		}
	}

	// Keep the centroid == member-mean invariant for the returned assignment.
	ComputeCentroids(ndim, nobs, data, ncenters, centers, clusters, det.Sizes)
	ComputeWithinss(ndim, nobs, data, ncenters, centers, clusters, det.Withinss)

	return det, nil
}
