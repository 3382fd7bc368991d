// SPDX-License-Identifier: MIT
package kmeans

// Degenerate shapes shared by every variant. None of them needs iteration:
//   - nobs == 0:        nothing to assign; zero statistics, centers untouched.
//   - ncenters == 1:    one cluster holding everything; centroid = grand mean.
//   - ncenters >= nobs: every observation becomes its own singleton cluster;
//     only the first nobs centroid columns are written.

// edgeCase identifies which degenerate shape applies, if any.
type edgeCase int

const (
	edgeNone edgeCase = iota
	edgeEmpty
	edgeSingleCluster
	edgeSingletons
)

// classifyEdge returns the degenerate shape for (nobs, ncenters).
// Complexity: O(1).
func classifyEdge(nobs, ncenters int) edgeCase {
	switch {
	case nobs == 0:
		return edgeEmpty
	case ncenters == 1:
		return edgeSingleCluster
	case ncenters >= nobs:
		return edgeSingletons
	default:
		return edgeNone
	}
}

// runEdgeCase resolves a degenerate shape in closed form.
// The caller guarantees classifyEdge(nobs, ncenters) == ec and ec != edgeNone.
//
// Complexity: O(nobs·ndim).
func runEdgeCase(ec edgeCase, ndim, nobs int, data []float64, ncenters int, centers []float64, clusters []int) Details {
	det := newDetails(ncenters)

	switch ec {
	case edgeEmpty:
		// Nothing to do: Details is already all-zero and centers stay as given.

	case edgeSingleCluster:
		var i int
		for i = 0; i < nobs; i++ {
			clusters[i] = 0
		}
		ComputeCentroids(ndim, nobs, data, 1, centers, clusters, det.Sizes)
		ComputeWithinss(ndim, nobs, data, 1, centers, clusters, det.Withinss)

	case edgeSingletons:
		var i int
		for i = 0; i < nobs; i++ {
			clusters[i] = i
			copy(column(centers, ndim, i), column(data, ndim, i))
			det.Sizes[i] = 1
		}
	}

	return det
}
