// SPDX-License-Identifier: MIT
// Package kmeans - assignment & centroid bookkeeping shared by all variants.
//
// Conventions:
//   - Every buffer is flat column-major: column j of an ndim×n matrix is
//     buf[j*ndim : (j+1)*ndim].
//   - Distances are squared Euclidean; no square root is ever taken.
//   - Ties between equidistant centroids go to the lowest cluster index.
//   - Centroid columns of empty clusters are never written by these helpers.
package kmeans

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// column returns the no-copy j-th column of a flat column-major buffer.
// The slice is capacity-clamped so appends can never spill into column j+1.
func column(buf []float64, ndim, j int) []float64 {
	return buf[j*ndim : (j+1)*ndim : (j+1)*ndim]
}

// SquaredDistance returns Σ (x[d]−y[d])² over len(x) dimensions.
// Complexity: O(ndim).
func SquaredDistance(x, y []float64) float64 {
	var (
		sum  float64
		diff float64
		d    int
	)
	for d = range x {
		diff = x[d] - y[d]
		sum += diff * diff
	}

	return sum
}

// partialSquaredDistance accumulates Σ (x−y)² and gives up as soon as the
// running sum reaches bound. ok is false when the bound was reached.
func partialSquaredDistance(x, y []float64, bound float64) (dist float64, ok bool) {
	var (
		diff float64
		d    int
	)
	for d = range x {
		diff = x[d] - y[d]
		dist += diff * diff
		if dist >= bound {
			return dist, false
		}
	}

	return dist, true
}

// NearestCentroid scans the columns of centers (ndim rows each) and returns
// the index and squared distance of the closest one to obs.
// When live is non-nil only clusters with live[c]==true are considered.
// Returns (-1, +Inf) when no candidate exists. The first candidate is
// always taken, so an overflowed (+Inf) distance still yields a valid index.
//
// Ties: strict '<' in ascending order ⇒ lowest index wins.
// Complexity: O(k·ndim).
func NearestCentroid(obs []float64, centers []float64, ndim int, live []bool) (int, float64) {
	var (
		k     = len(centers) / ndim
		best  = -1
		bestD = math.Inf(1)
		dist  float64
		c     int
	)
	for c = 0; c < k; c++ {
		if live != nil && !live[c] {
			continue
		}
		dist = SquaredDistance(obs, column(centers, ndim, c))
		if best < 0 || dist < bestD {
			best, bestD = c, dist
		}
	}

	return best, bestD
}

// assignNearest writes the nearest centroid (over the first k columns of
// centers) of every observation into clusters and, if dist is non-nil, the
// corresponding squared distance into dist. It returns how many entries of
// clusters changed value.
//
// Complexity: O(nobs·k·ndim).
func assignNearest(ndim, nobs int, data []float64, k int, centers []float64, clusters []int, dist []float64) int {
	var (
		view    = centers[:k*ndim]
		changed int
		best    int
		d       float64
		i       int
	)
	for i = 0; i < nobs; i++ {
		best, d = NearestCentroid(column(data, ndim, i), view, ndim, nil)
		if clusters[i] != best {
			clusters[i] = best
			changed++
		}
		if dist != nil {
			dist[i] = d
		}
	}

	return changed
}

// countSizes fills sizes (len k) with the membership counts of clusters.
// Complexity: O(nobs + k).
func countSizes(clusters []int, sizes []int) {
	var i int
	for i = range sizes {
		sizes[i] = 0
	}
	for i = range clusters {
		sizes[clusters[i]]++
	}
}

// ComputeCentroids recomputes, from scratch, every non-empty centroid as the
// mean of its members and stores the membership counts in sizes.
// Columns of empty clusters are left untouched.
//
// Inputs: clusters[i] ∈ [0, ncenters); len(sizes) == ncenters.
// Complexity: O(nobs·ndim + ncenters·ndim).
func ComputeCentroids(ndim, nobs int, data []float64, ncenters int, centers []float64, clusters []int, sizes []int) {
	countSizes(clusters[:nobs], sizes[:ncenters])

	var (
		col []float64
		c   int
		i   int
		d   int
	)
	// Stage 1: zero the columns that will receive members.
	for c = 0; c < ncenters; c++ {
		if sizes[c] == 0 {
			continue
		}
		col = column(centers, ndim, c)
		for d = range col {
			col[d] = 0
		}
	}
	// Stage 2: accumulate member coordinates.
	for i = 0; i < nobs; i++ {
		floats.Add(column(centers, ndim, clusters[i]), column(data, ndim, i))
	}
	// Stage 3: divide by counts.
	for c = 0; c < ncenters; c++ {
		if sizes[c] == 0 {
			continue
		}
		floats.Scale(1/float64(sizes[c]), column(centers, ndim, c))
	}
}

// ComputeWithinss fills withinss (len ncenters) with Σ‖x−c‖² per cluster.
// Complexity: O(nobs·ndim + ncenters).
func ComputeWithinss(ndim, nobs int, data []float64, ncenters int, centers []float64, clusters []int, withinss []float64) {
	var (
		i int
		c int
	)
	for c = 0; c < ncenters; c++ {
		withinss[c] = 0
	}
	for i = 0; i < nobs; i++ {
		c = clusters[i]
		withinss[c] += SquaredDistance(column(data, ndim, i), column(centers, ndim, c))
	}
}

// Tally maintains per-cluster centroids as running means together with
// their membership counts, so that a single observation can be moved
// between clusters in O(ndim) without recomputing anything from scratch.
//
// Tally borrows centers and sizes; both are mutated in place.
type Tally struct {
	ndim    int
	centers []float64 // ndim×k column-major running means
	sizes   []int     // membership counts
}

// NewTally wraps caller-owned centroid and size buffers.
// centers must already hold the means implied by sizes.
func NewTally(ndim int, centers []float64, sizes []int) *Tally {
	return &Tally{ndim: ndim, centers: centers, sizes: sizes}
}

// Size returns the membership count of cluster c.
func (t *Tally) Size(c int) int { return t.sizes[c] }

// Live reports whether cluster c currently has at least one member.
func (t *Tally) Live(c int) bool { return t.sizes[c] > 0 }

// Centroid returns the no-copy centroid column of cluster c.
func (t *Tally) Centroid(c int) []float64 { return column(t.centers, t.ndim, c) }

// Move transfers observation x from cluster from to cluster to, updating
// both running means and counts:
//
//	c_from ← (c_from·n_from − x) / (n_from − 1)
//	c_to   ← (c_to·n_to + x)     / (n_to + 1)
//
// When from loses its last member it becomes non-live and its centroid
// column is left as it was (the mean of nothing is undefined).
// An empty destination simply becomes x.
//
// Complexity: O(ndim).
func (t *Tally) Move(x []float64, from, to int) {
	var (
		cf  = column(t.centers, t.ndim, from)
		ct  = column(t.centers, t.ndim, to)
		al1 = float64(t.sizes[from])
		alw = al1 - 1
		al2 = float64(t.sizes[to])
		alt = al2 + 1
		d   int
	)
	for d = range x {
		if alw > 0 {
			cf[d] = (cf[d]*al1 - x[d]) / alw
		}
		ct[d] = (ct[d]*al2 + x[d]) / alt
	}
	t.sizes[from]--
	t.sizes[to]++
}
