// SPDX-License-Identifier: MIT
// Package kmeans - reinitialization of empty clusters.
//
// The Reinitializer repairs a centroid set so that a subsequent refinement
// pass starts with a full complement of populated clusters. It never runs
// an optimisation itself.
//
// Weighting policy (deterministic under a fixed seed):
//   - Every observation carries weight w_i = squared distance to the nearest
//     current centroid (which is the centroid it is assigned to).
//   - Empty clusters are repaired in ascending index order. For each one a
//     donor is drawn with probability w_i / Σw (see weightedSample), its
//     coordinates are copied into the empty column, and every weight is
//     lowered to the distance to the new centroid when that is smaller
//     (one k-means++ step per empty cluster).
//   - Observations sitting exactly on a centroid have weight 0 and are never
//     donors. When Σw == 0 the cluster stays empty and the run reports
//     StatusEmptyCluster.
//   - After repair every observation is re-assigned to its nearest centroid.
//     If a donor leaves its previous cluster empty, the repair is repeated
//     (at most ncenters passes).
package kmeans

import (
	"math/rand"
)

// Reinitializer reseeds empty clusters from the data. It owns an explicit
// RNG stream so repeated runs are reproducible; it is not safe for
// concurrent use.
type Reinitializer struct {
	rng *rand.Rand
}

var _ Algorithm = (*Reinitializer)(nil)

// NewReinitializer returns a Reinitializer drawing from a fresh stream for
// seed (seed==0 selects the fixed default stream).
func NewReinitializer(seed int64) *Reinitializer {
	return &Reinitializer{rng: rngFromSeed(seed)}
}

// NewReinitializerWithRand returns a Reinitializer that draws from rng.
// A nil rng selects the default stream.
func NewReinitializerWithRand(rng *rand.Rand) *Reinitializer {
	if rng == nil {
		rng = rngFromSeed(0)
	}

	return &Reinitializer{rng: rng}
}

// Run implements Algorithm.
//
// centers holds the current centroids on entry; only columns of empty
// clusters are overwritten. clusters receives the nearest-centroid
// assignment after repair. Details reports sizes and withinss against the
// repaired (not re-averaged) centroids; Iterations is always 0.
//
// Complexity: O(passes · (nobs·k·ndim + e·nobs·ndim)) with e empty clusters.
func (r *Reinitializer) Run(ndim, nobs int, data []float64, ncenters int, centers []float64, clusters []int) (Details, error) {
	if err := validateRun(ndim, nobs, data, ncenters, centers, clusters, true); err != nil {
		return Details{}, kmeansErrorf("Reinitializer.Run", err)
	}
	switch ec := classifyEdge(nobs, ncenters); ec {
	case edgeEmpty, edgeSingletons:
		return runEdgeCase(ec, ndim, nobs, data, ncenters, centers, clusters), nil
	}
	if r.rng == nil {
		r.rng = rngFromSeed(0)
	}

	var (
		det     = newDetails(ncenters)
		weights = make([]float64, nobs)
		pass    int
		stuck   bool
	)

	assignNearest(ndim, nobs, data, ncenters, centers, clusters, weights)
	countSizes(clusters, det.Sizes)

	for pass = 0; pass < ncenters; pass++ {
		empty := emptyClusters(det.Sizes)
		if empty.IsEmpty() {
			break
		}
		stuck = !r.repair(ndim, nobs, data, centers, empty.ToArray(), weights)

		assignNearest(ndim, nobs, data, ncenters, centers, clusters, weights)
		countSizes(clusters, det.Sizes)
		if stuck {
			break
		}
	}

	if !emptyClusters(det.Sizes).IsEmpty() {
		det.Status = StatusEmptyCluster
	}
	ComputeWithinss(ndim, nobs, data, ncenters, centers, clusters, det.Withinss)

	return det, nil
}

// repair reseeds each listed cluster with a weighted donor and updates
// weights in place. It returns false if some cluster found no donor.
func (r *Reinitializer) repair(ndim, nobs int, data, centers []float64, empty []uint32, weights []float64) bool {
	var (
		ok    = true
		donor int
		col   []float64
		d     float64
		i     int
		e     int
	)
	for e = range empty {
		donor = weightedSample(weights, r.rng)
		if donor < 0 {
			ok = false
			continue
		}
		col = column(centers, ndim, int(empty[e]))
		copy(col, column(data, ndim, donor))
		for i = 0; i < nobs; i++ {
			d = SquaredDistance(column(data, ndim, i), col)
			if d < weights[i] {
				weights[i] = d
			}
		}
	}

	return ok
}

// ReinitializeThen composes a repair pass with a refinement pass: r reseeds
// empty clusters, then next refines from the repaired centroids. The
// returned Details are the refinement's.
func ReinitializeThen(r *Reinitializer, next Algorithm) Algorithm {
	return &repairThenRefine{repair: r, refine: next}
}

type repairThenRefine struct {
	repair *Reinitializer
	refine Algorithm
}

// Run implements Algorithm.
func (p *repairThenRefine) Run(ndim, nobs int, data []float64, ncenters int, centers []float64, clusters []int) (Details, error) {
	if _, err := p.repair.Run(ndim, nobs, data, ncenters, centers, clusters); err != nil {
		return Details{}, err
	}

	return p.refine.Run(ndim, nobs, data, ncenters, centers, clusters)
}
