// SPDX-License-Identifier: MIT
// Package kmeans - Hartigan–Wong transfer algorithm (Algorithm AS 136, 1979).
//
// Algorithm outline:
//  1. Assign every observation to its closest centre (ic1) and remember the
//     second closest (ic2). Centroids ← member means.
//  2. Optimal-transfer stage: for each observation i in cluster L1 compute the
//     cost of removal R1 = n1/(n1−1)·‖x−c1‖² and, for every cluster L in the
//     live set, the cost of insertion R2 = nL/(nL+1)·‖x−cL‖². Transfer i to the
//     cheapest L when R2 < R1. Stop once nobs consecutive steps transfer nothing.
//  3. Quick-transfer stage: only test ic1(i) → ic2(i), and only when one of
//     the two clusters changed during the last nobs steps. Repeat until nobs
//     consecutive steps transfer nothing.
//  4. Alternate 2 and 3 until an optimal-transfer stage transfers nothing
//     (converged) or the iteration cap is reached.
//
// Live-set bookkeeping (indices are 1-based "steps" within a stage):
//   - ncp[L]: step at which L was last updated in the optimal-transfer stage;
//     in the quick-transfer stage it is that step plus nobs. 0 ⇒ unchanged.
//   - live[L]: L is in the live set for step i while i < live[L].
//   - itran[L]: L was updated during the last quick-transfer stage.
//
// Empty clusters: a cluster that receives no member in step 1 is dead for the
// whole run. It is never a destination, never anyone's ic2, and its centroid
// column is left as supplied. Singletons never give their last member away,
// so no cluster can empty during iteration.
//
// Complexity: O(iter · nobs · k · ndim) worst case; the live set makes later
// stages much cheaper in practice.
package kmeans

import "math"

// bigCost stands in for the infinite removal cost of a singleton.
const bigCost = math.MaxFloat64

// HartiganWong refines caller-supplied centroids with the Hartigan–Wong
// algorithm. The zero value is ready to use.
type HartiganWong struct {
	// MaxIterations caps optimal-transfer rounds. 0 ⇒ DefaultHartiganWongMaxIterations.
	MaxIterations int

	// QuickTransferFactor bounds each quick-transfer stage at factor·nobs
	// steps. 0 ⇒ DefaultQuickTransferFactor.
	QuickTransferFactor int
}

var _ Algorithm = (*HartiganWong)(nil)

// hwState is the transient per-run scratch state. It is discarded on return.
type hwState struct {
	ndim, nobs, k int
	data          []float64
	tally         *Tally

	ic1   []int     // current cluster (aliases the caller's clusters buffer)
	ic2   []int     // second-best cluster
	d     []float64 // cached removal cost R1 per observation
	an1   []float64 // n/(n−1), bigCost for singletons
	an2   []float64 // n/(n+1)
	ncp   []int
	live  []int
	itran []bool
	alive []bool // non-empty after the initial assignment
	nlive int
}

// Run implements Algorithm.
//
// Contracts: see Algorithm. centers must hold the initial centroids.
// Status: StatusConverged, StatusMaxIterations or StatusQuickTransferCap.
func (hw *HartiganWong) Run(ndim, nobs int, data []float64, ncenters int, centers []float64, clusters []int) (Details, error) {
	if err := validateRun(ndim, nobs, data, ncenters, centers, clusters, true); err != nil {
		return Details{}, kmeansErrorf("HartiganWong.Run", err)
	}
	if ec := classifyEdge(nobs, ncenters); ec != edgeNone {
		return runEdgeCase(ec, ndim, nobs, data, ncenters, centers, clusters), nil
	}

	var (
		maxIter = orDefault(hw.MaxIterations, DefaultHartiganWongMaxIterations)
		maxQtr  = orDefault(hw.QuickTransferFactor, DefaultQuickTransferFactor) * nobs
		det     = newDetails(ncenters)
		s       = newHWState(ndim, nobs, data, ncenters, centers, clusters, det.Sizes)
	)

	// Fewer than two populated clusters: the partition is already final.
	if s.nlive < 2 {
		ComputeWithinss(ndim, nobs, data, ncenters, centers, clusters, det.Withinss)
		return det, nil
	}

	var (
		indx   int
		iter   int
		status = StatusMaxIterations
	)
	det.Iterations = maxIter
	for iter = 0; iter < maxIter; iter++ {
		s.optimalTransfer(&indx)
		// No transfer during the last nobs optimal-transfer steps.
		if indx == nobs {
			status = StatusConverged
			det.Iterations = iter + 1
			break
		}

		if !s.quickTransfer(&indx, maxQtr) {
			status = StatusQuickTransferCap
			det.Iterations = iter + 1
			break
		}

		// With two clusters the quick-transfer stage already tested every
		// possible move; another optimal-transfer round cannot improve.
		if s.nlive == 2 {
			status = StatusConverged
			det.Iterations = iter + 1
			break
		}

		// ncp must be reset before re-entering the optimal-transfer stage.
		s.resetNCP()
	}
	det.Status = status

	// Final statistics from scratch to shed accumulated rounding.
	ComputeCentroids(ndim, nobs, data, ncenters, centers, clusters, det.Sizes)
	ComputeWithinss(ndim, nobs, data, ncenters, centers, clusters, det.Withinss)

	return det, nil
}

// newHWState performs the initial assignment and builds the bookkeeping.
// sizes receives the initial membership counts and becomes the tally's counts.
func newHWState(ndim, nobs int, data []float64, k int, centers []float64, clusters []int, sizes []int) *hwState {
	s := &hwState{
		ndim:  ndim,
		nobs:  nobs,
		k:     k,
		data:  data,
		ic1:   clusters,
		ic2:   make([]int, nobs),
		d:     make([]float64, nobs),
		an1:   make([]float64, k),
		an2:   make([]float64, k),
		ncp:   make([]int, k),
		live:  make([]int, k),
		itran: make([]bool, k),
		alive: make([]bool, k),
	}

	var (
		i  int
		l  int
		aa float64
	)

	// Stage 1: closest centre over all clusters; dead clusters are exactly
	// the ones nobody chose.
	assignNearest(ndim, nobs, data, k, centers, clusters, nil)
	countSizes(clusters, sizes)
	for l = 0; l < k; l++ {
		if sizes[l] > 0 {
			s.alive[l] = true
			s.nlive++
		}
	}

	// Stage 2: centroids ← member means.
	ComputeCentroids(ndim, nobs, data, k, centers, clusters, sizes)
	s.tally = NewTally(ndim, centers, sizes)
	if s.nlive < 2 {
		return s
	}

	// Stage 3: second-closest live centre.
	for i = 0; i < nobs; i++ {
		s.ic2[i] = s.secondClosest(i)
	}

	// Stage 4: initialise an1, an2, itran and ncp.
	for l = 0; l < k; l++ {
		if !s.alive[l] {
			continue
		}
		aa = float64(sizes[l])
		s.an2[l] = aa / (aa + 1)
		s.an1[l] = bigCost
		if aa > 1 {
			s.an1[l] = aa / (aa - 1)
		}
		s.itran[l] = true
		s.ncp[l] = -1
	}

	return s
}

// secondClosest returns the closest live cluster to observation i other than ic1[i].
func (s *hwState) secondClosest(i int) int {
	var (
		x     = column(s.data, s.ndim, i)
		best  = -1
		bestD = math.Inf(1)
		dist  float64
		l     int
	)
	for l = 0; l < s.k; l++ {
		if !s.alive[l] || l == s.ic1[i] {
			continue
		}
		dist = SquaredDistance(x, s.tally.Centroid(l))
		if best < 0 || dist < bestD {
			best, bestD = l, dist
		}
	}

	return best
}

// optimalTransfer runs one optimal-transfer stage. indx counts consecutive
// steps without a transfer; the stage returns early once it reaches nobs.
func (s *hwState) optimalTransfer(indx *int) {
	var (
		m    = s.nobs
		i    int
		step int
		l    int
		l1   int
		l2   int
		ll   int
		r2   float64
		rr   float64
		dc   float64
		ok   bool
		x    []float64
	)

	// Clusters updated in the last quick-transfer stage stay live throughout.
	for l = 0; l < s.k; l++ {
		if s.itran[l] {
			s.live[l] = m + 1
		}
	}

	for i = 0; i < m; i++ {
		step = i + 1
		*indx++
		l1 = s.ic1[i]

		// A singleton never gives away its only member.
		if s.tally.Size(l1) != 1 {
			x = column(s.data, s.ndim, i)

			// Refresh the removal cost only if L1 changed in this stage.
			if s.ncp[l1] != 0 {
				s.d[i] = SquaredDistance(x, s.tally.Centroid(l1)) * s.an1[l1]
			}

			// Cheapest insertion, starting from the cached second-best.
			l2 = s.ic2[i]
			ll = l2
			r2 = SquaredDistance(x, s.tally.Centroid(l2)) * s.an2[l2]
			for l = 0; l < s.k; l++ {
				// When L1 is out of the live set only live clusters are worth testing.
				if !s.alive[l] || l == l1 || l == ll || (step >= s.live[l1] && step >= s.live[l]) {
					continue
				}
				rr = r2 / s.an2[l]
				if dc, ok = partialSquaredDistance(x, s.tally.Centroid(l), rr); !ok {
					continue
				}
				r2 = dc * s.an2[l]
				l2 = l
			}

			if r2 >= s.d[i] {
				// No transfer: L2 is the new second-best.
				s.ic2[i] = l2
			} else {
				*indx = 0
				s.live[l1] = m + step
				s.live[l2] = m + step
				s.ncp[l1] = step
				s.ncp[l2] = step
				s.transfer(i, x, l1, l2)
			}
		}

		if *indx == m {
			return
		}
	}

	// Leave the stage: clear quick-transfer marks and age the live set.
	for l = 0; l < s.k; l++ {
		s.itran[l] = false
		s.live[l] -= m
	}
}

// quickTransfer runs one quick-transfer stage. It returns false when the
// step budget maxSteps is exhausted.
func (s *hwState) quickTransfer(indx *int, maxSteps int) bool {
	var (
		m     = s.nobs
		icoun int
		istep int
		i     int
		l1    int
		l2    int
		r2    float64
		ok    bool
		x     []float64
	)

	for {
		for i = 0; i < m; i++ {
			icoun++
			istep++
			if istep >= maxSteps {
				return false
			}
			l1 = s.ic1[i]
			l2 = s.ic2[i]

			if s.tally.Size(l1) != 1 {
				x = column(s.data, s.ndim, i)

				// L1 updated within the last m steps: refresh the removal cost.
				if istep <= s.ncp[l1] {
					s.d[i] = SquaredDistance(x, s.tally.Centroid(l1)) * s.an1[l1]
				}

				// Neither cluster changed recently ⇒ nothing new to test.
				if istep < s.ncp[l1] || istep < s.ncp[l2] {
					r2 = s.d[i] / s.an2[l2]
					if _, ok = partialSquaredDistance(x, s.tally.Centroid(l2), r2); ok {
						icoun = 0
						*indx = 0
						s.itran[l1] = true
						s.itran[l2] = true
						s.ncp[l1] = istep + m
						s.ncp[l2] = istep + m
						s.transfer(i, x, l1, l2)
					}
				}
			}

			// No re-allocation during the last m steps.
			if icoun == m {
				return true
			}
		}
	}
}

// transfer moves observation i (coordinates x) from l1 to l2 and refreshes
// the size-derived factors and the ic1/ic2 pair.
func (s *hwState) transfer(i int, x []float64, l1, l2 int) {
	s.tally.Move(x, l1, l2)

	var (
		n1 = float64(s.tally.Size(l1))
		n2 = float64(s.tally.Size(l2))
	)
	s.an2[l1] = n1 / (n1 + 1)
	s.an1[l1] = bigCost
	if n1 > 1 {
		s.an1[l1] = n1 / (n1 - 1)
	}
	s.an1[l2] = n2 / (n2 - 1)
	s.an2[l2] = n2 / (n2 + 1)

	s.ic1[i] = l2
	s.ic2[i] = l1
}

// resetNCP zeroes the update markers before a new optimal-transfer stage.
func (s *hwState) resetNCP() {
	var l int
	for l = range s.ncp {
		s.ncp[l] = 0
	}
}
