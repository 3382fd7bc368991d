// SPDX-License-Identifier: MIT
// Package kmeans - unified dispatcher and the seeding driver.
//
// New routes Options to one member of the closed variant set:
//
//   - Init == InitNone: the bare refinement algorithm (HartiganWong, Lloyd or
//     Reinitializer) that starts from caller-supplied centroids.
//   - otherwise: a *Kmeans driver that seeds centroids (k-means++ or random)
//     and then refines them, optionally over several seeded restarts.
//
// Design principles:
//   - Deterministic: every stochastic step draws from a stream derived from
//     Options.Seed; no time-based randomness.
//   - Strict sentinels: only errors from errors.go.
//   - Restarts run concurrently, yet results equal a sequential run.
package kmeans

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// New validates opts and returns the configured Algorithm.
//
// Errors: ErrInvalidOption, ErrUnsupportedAlgorithm, ErrUnsupportedInit.
// Complexity: O(1).
func New(opts Options) (Algorithm, error) {
	if err := validateOptions(opts); err != nil {
		return nil, kmeansErrorf("New", err)
	}

	if opts.Init == InitNone {
		switch opts.Algo {
		case AlgoHartiganWong:
			return &HartiganWong{
				MaxIterations:       opts.MaxIterations,
				QuickTransferFactor: opts.QuickTransferFactor,
			}, nil
		case AlgoLloyd:
			return &Lloyd{
				MaxIterations: opts.MaxIterations,
				Tolerance:     opts.Tolerance,
			}, nil
		case AlgoReinitialize:
			return NewReinitializer(opts.Seed), nil
		}
	}

	return &Kmeans{
		Init:                opts.Init,
		Refine:              opts.Algo,
		Seed:                opts.Seed,
		MaxIterations:       opts.MaxIterations,
		QuickTransferFactor: opts.QuickTransferFactor,
		Tolerance:           opts.Tolerance,
		Starts:              opts.Starts,
	}, nil
}

// Kmeans seeds centroids from the data and refines them. centers is an
// output only: its content on entry is ignored.
//
// With Starts > 1 the restarts run concurrently on private buffers, each on
// its own RNG stream derived from Seed; the restart with the lowest total
// withinss wins (ties → lowest restart index) and is copied into the
// caller's buffers.
type Kmeans struct {
	Init                InitMethod // InitKmeansPP or InitRandom
	Refine              Algo       // AlgoHartiganWong or AlgoLloyd
	Seed                int64
	MaxIterations       int
	QuickTransferFactor int
	Tolerance           float64
	Starts              int // 0 ⇒ DefaultStarts
}

var _ Algorithm = (*Kmeans)(nil)

// Run implements Algorithm.
//
// Complexity: Starts · (seeding + refinement); see the refining variant.
func (km *Kmeans) Run(ndim, nobs int, data []float64, ncenters int, centers []float64, clusters []int) (Details, error) {
	if err := validateRun(ndim, nobs, data, ncenters, centers, clusters, false); err != nil {
		return Details{}, kmeansErrorf("Kmeans.Run", err)
	}
	if km.Refine != AlgoHartiganWong && km.Refine != AlgoLloyd {
		return Details{}, kmeansErrorf("Kmeans.Run", ErrUnsupportedAlgorithm)
	}
	if km.Init != InitKmeansPP && km.Init != InitRandom {
		return Details{}, kmeansErrorf("Kmeans.Run", ErrUnsupportedInit)
	}
	// Degenerate shapes have a closed-form answer that needs no seeding.
	if ec := classifyEdge(nobs, ncenters); ec != edgeNone {
		return runEdgeCase(ec, ndim, nobs, data, ncenters, centers, clusters), nil
	}

	starts := orDefault(km.Starts, DefaultStarts)
	if starts == 1 {
		return km.runStart(0, ndim, nobs, data, ncenters, centers, clusters)
	}

	var (
		results = make([]Details, starts)
		cbufs   = make([][]float64, starts)
		abufs   = make([][]int, starts)
		g       errgroup.Group
		s       int
	)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for s = 0; s < starts; s++ {
		s := s
		cbufs[s] = make([]float64, len(centers))
		abufs[s] = make([]int, nobs)
		g.Go(func() error {
			det, err := km.runStart(uint64(s), ndim, nobs, data, ncenters, cbufs[s], abufs[s])
			if err != nil {
				return err
			}
			results[s] = det

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Details{}, err
	}

	var (
		best      = 0
		bestTotal = results[0].TotalWithinss()
		total     float64
	)
	for s = 1; s < starts; s++ {
		if total = results[s].TotalWithinss(); total < bestTotal {
			best, bestTotal = s, total
		}
	}
	copy(centers, cbufs[best])
	copy(clusters, abufs[best])

	return results[best], nil
}

// runStart seeds and refines one restart on the given buffers.
func (km *Kmeans) runStart(stream uint64, ndim, nobs int, data []float64, k int, centers []float64, clusters []int) (Details, error) {
	rng := streamRNG(km.Seed, stream)
	switch km.Init {
	case InitRandom:
		seedRandom(ndim, nobs, data, k, centers, rng)
	default:
		seedKmeansPP(ndim, nobs, data, k, centers, rng)
	}

	return km.refiner().Run(ndim, nobs, data, k, centers, clusters)
}

// refiner returns a fresh refinement algorithm; one per restart keeps
// concurrent restarts free of shared state.
func (km *Kmeans) refiner() Algorithm {
	if km.Refine == AlgoLloyd {
		return &Lloyd{MaxIterations: km.MaxIterations, Tolerance: km.Tolerance}
	}

	return &HartiganWong{MaxIterations: km.MaxIterations, QuickTransferFactor: km.QuickTransferFactor}
}
