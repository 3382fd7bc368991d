// SPDX-License-Identifier: MIT
// Package kmeans - RNG utilities shared by seeding and reinitialization.
//
// This file centralizes deterministic random generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Explicit state: every stochastic component owns its *rand.Rand.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use deriveSeed to create independent streams for parallel restarts.
package kmeans

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer, so restart s of seed x never correlates with
// restart s+1 or with seed x+1.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streamRNG returns the RNG for restart number stream under the seed policy.
func streamRNG(seed int64, stream uint64) *rand.Rand {
	var parent = seed
	if parent == 0 {
		parent = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var (
		n = len(a)
		i int
		j int
	)
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permRange returns a permutation of 0..n-1 generated deterministically from rng.
//
// Complexity: O(n) time, O(n) space.
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleIntsInPlace(p, rng)

	return p
}

// weightedSample draws index i with probability weights[i] / Σ weights.
//
// Policy (documented, tested):
//   - Non-positive weights are never selected.
//   - u is a single rng.Float64() draw; the scan runs in ascending index order
//     and returns the first i whose running sum strictly exceeds u·Σw.
//   - If rounding leaves the threshold unreached, the last positive index wins.
//   - Returns -1 when Σw ≤ 0 (no donor exists); rng is not advanced then.
//
// Complexity: O(n).
func weightedSample(weights []float64, rng *rand.Rand) int {
	var (
		total float64
		i     int
	)
	for i = range weights {
		if weights[i] > 0 {
			total += weights[i]
		}
	}
	if total <= 0 {
		return -1
	}

	var (
		threshold = rng.Float64() * total
		cum       float64
		last      = -1
	)
	for i = range weights {
		if weights[i] <= 0 {
			continue
		}
		last = i
		cum += weights[i]
		if cum > threshold {
			return i
		}
	}

	return last
}
