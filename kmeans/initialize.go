// SPDX-License-Identifier: MIT
// Package kmeans - centroid seeding for the Kmeans driver.
//
// Both seeders write exactly k distinct observation columns into centers
// (k ≤ nobs is guaranteed by the caller) and consume rng deterministically.
package kmeans

import "math/rand"

// seedKmeansPP writes k centroids chosen with k-means++ (Arthur & Vassilvitskii, 2007):
//  1. The first centroid is an observation drawn uniformly.
//  2. Every following centroid is drawn with probability proportional to the
//     squared distance of an observation to its nearest chosen centroid.
//
// Duplicate observations can drive every weight to zero before k centroids
// are chosen; the remainder is then filled with unchosen observations in
// random order so that every column still holds a real observation.
//
// Complexity: O(k · nobs · ndim) time, O(nobs) extra space.
func seedKmeansPP(ndim, nobs int, data []float64, k int, centers []float64, rng *rand.Rand) {
	var (
		minDist = make([]float64, nobs)
		chosen  = make([]bool, nobs)
		first   = rng.Intn(nobs)
		c       int
		i       int
		pick    int
		d       float64
		col     []float64
	)

	copy(column(centers, ndim, 0), column(data, ndim, first))
	chosen[first] = true
	col = column(centers, ndim, 0)
	for i = 0; i < nobs; i++ {
		minDist[i] = SquaredDistance(column(data, ndim, i), col)
	}

	for c = 1; c < k; c++ {
		pick = weightedSample(minDist, rng)
		if pick < 0 {
			fillUnchosen(ndim, nobs, data, c, k, centers, chosen, rng)
			return
		}
		chosen[pick] = true
		col = column(centers, ndim, c)
		copy(col, column(data, ndim, pick))
		for i = 0; i < nobs; i++ {
			d = SquaredDistance(column(data, ndim, i), col)
			if d < minDist[i] {
				minDist[i] = d
			}
		}
	}
}

// fillUnchosen fills centroid columns [from, k) with distinct observations
// not yet marked in chosen, visited in a random order.
func fillUnchosen(ndim, nobs int, data []float64, from, k int, centers []float64, chosen []bool, rng *rand.Rand) {
	var (
		order = permRange(nobs, rng)
		c     = from
		j     int
	)
	for j = 0; j < nobs && c < k; j++ {
		if chosen[order[j]] {
			continue
		}
		chosen[order[j]] = true
		copy(column(centers, ndim, c), column(data, ndim, order[j]))
		c++
	}
}

// seedRandom writes k distinct observations drawn uniformly without
// replacement (the first k entries of a random permutation).
//
// Complexity: O(nobs + k·ndim).
func seedRandom(ndim, nobs int, data []float64, k int, centers []float64, rng *rand.Rand) {
	var (
		order = permRange(nobs, rng)
		c     int
	)
	for c = 0; c < k; c++ {
		copy(column(centers, ndim, c), column(data, ndim, order[c]))
	}
}
