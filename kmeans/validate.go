// SPDX-License-Identifier: MIT
// Package kmeans - validation of the Run contract.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(ndim·(nobs+ncenters)) worst-case (finite-value scan); no allocations.
package kmeans

import (
	"fmt"

	"github.com/katalvlaran/kmeans/matrix"
)

// validateRun verifies shapes and buffer lengths of a Run call.
// When readsCenters is true, the centroid columns the algorithm will read
// (the first min(ncenters, nobs)) must also be finite.
//
// Error priority: ndim → nobs → ncenters → buffer lengths → finite values.
func validateRun(ndim, nobs int, data []float64, ncenters int, centers []float64, clusters []int, readsCenters bool) error {
	if ndim < 1 {
		return ErrInvalidDimension
	}
	if nobs < 0 {
		return ErrInvalidObservationCount
	}
	if ncenters < 0 || (ncenters == 0 && nobs > 0) {
		return ErrNoCenters
	}
	if err := matrix.ValidateVecLen(data, ndim*nobs); err != nil {
		return fmt.Errorf("data: %w: %w", ErrBufferLength, err)
	}
	if err := matrix.ValidateVecLen(centers, ndim*ncenters); err != nil {
		return fmt.Errorf("centers: %w: %w", ErrBufferLength, err)
	}
	if len(clusters) != nobs {
		return kmeansErrorf("clusters", ErrBufferLength)
	}
	if err := matrix.ValidateFinite(data); err != nil {
		return fmt.Errorf("data: %w: %w", ErrNonFinite, err)
	}
	if readsCenters {
		if err := matrix.ValidateFinite(centers[:ndim*min(ncenters, nobs)]); err != nil {
			return fmt.Errorf("centers: %w: %w", ErrNonFinite, err)
		}
	}

	return nil
}
