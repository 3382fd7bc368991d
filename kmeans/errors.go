// SPDX-License-Identifier: MIT
// Package kmeans: sentinel error set.
// Errors are reserved for programming errors (bad shapes, bad options).
// Data conditions never surface here; they are reported via Details.Status.
// Every message is prefixed with "kmeans: ..."; call sites wrap with
// kmeansErrorf so that errors.Is keeps matching the sentinel.

package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when ndim < 1.
	ErrInvalidDimension = errors.New("kmeans: ndim must be >= 1")

	// ErrInvalidObservationCount is returned when nobs < 0.
	ErrInvalidObservationCount = errors.New("kmeans: nobs must be >= 0")

	// ErrNoCenters is returned when ncenters < 1 while there are observations
	// to assign, or when ncenters is negative.
	ErrNoCenters = errors.New("kmeans: ncenters must be >= 1")

	// ErrBufferLength is returned when a buffer length disagrees with the
	// declared shape (data, centers or clusters).
	ErrBufferLength = errors.New("kmeans: buffer length does not match shape")

	// ErrNonFinite is returned when data or supplied centroids hold NaN/±Inf.
	ErrNonFinite = errors.New("kmeans: non-finite value")

	// ErrUnsupportedAlgorithm is returned for an unknown Algo or a combination
	// the dispatcher cannot route (e.g. seeding followed by a repair-only pass).
	ErrUnsupportedAlgorithm = errors.New("kmeans: unsupported algorithm")

	// ErrUnsupportedInit is returned for an unknown InitMethod, or InitNone
	// where the entry point has no centroids to start from.
	ErrUnsupportedInit = errors.New("kmeans: unsupported initialization")

	// ErrInvalidOption is returned for negative iteration caps, negative or
	// NaN tolerances and similar nonsensical configuration.
	ErrInvalidOption = errors.New("kmeans: invalid option")
)

// kmeansErrorf wraps an underlying sentinel with the given call-site tag.
func kmeansErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
