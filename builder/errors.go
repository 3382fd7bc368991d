// SPDX-License-Identifier: MIT
// Package: kmeans/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach the constructor name with builderErrorf (%w).
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates that a count parameter (points per cluster,
// number of points, rows, cols) is smaller than the allowed minimum.
var ErrTooFewPoints = errors.New("builder: parameter too small")

// ErrBadDimension indicates an invalid dimensionality: zero dimensions, or
// centroid profiles of different lengths.
var ErrBadDimension = errors.New("builder: invalid dimension")

// ErrBadParameter indicates a non-finite or out-of-domain real parameter
// (negative radius, non-positive grid step, NaN coordinates).
var ErrBadParameter = errors.New("builder: invalid parameter")

// builderErrorf wraps a sentinel with the constructor name and a formatted
// detail, preserving errors.Is on the sentinel.
// It returns an error of the form "<Method>: <detail>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
