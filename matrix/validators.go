// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil/finite checks here.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is accepted only when n == 0.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans x and rejects NaN and ±Inf.
// Complexity: O(len(x)).
func ValidateFinite(x []float64) error {
	var i int
	for i = range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite[%d]", i), ErrNaNInf)
		}
	}

	return nil
}

// ValidateFiniteMatrix applies ValidateNotNil then ValidateFinite to m.
// Complexity: O(r*c).
func ValidateFiniteMatrix(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateFinite(m.data)
}
