// Package builder provides validation helpers that enforce the parameter
// contracts of the generators.
//
// Each function returns a sentinel wrapped via builderErrorf when its
// precondition is violated.
package builder

import "math"

// validateMin ensures that the provided integer got is ≥ min.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewPoints, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateProfiles checks that centres is non-empty, rectangular and finite.
// It returns the common dimensionality.
// Complexity: O(k·d).
func validateProfiles(method string, centres [][]float64) (int, error) {
	if len(centres) == 0 {
		return 0, builderErrorf(method, ErrTooFewPoints, "need at least one centre")
	}
	dim := len(centres[0])
	if dim < MinDim {
		return 0, builderErrorf(method, ErrBadDimension, "centre 0 has no coordinates")
	}

	var c, d int
	for c = range centres {
		if len(centres[c]) != dim {
			return 0, builderErrorf(method, ErrBadDimension, "centre %d has %d coordinates, want %d", c, len(centres[c]), dim)
		}
		for d = range centres[c] {
			if math.IsNaN(centres[c][d]) || math.IsInf(centres[c][d], 0) {
				return 0, builderErrorf(method, ErrBadParameter, "centre %d coordinate %d is not finite", c, d)
			}
		}
	}

	return dim, nil
}

// validatePositive enforces a finite x > 0.
// Complexity: O(1).
func validatePositive(method, name string, x float64) error {
	if !(x > 0) || math.IsInf(x, 0) {
		return builderErrorf(method, ErrBadParameter, "%s must be finite and > 0, got %v", name, x)
	}

	return nil
}
