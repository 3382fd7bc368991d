// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Allow zero-copy wrapping of caller buffers (FromSlice) for clustering engines
//     that work on raw spans.
//
// Layout note:
//
//	An r×c row-major Dense whose rows are observations has exactly the same
//	flat layout as a c×r column-major matrix whose columns are observations.
//	The kmeans package relies on this identity: Dense.RawData() of an
//	nobs×ndim matrix is a valid ndim×nobs column-major observation buffer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; FromSlice: O(1); At/Set/Row: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxRow   = "Row"
	ctxSetRw = "SetRow"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
// A zero row count is legal (an empty observation set); cols must be positive.
//
// Errors: ErrInvalidDimensions when rows<0 or cols<=0.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols <= 0 {
		return nil, matrixErrorf("NewDense", ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromSlice wraps data as an r×c matrix WITHOUT copying.
// The returned Dense aliases data: mutations through Set are visible to the
// caller and vice versa. Lifetime is the caller's.
//
// Errors:
//   - ErrInvalidDimensions when rows<0 or cols<=0.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//
// Complexity: O(1).
func FromSlice(rows, cols int, data []float64) (*Dense, error) {
	if rows < 0 || cols <= 0 {
		return nil, matrixErrorf("FromSlice", ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf("FromSlice", ErrDimensionMismatch)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// FromRows builds a matrix by copying a slice of equal-length rows.
//
// Errors: ErrInvalidDimensions for an empty first row, ErrDimensionMismatch for ragged input.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf("FromRows", ErrInvalidDimensions)
	}
	var (
		c = len(rows[0])
		i int
	)
	if c == 0 {
		return nil, matrixErrorf("FromRows", ErrInvalidDimensions)
	}
	buf := make([]float64, 0, len(rows)*c)
	for i = range rows { // row order is preserved verbatim
		if len(rows[i]) != c {
			return nil, matrixErrorf("FromRows", ErrDimensionMismatch)
		}
		buf = append(buf, rows[i]...)
	}

	return &Dense{r: len(rows), c: c, data: buf}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// RawData exposes the backing buffer (no copy).
// Intended for kernels that operate on flat spans; callers must not resize it.
func (m *Dense) RawData() []float64 { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a no-copy slice of row i (length Cols()).
// Mutations through the slice are visible in the matrix.
// Complexity: O(1).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// SetRow copies v into row i.
//
// Errors: ErrOutOfRange for a bad index, ErrDimensionMismatch when len(v) != Cols().
// Complexity: O(c).
func (m *Dense) SetRow(i int, v []float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRw, i, 0, ErrOutOfRange)
	}
	if len(v) != m.c {
		return denseErrorf(ctxSetRw, i, len(v), ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], v)

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteString("[")
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
