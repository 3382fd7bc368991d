// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kmeans/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Shapes checks legal and illegal constructor shapes.
func TestNewDense_Shapes(t *testing.T) {
	m, err := matrix.NewDense(0, 3) // empty observation set is legal
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Empty(t, m.RawData())

	_, err = matrix.NewDense(2, 0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestFromSlice_Aliases verifies that FromSlice shares storage with the caller.
func TestFromSlice_Aliases(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.FromSlice(3, 2, buf)
	require.NoError(t, err)

	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v, "row-major offset 1*2+1")

	require.NoError(t, m.Set(2, 0, 50))
	assert.Equal(t, 50.0, buf[4], "write must be visible in the caller buffer")

	_, err = matrix.FromSlice(4, 2, buf)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestFromRows_CopiesAndRejectsRagged covers FromRows success and failure paths.
func TestFromRows_CopiesAndRejectsRagged(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	rows[0][0] = 99
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v, "FromRows must copy")

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_RowAccess checks Row/SetRow semantics and bounds.
func TestDense_RowAccess(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.SetRow(1, []float64{7, 8, 9}))
	r, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8, 9}, r)

	r[0] = -1 // no-copy view
	v, _ := m.At(1, 0)
	assert.Equal(t, -1.0, v)

	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.SetRow(0, []float64{1}), matrix.ErrDimensionMismatch)
	_, err = m.At(0, 3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDense_CloneIndependent ensures Clone deep-copies.
func TestDense_CloneIndependent(t *testing.T) {
	m, _ := matrix.FromRows([][]float64{{1, 2}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, "[1, 2]\n", m.String())
}

// TestValidators covers the finite-value and length policies.
func TestValidators(t *testing.T) {
	assert.NoError(t, matrix.ValidateFinite([]float64{0, -1, 1e300}))
	assert.ErrorIs(t, matrix.ValidateFinite([]float64{0, math.NaN()}), matrix.ErrNaNInf)
	assert.ErrorIs(t, matrix.ValidateFinite([]float64{math.Inf(-1)}), matrix.ErrNaNInf)

	assert.NoError(t, matrix.ValidateVecLen(nil, 0))
	assert.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)

	assert.ErrorIs(t, matrix.ValidateFiniteMatrix(nil), matrix.ErrNilMatrix)
}
