// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lietensor/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // deprecated alias still matches

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestNewDenseFrom checks copy semantics and length validation.
func TestNewDenseFrom(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	m, err := matrix.NewDenseFrom(2, 2, src)
	require.NoError(t, err)

	src[0] = 100 // caller mutation must not leak into the matrix
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, 2, 2)
	_ = m.Set(0, 0, 1.0)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0)

	origVal, _ := m.At(0, 0)
	cloneVal, _ := clone.At(0, 0)
	require.Equal(t, 1.0, origVal)
	require.Equal(t, 3.0, cloneVal)

	raw := m.RawData()
	raw[0] = 42
	origVal, _ = m.At(0, 0)
	require.Equal(t, 1.0, origVal)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestNewIdentity checks the diagonal pattern.
func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, I.RawData())

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestSetBlock writes a 3×3 block into a 6×6 operator and rejects overflow.
func TestSetBlock(t *testing.T) {
	d := MustDense(t, 6, 6)
	require.NoError(t, d.SetBlock(3, 0, matrix.Identity3()))

	v, _ := d.At(4, 1)
	require.Equal(t, 1.0, v)
	v, _ = d.At(1, 4)
	require.Equal(t, 0.0, v)

	require.ErrorIs(t, d.SetBlock(4, 0, matrix.Identity3()), matrix.ErrOutOfRange)
}
