// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lietensor/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-12

// TestMulMatchesGonum cross-checks the fast path and the fallback against gonum.
func TestMulMatchesGonum(t *testing.T) {
	a := RandomDense(t, 4, 7, 1)
	b := RandomDense(t, 7, 3, 2)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)

	ga, gb := gonumOf(a), gonumOf(b)
	var want mat.Dense
	want.Mul(ga, gb)

	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			g, _ := got.At(i, j)
			s, _ := slow.At(i, j)
			require.InDelta(t, want.At(i, j), g, tol)
			require.InDelta(t, want.At(i, j), s, tol)
		}
	}
}

// TestMulDimensionMismatch checks inner-dimension validation and nil operands.
func TestMulDimensionMismatch(t *testing.T) {
	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	var nilDense *matrix.Dense
	_, err = matrix.Mul(nilDense, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVecMatchesGonum compares MatVec with gonum MulVec on both paths.
func TestMatVecMatchesGonum(t *testing.T) {
	a := RandomDense(t, 7, 7, 3)
	x := []float64{0.5, -1, 0, 2, 0.25, 0, -0.75}

	got, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	slow, err := matrix.MatVec(hide{a}, x)
	require.NoError(t, err)

	ga := gonumOf(a)
	var want mat.VecDense
	want.MulVec(ga, mat.NewVecDense(len(x), x))
	for i := range got {
		require.InDelta(t, want.AtVec(i), got[i], tol)
		require.InDelta(t, want.AtVec(i), slow[i], tol)
	}

	_, err = matrix.MatVec(a, x[:3])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddScale exercises the elementwise kernels on both paths.
func TestAddScale(t *testing.T) {
	a := RandomDense(t, 3, 2, 4)
	b := RandomDense(t, 3, 2, 5)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	slow, err := matrix.Add(hide{a}, b)
	require.NoError(t, err)
	neg, err := matrix.Scale(hide{b}, -1)
	require.NoError(t, err)
	back, err := matrix.Add(sum, neg)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			sv, _ := slow.At(i, j)
			dv, _ := back.At(i, j)
			require.InDelta(t, av+bv, sv, tol)
			require.InDelta(t, av, dv, tol)
		}
	}

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMaxAbs checks both paths and the nil guard.
func TestMaxAbs(t *testing.T) {
	a, err := matrix.NewDenseFrom(2, 3, []float64{0.5, -7, 2, 0, 6.5, -1})
	require.NoError(t, err)
	got, err := matrix.MaxAbs(a)
	require.NoError(t, err)
	require.Equal(t, 7.0, got)
	got, err = matrix.MaxAbs(hide{a})
	require.NoError(t, err)
	require.Equal(t, 7.0, got)

	_, err = matrix.MaxAbs(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
