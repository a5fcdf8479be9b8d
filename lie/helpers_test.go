// SPDX-License-Identifier: MIT

// Package lie_test contains shared fixtures.
//
// Purpose:
//   - Seeded generators and tensor builders that fail the test on error.
//   - Tolerance comparisons over whole tensors.

package lie_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lietensor/lie"
)

const tol = 1e-9

var algebraKinds = []lie.Kind{lie.SO3Alg, lie.SE3Alg, lie.RxSO3Alg, lie.Sim3Alg}

var groupKinds = []lie.Kind{lie.SO3, lie.SE3, lie.RxSO3, lie.Sim3}

// newRNG returns a deterministic PCG stream.
func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// mustTensor builds a tensor or fails the test.
func mustTensor(t *testing.T, kind lie.Kind, values []float64, batch ...int) *lie.Tensor {
	t.Helper()
	x, err := lie.FromSlice(kind, values, batch...)
	require.NoError(t, err)

	return x
}

// randomAlgebra draws kind samples with moderate spread (rotation norms well below π).
func randomAlgebra(t *testing.T, e *lie.Engine, kind lie.Kind, seed uint64, batch ...int) *lie.Tensor {
	t.Helper()
	x, err := e.Randn(newRNG(seed), kind.Algebra(), []float64{0.5}, batch...)
	require.NoError(t, err)

	return x
}

// randomGroup draws group samples as Exp of randomAlgebra.
func randomGroup(t *testing.T, e *lie.Engine, kind lie.Kind, seed uint64, batch ...int) *lie.Tensor {
	t.Helper()
	X, err := e.Exp(randomAlgebra(t, e, kind, seed, batch...))
	require.NoError(t, err)

	return X
}

// requireClose checks kind, shape and values within tol.
func requireClose(t *testing.T, want, got *lie.Tensor, tol float64) {
	t.Helper()
	require.Equal(t, want.Kind(), got.Kind())
	require.Equal(t, want.Shape(), got.Shape())
	w, g := want.Data(), got.Data()
	for i := range w {
		require.InDelta(t, w[i], g[i], tol, "index %d", i)
	}
}

// requireSameRotation compares group values treating q and −q as equal.
func requireSameRotation(t *testing.T, e *lie.Engine, want, got *lie.Tensor, tol float64) {
	t.Helper()
	wm, err := e.Matrix(want)
	require.NoError(t, err)
	gm, err := e.Matrix(got)
	require.NoError(t, err)
	ok, err := wm.AllClose(gm, tol)
	require.NoError(t, err)
	require.True(t, ok, "want %v\ngot  %v", wm, gm)
}
