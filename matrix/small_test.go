// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lietensor/matrix"
	"github.com/stretchr/testify/require"
)

// TestSkewMatchesCross checks Skew(v)·w == v × w and skew antisymmetry.
func TestSkewMatchesCross(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 20; i++ {
		v, w := RandomVec3(rng), RandomVec3(rng)
		got := matrix.Skew(v).MulVec(w)
		want := v.Cross(w)
		for k := 0; k < 3; k++ {
			require.InDelta(t, want[k], got[k], tol)
		}
		require.Equal(t, matrix.Skew(v).T(), matrix.Skew(v.Neg()))
	}
}

// TestSkewPolyCubeIdentity checks Φ³ = −θ²Φ through SkewPoly.
func TestSkewPolyCubeIdentity(t *testing.T) {
	v := matrix.Vec3{0.3, -0.2, 0.9}
	phi := matrix.SkewPoly(v, 1, 0, 0)
	phi2 := matrix.SkewPoly(v, 0, 1, 0)
	cube := phi.Mul(phi2)
	want := phi.Scale(-v.SquaredNorm())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(t, want[i][j], cube[i][j], tol)
		}
	}

	id := matrix.SkewPoly(v, 0, 0, 1)
	require.Equal(t, matrix.Identity3(), id)
}

// TestVec3Basics covers the small vector helpers.
func TestVec3Basics(t *testing.T) {
	v := matrix.Vec3{3, 0, 4}
	require.Equal(t, 5.0, v.Norm())
	require.Equal(t, 25.0, v.SquaredNorm())
	require.Equal(t, matrix.Vec3{6, 0, 8}, v.Scale(2))
	require.Equal(t, matrix.Vec3{0, 0, 0}, v.Sub(v))
	require.Equal(t, matrix.Vec3{6, 0, 8}, v.Add(v))

	dst := make([]float64, 4)
	v.Store(dst)
	require.Equal(t, []float64{3, 0, 4, 0}, dst)
	require.Equal(t, v, matrix.Vec3From(dst))

	require.Equal(t, 0.0, matrix.Vec3{}.Norm())
	require.False(t, math.IsNaN(matrix.Vec3{1e200, 1e200, 0}.Norm()))
}

// TestMat3MulAssociative checks (AB)C == A(BC) and transpose of a product.
func TestMat3MulAssociative(t *testing.T) {
	a := matrix.Skew(matrix.Vec3{1, 2, 3}).Add(matrix.Identity3())
	b := matrix.Skew(matrix.Vec3{-1, 0.5, 2}).Scale(0.5)
	c := matrix.SkewPoly(matrix.Vec3{0.1, 0.2, 0.3}, 0.3, 0.2, 1)

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	abT := a.Mul(b).T()
	bTaT := b.T().Mul(a.T())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(t, left[i][j], right[i][j], tol)
			require.InDelta(t, abT[i][j], bTaT[i][j], tol)
		}
	}
}
