// SPDX-License-Identifier: MIT
package lie_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lietensor/lie"
	"github.com/katalvlaran/lietensor/tensor"
)

// TestMulInvIsIdentity checks X·X⁻¹ = X⁻¹·X = I for every group kind.
func TestMulInvIsIdentity(t *testing.T) {
	e := lie.NewEngine()
	for i, k := range groupKinds {
		t.Run(k.String(), func(t *testing.T) {
			X := randomGroup(t, e, k, uint64(i+1), 4, 3)
			Xi, err := e.Inv(X)
			require.NoError(t, err)
			require.Equal(t, k, Xi.Kind())

			id, err := lie.IdentityLike(X)
			require.NoError(t, err)
			for _, pair := range [][2]*lie.Tensor{{X, Xi}, {Xi, X}} {
				got, err := e.Mul(pair[0], pair[1])
				require.NoError(t, err)
				requireClose(t, id, got, tol)
			}
		})
	}
}

// TestRetrZeroIsExact: Retr(X, 0) reproduces X bit for bit.
func TestRetrZeroIsExact(t *testing.T) {
	e := lie.NewEngine()
	for i, k := range groupKinds {
		X := randomGroup(t, e, k, uint64(20+i), 6)
		zero, err := lie.Identity(k.Pair(), 6)
		require.NoError(t, err)
		got, err := e.Retr(X, zero)
		require.NoError(t, err)
		require.Equal(t, X.Data(), got.Data(), k.String())
	}
}

// TestRetrIsMulExp compares Retr with its definition.
func TestRetrIsMulExp(t *testing.T) {
	e := lie.NewEngine()
	for i, k := range groupKinds {
		X := randomGroup(t, e, k, uint64(30+i), 5)
		a := randomAlgebra(t, e, k, uint64(40+i), 5)
		got, err := e.Retr(X, a)
		require.NoError(t, err)
		Ea, err := e.Exp(a)
		require.NoError(t, err)
		want, err := e.Mul(X, Ea)
		require.NoError(t, err)
		require.Equal(t, want.Data(), got.Data(), k.String())
	}
}

// TestMulAssociative: (XY)Z ≈ X(YZ).
func TestMulAssociative(t *testing.T) {
	e := lie.NewEngine()
	for i, k := range groupKinds {
		X := randomGroup(t, e, k, uint64(50+i), 3)
		Y := randomGroup(t, e, k, uint64(60+i), 3)
		Z := randomGroup(t, e, k, uint64(70+i), 3)
		XY, err := e.Mul(X, Y)
		require.NoError(t, err)
		l, err := e.Mul(XY, Z)
		require.NoError(t, err)
		YZ, err := e.Mul(Y, Z)
		require.NoError(t, err)
		r, err := e.Mul(X, YZ)
		require.NoError(t, err)
		requireClose(t, l, r, tol)
	}
}

// TestMulKindMismatch: SO3·SE3 is rejected with no result.
func TestMulKindMismatch(t *testing.T) {
	e := lie.NewEngine()
	a, err := lie.Identity(lie.SO3)
	require.NoError(t, err)
	b, err := lie.Identity(lie.SE3)
	require.NoError(t, err)

	got, err := e.Mul(a, b)
	require.ErrorIs(t, err, lie.ErrKindMismatch)
	require.Nil(t, got)
	require.Contains(t, err.Error(), "lie.Mul")

	c, err := lie.Identity(lie.SO3, 2)
	require.NoError(t, err)
	_, err = e.Mul(a, c)
	require.ErrorIs(t, err, lie.ErrShape)

	alg, err := lie.Identity(lie.SO3Alg)
	require.NoError(t, err)
	_, err = e.Mul(alg, alg)
	require.ErrorIs(t, err, lie.ErrUnsupported)
}

// TestGroupAlgebraPairing: Adj/AdjT/Jinvp/Retr need the paired algebra.
func TestGroupAlgebraPairing(t *testing.T) {
	e := lie.NewEngine()
	X, err := lie.Identity(lie.SE3, 2)
	require.NoError(t, err)
	wrong, err := lie.Identity(lie.SO3Alg, 2)
	require.NoError(t, err)
	short, err := lie.Identity(lie.SE3Alg, 3)
	require.NoError(t, err)

	ops := map[string]func(x, a *lie.Tensor) (*lie.Tensor, error){
		"Adj": e.Adj, "AdjT": e.AdjT, "Jinvp": e.Jinvp, "Retr": e.Retr,
	}
	for name, op := range ops {
		_, err := op(X, wrong)
		require.ErrorIs(t, err, lie.ErrKindMismatch, name)
		_, err = op(X, short)
		require.ErrorIs(t, err, lie.ErrShape, name)
		_, err = op(X, nil)
		require.ErrorIs(t, err, lie.ErrNilTensor, name)
	}
}

// TestActMatchesMatrix compares Act with the homogeneous matrix form.
func TestActMatchesMatrix(t *testing.T) {
	e := lie.NewEngine()
	for i, k := range groupKinds {
		t.Run(k.String(), func(t *testing.T) {
			X := randomGroup(t, e, k, uint64(80+i))
			p, err := tensor.FromSlice([]float64{0.4, -1.5, 2.25}, 3)
			require.NoError(t, err)
			got, err := e.Act(X, p)
			require.NoError(t, err)
			require.Equal(t, []int{3}, got.Shape())

			m, err := e.Matrix(X)
			require.NoError(t, err)
			md := m.Data()
			n := m.Shape()[0]
			pv := p.Data()
			for r := 0; r < 3; r++ {
				want := 0.0
				for c := 0; c < 3; c++ {
					want += md[r*n+c] * pv[c]
				}
				if n == 4 {
					want += md[r*n+3]
				}
				require.InDelta(t, want, got.Data()[r], tol)
			}

			// Homogeneous w = 0 drops the translation and passes through.
			ph, err := tensor.FromSlice([]float64{0.4, -1.5, 2.25, 0}, 4)
			require.NoError(t, err)
			gh, err := e.Act(X, ph)
			require.NoError(t, err)
			require.Equal(t, 0.0, gh.Data()[3])
			if k == lie.SE3 || k == lie.Sim3 {
				tr, err := X.Translation()
				require.NoError(t, err)
				for r := 0; r < 3; r++ {
					require.InDelta(t, got.Data()[r]-tr.Data()[r], gh.Data()[r], tol)
				}
			}
		})
	}
}

// TestActRejectsPoints validates point widths and batch shapes.
func TestActRejectsPoints(t *testing.T) {
	e := lie.NewEngine()
	X, err := lie.Identity(lie.Sim3, 2)
	require.NoError(t, err)
	bad, err := tensor.New(2, 5)
	require.NoError(t, err)
	_, err = e.Act(X, bad)
	require.ErrorIs(t, err, lie.ErrShape)

	other, err := tensor.New(3, 3)
	require.NoError(t, err)
	_, err = e.Act(X, other)
	require.ErrorIs(t, err, lie.ErrShape)

	_, err = e.Act(X, nil)
	require.ErrorIs(t, err, lie.ErrNilTensor)
}

// TestAdjConjugation: Exp(Adj(X)·a) = X·Exp(a)·X⁻¹.
func TestAdjConjugation(t *testing.T) {
	e := lie.NewEngine()
	for i, k := range groupKinds {
		X := randomGroup(t, e, k, uint64(90+i), 4)
		a := randomAlgebra(t, e, k, uint64(100+i), 4)

		adj, err := e.Adj(X, a)
		require.NoError(t, err)
		require.Equal(t, k.Pair(), adj.Kind())
		lhs, err := e.Exp(adj)
		require.NoError(t, err)

		Ea, err := e.Exp(a)
		require.NoError(t, err)
		XEa, err := e.Mul(X, Ea)
		require.NoError(t, err)
		Xi, err := e.Inv(X)
		require.NoError(t, err)
		rhs, err := e.Mul(XEa, Xi)
		require.NoError(t, err)

		requireSameRotation(t, e, lhs, rhs, 1e-9)
	}
}

// TestAdjTIsTranspose: ⟨Adj(X)a, b⟩ = ⟨a, AdjT(X)b⟩.
func TestAdjTIsTranspose(t *testing.T) {
	e := lie.NewEngine()
	for i, k := range groupKinds {
		X := randomGroup(t, e, k, uint64(110+i), 8)
		a := randomAlgebra(t, e, k, uint64(120+i), 8)
		b := randomAlgebra(t, e, k, uint64(130+i), 8)

		Aa, err := e.Adj(X, a)
		require.NoError(t, err)
		ATb, err := e.AdjT(X, b)
		require.NoError(t, err)

		w := k.Pair().Width()
		aa, bb, ad, atb := a.Data(), b.Data(), Aa.Data(), ATb.Data()
		for r := 0; r < 8; r++ {
			var lhs, rhs float64
			for c := 0; c < w; c++ {
				lhs += ad[r*w+c] * bb[r*w+c]
				rhs += aa[r*w+c] * atb[r*w+c]
			}
			require.InDelta(t, lhs, rhs, tol, k.String())
		}
	}
}

// TestMatrixShapes pins the matrix form dimensions and the identity.
func TestMatrixShapes(t *testing.T) {
	e := lie.NewEngine()
	want := map[lie.Kind][]int{
		lie.SO3: {2, 0, 3, 3}, lie.SE3: {2, 0, 4, 4},
		lie.RxSO3: {2, 0, 4, 4}, lie.Sim3: {2, 0, 4, 4},
	}
	for k, shape := range want {
		X, err := lie.Identity(k, 2, 0)
		require.NoError(t, err)
		m, err := e.Matrix(X)
		require.NoError(t, err)
		require.Equal(t, shape, m.Shape())

		one, err := lie.Identity(k)
		require.NoError(t, err)
		m, err = e.Matrix(one)
		require.NoError(t, err)
		n := shape[2]
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				v, err := m.At(r, c)
				require.NoError(t, err)
				if r == c {
					require.Equal(t, 1.0, v)
				} else {
					require.Equal(t, 0.0, v)
				}
			}
		}
	}
}
