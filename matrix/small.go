// SPDX-License-Identifier: MIT

// Package matrix - fixed-size 3D value types.
//
// Purpose:
//   - Vec3/Mat3 carry the per-element arithmetic of the Lie kernels (skew
//     matrices, rotation matrices, Jacobian blocks) without heap allocation.
//   - Value semantics: every method returns a new value; receivers are never mutated.
//
// Determinism:
//   - Fixed i→j→k loop orders; identical inputs give bit-identical outputs.

package matrix

import "gonum.org/v1/gonum/floats"

// Vec3 is a 3-vector stored by value.
type Vec3 [3]float64

// Mat3 is a row-major 3×3 matrix stored by value.
type Mat3 [3][3]float64

// Vec3From copies the first three entries of s into a Vec3.
// Panics if len(s) < 3; callers slice validated tensor rows.
func Vec3From(s []float64) Vec3 { return Vec3{s[0], s[1], s[2]} }

// Store writes v into dst[0:3].
func (v Vec3) Store(dst []float64) { copy(dst[:3], v[:]) }

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// Sub returns v − w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

// Scale returns a·v.
func (v Vec3) Scale(a float64) Vec3 { return Vec3{a * v[0], a * v[1], a * v[2]} }

// Neg returns −v.
func (v Vec3) Neg() Vec3 { return Vec3{-v[0], -v[1], -v[2]} }

// Dot returns v·w.
func (v Vec3) Dot(w Vec3) float64 { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// Cross returns v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Norm returns the Euclidean norm ‖v‖ (overflow-safe, via gonum floats).
func (v Vec3) Norm() float64 { return floats.Norm(v[:], 2) }

// SquaredNorm returns v·v.
func (v Vec3) SquaredNorm() float64 { return v.Dot(v) }

// Identity3 returns the 3×3 identity.
func Identity3() Mat3 { return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} }

// Skew returns the skew-symmetric matrix [v]× such that Skew(v).MulVec(w) == v.Cross(w).
func Skew(v Vec3) Mat3 {
	return Mat3{
		{0, -v[2], v[1]},
		{v[2], 0, -v[0]},
		{-v[1], v[0], 0},
	}
}

// SkewPoly returns a·Φ + b·Φ² + c·I with Φ = Skew(v).
// Every Jacobian and sW operator of the Lie kernels has this shape.
// Complexity: O(1), no allocation.
func SkewPoly(v Vec3, a, b, c float64) Mat3 {
	phi := Skew(v)
	phi2 := phi.Mul(phi)
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a*phi[i][j] + b*phi2[i][j]
		}
		out[i][i] += c
	}

	return out
}

// Mul returns the product m·n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			mk := m[i][k]
			for j := 0; j < 3; j++ {
				out[i][j] += mk * n[k][j]
			}
		}
	}

	return out
}

// MulVec returns m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// T returns the transpose mᵀ.
func (m Mat3) T() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[j][i] = m[i][j]
		}
	}

	return out
}

// Add returns m + n.
func (m Mat3) Add(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][j] + n[i][j]
		}
	}

	return out
}

// Scale returns a·m.
func (m Mat3) Scale(a float64) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a * m[i][j]
		}
	}

	return out
}

// SetBlock writes m into d at rows r0..r0+2, cols c0..c0+2.
// Returns ErrOutOfRange when the block does not fit.
func (d *Dense) SetBlock(r0, c0 int, m Mat3) error {
	if r0 < 0 || c0 < 0 || r0+3 > d.r || c0+3 > d.c {
		return denseErrorf("SetBlock", r0, c0, ErrOutOfRange)
	}
	for i := 0; i < 3; i++ {
		copy(d.data[(r0+i)*d.c+c0:(r0+i)*d.c+c0+3], m[i][:])
	}

	return nil
}
