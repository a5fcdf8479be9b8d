// SPDX-License-Identifier: MIT

// Package lie - SE3 / se3 kernels.
//
// Layout:
//   - SE3: [tx, ty, tz, qx, qy, qz, qw].
//   - se3: [τx, τy, τz, φx, φy, φz].
//
// Group law: (t1, q1)·(t2, q2) = (t1 + R1·t2, q1·q2).

package lie

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/lietensor/matrix"
)

type se3Family struct{}

var _ family = se3Family{}

// se3Split reads (t, q) from a group row.
func se3Split(g []float64) (matrix.Vec3, quat.Number) {
	return matrix.Vec3From(g[0:3]), loadQuat(g[3:7])
}

// se3Exp maps (τ, φ) to (J(φ)·τ, Exp(φ)).
func se3Exp(eps float64, tau, phi matrix.Vec3) (matrix.Vec3, quat.Number) {
	return leftJacobian(eps, phi).MulVec(tau), so3Exp(eps, phi)
}

// se3Log maps (t, q) to (J⁻¹(φ)·t, φ).
func se3Log(eps float64, t matrix.Vec3, q quat.Number) (tau, phi matrix.Vec3) {
	phi = so3Log(eps, q)
	return leftJacobianInv(eps, phi).MulVec(t), phi
}

// se3QSeriesBound is the angle below which the Q coefficients use their
// Taylor series. The closed forms cancel to θ⁴/12 (c2) and θ⁵/60 (c3) from
// terms of size θ, so they need a much wider guard than eps; at 0.1 the
// series truncated after θ⁶ is exact to double precision.
const se3QSeriesBound = 0.1

// se3QCoeffs returns the coefficients of the SE3 coupling block Q.
// The series branch is taken for θ ≤ max(eps, se3QSeriesBound).
//
//	c1 = (θ − sin θ)/θ³               (1/6 − θ²/120 + θ⁴/5040 − θ⁶/362880)
//	c2 = (θ² + 2cos θ − 2)/(2θ⁴)      (1/24 − θ²/720 + θ⁴/40320 − θ⁶/3628800)
//	c3 = (2θ − 3sin θ + θcos θ)/(2θ⁵) (1/120 − θ²/2520 + θ⁴/120960 − θ⁶/9979200)
func se3QCoeffs(eps, theta float64) (c1, c2, c3 float64) {
	t2 := theta * theta
	t4 := t2 * t2
	if theta <= math.Max(eps, se3QSeriesBound) {
		t6 := t4 * t2
		c1 = 1.0/6 - t2/120 + t4/5040 - t6/362880
		c2 = 1.0/24 - t2/720 + t4/40320 - t6/3628800
		c3 = 1.0/120 - t2/2520 + t4/120960 - t6/9979200
		return c1, c2, c3
	}
	sinT, cosT := math.Sincos(theta)
	s := math.Sin(0.5 * theta)
	c1 = (theta - sinT) / (t2 * theta)
	c2 = (t2 - 4*s*s) / (2 * t4) // 2cos θ − 2 = −4sin²(θ/2)
	c3 = (2*theta - 3*sinT + theta*cosT) / (2 * t4 * theta)

	return c1, c2, c3
}

// se3Q returns Q(τ, φ) = ½T + c1(ΦT + TΦ + ΦTΦ) + c2(Φ²T + TΦ² − 3ΦTΦ) + c3(ΦTΦ² + Φ²TΦ)
// with T = [τ]× and Φ = [φ]×.
func se3Q(eps float64, tau, phi matrix.Vec3) matrix.Mat3 {
	c1, c2, c3 := se3QCoeffs(eps, phi.Norm())
	T, P := matrix.Skew(tau), matrix.Skew(phi)
	PT, TP := P.Mul(T), T.Mul(P)
	PTP := PT.Mul(P)
	P2T, TP2 := P.Mul(PT), TP.Mul(P)
	PTP2, P2TP := PTP.Mul(P), P.Mul(PTP)

	q := T.Scale(0.5)
	q = q.Add(PT.Add(TP).Add(PTP).Scale(c1))
	q = q.Add(P2T.Add(TP2).Add(PTP.Scale(-3)).Scale(c2))
	q = q.Add(PTP2.Add(P2TP).Scale(c3))

	return q
}

func (se3Family) exp(eps float64, x, out []float64) {
	t, q := se3Exp(eps, matrix.Vec3From(x[0:3]), matrix.Vec3From(x[3:6]))
	t.Store(out[0:3])
	storeQuat(q, out[3:7])
}

func (se3Family) log(eps float64, g, out []float64) {
	t, q := se3Split(g)
	tau, phi := se3Log(eps, t, q)
	tau.Store(out[0:3])
	phi.Store(out[3:6])
}

// inv: (−R*t, q*).
func (se3Family) inv(g, out []float64) {
	t, q := se3Split(g)
	rotateInv(q, t).Neg().Store(out[0:3])
	storeQuat(quat.Conj(q), out[3:7])
}

func (se3Family) mul(g, h, out []float64) {
	t1, q1 := se3Split(g)
	t2, q2 := se3Split(h)
	t1.Add(rotate(q1, t2)).Store(out[0:3])
	storeQuat(quat.Mul(q1, q2), out[3:7])
}

// act: R·p + t·w, with w = 1 for 3-vectors.
func (se3Family) act(g, pt, out []float64) {
	t, q := se3Split(g)
	w := 1.0
	if len(pt) == 4 {
		w = pt[3]
		out[3] = w
	}
	rotate(q, matrix.Vec3From(pt)).Add(t.Scale(w)).Store(out)
}

// adj: τ' = R·τ + t×(R·φ), φ' = R·φ.
func (se3Family) adj(g, a, out []float64) {
	t, q := se3Split(g)
	rphi := rotate(q, matrix.Vec3From(a[3:6]))
	rotate(q, matrix.Vec3From(a[0:3])).Add(t.Cross(rphi)).Store(out[0:3])
	rphi.Store(out[3:6])
}

// adjT: τ' = Rᵀ·τ, φ' = Rᵀ·(φ − t×τ).
func (se3Family) adjT(g, a, out []float64) {
	t, q := se3Split(g)
	tau := matrix.Vec3From(a[0:3])
	rotateInv(q, tau).Store(out[0:3])
	rotateInv(q, matrix.Vec3From(a[3:6]).Sub(t.Cross(tau))).Store(out[3:6])
}

// jinvp applies [[J⁻¹, −J⁻¹QJ⁻¹], [0, J⁻¹]] built at Log(g).
func (se3Family) jinvp(eps float64, g, p, out []float64) {
	t, q := se3Split(g)
	tau, phi := se3Log(eps, t, q)
	jinv := leftJacobianInv(eps, phi)
	pt, pr := matrix.Vec3From(p[0:3]), matrix.Vec3From(p[3:6])

	jpr := jinv.MulVec(pr)
	coupling := jinv.MulVec(se3Q(eps, tau, phi).MulVec(jpr))
	jinv.MulVec(pt).Sub(coupling).Store(out[0:3])
	jpr.Store(out[3:6])
}

func (se3Family) matrixDim() int { return 4 }

func (se3Family) matrix(g, out []float64) {
	t, q := se3Split(g)
	homogeneous(rotationMatrix(q), t, out)
}

// expandSigma: [σ] | [σt, σd] | [σtx, σty, σtz, σd] → per-component std.
func (se3Family) expandSigma(sigma []float64) []float64 {
	var tx, ty, tz, d float64
	switch len(sigma) {
	case 1:
		tx, ty, tz, d = sigma[0], sigma[0], sigma[0], sigma[0]
	case 2:
		tx, ty, tz, d = sigma[0], sigma[0], sigma[0], sigma[1]
	default:
		tx, ty, tz, d = sigma[0], sigma[1], sigma[2], sigma[3]
	}
	r := d * rotationStdScale

	return []float64{tx, ty, tz, r, r, r}
}

// homogeneous writes [[m, t], [0, 1]] row-major into out (len 16).
func homogeneous(m matrix.Mat3, t matrix.Vec3, out []float64) {
	for i := 0; i < 3; i++ {
		copy(out[4*i:4*i+3], m[i][:])
		out[4*i+3] = t[i]
	}
	out[12], out[13], out[14], out[15] = 0, 0, 0, 1
}
