// SPDX-License-Identifier: MIT

// Package lie - Sim3 / sim3 kernels (similarity transforms).
//
// Layout:
//   - Sim3: [tx, ty, tz, qx, qy, qz, qw, s], s > 0.
//   - sim3: [τx, τy, τz, φx, φy, φz, σ], s = e^σ.
//
// The translation block of Exp/Log goes through sW = A·Φ + B·Φ² + C·I and its
// closed-form inverse; A, B, C branch on |σ| and θ against eps.
// Jinvp has no closed form: the Bernoulli series of the 7×7 algebra adjoint
// is applied to p by repeated adjoint action. Far from the identity
// (hypot(σ, θ) ≥ π/2) the Jl series is summed and inverted instead.

package lie

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/lietensor/matrix"
)

const (
	// sim3AdDim is the dimension of the sim3 algebra.
	sim3AdDim = 7
	// sim3SeriesRadius bounds hypot(σ, θ) for the Bernoulli series of J⁻¹;
	// there its k-th term shrinks like 4⁻²ᵏ.
	sim3SeriesRadius = math.Pi / 2
	// sim3JlMaxOrder caps the order of the Jl series.
	sim3JlMaxOrder = 64
)

// bernoulli1 is B₁ of J⁻¹ = Σ Bₙ/n!·adⁿ; odd Bₙ vanish beyond it.
const bernoulli1 = -1.0 / 2

// bernoulliEven holds B₂ₖ/(2k)! for k = 1..10. The series converges while
// every eigenvalue of ad(ξ) (0, ±iθ, σ, σ ± iθ) stays inside |z| < 2π.
var bernoulliEven = [...]float64{
	1.0 / 12,
	-1.0 / 720,
	1.0 / 30240,
	-1.0 / 1209600,
	1.0 / 47900160,
	-691.0 / 1307674368000,
	1.0 / 74724249600,
	-3617.0 / 10670622842880000,
	43867.0 / 5109094217170944000,
	-174611.0 / 802857662698291200000,
}

type sim3Family struct{}

var _ family = sim3Family{}

// sim3Split reads (t, q, s) from a group row.
func sim3Split(g []float64) (matrix.Vec3, quat.Number, float64) {
	return matrix.Vec3From(g[0:3]), loadQuat(g[3:7]), g[7]
}

// sim3WCoeffs returns (A, B, C) of sW = A·Φ + B·Φ² + C·I, s = e^σ.
//
// Implementation:
//   - |σ| ≥ eps: C = (s − 1)/σ (via Expm1).
//     θ ≥ eps: A = (s·sinθ·σ + (1 − s·cosθ)·θ) / (θ(σ² + θ²)),
//     B = (C − ((s·cosθ − 1)·σ + s·sinθ·θ)/(θ² + σ²)) / θ².
//     θ < eps: A = ((σ − 1)·s + 1)/σ², B = (s·σ²/2 + s − 1 − σ·s)/σ³.
//   - |σ| < eps: the θ-only forms plus their first-order σ terms,
//     C = 1 + σ/2 + σ²/6.
//     θ ≥ eps: A = (1 − cosθ)/θ² + σ·(sinθ − θcosθ)/θ³,
//     B = (θ − sinθ)/θ³ + σ·(½ − sinθ/θ + (1 − cosθ)/θ²)/θ².
//     θ < eps: A = ½ + σ/3, B = 1/6 + σ/8.
//
// Notes:
//   - 1 − s·cosθ is evaluated as 2sin²(θ/2) − (s − 1)·cosθ and s − 1 as Expm1(σ).
//   - With the σ terms the |σ| = eps boundary is continuous to O(eps²).
func sim3WCoeffs(eps, theta, sigma float64) (A, B, C float64) {
	t2 := theta * theta
	if math.Abs(sigma) < eps {
		C = 1 + sigma/2 + sigma*sigma/6
		if theta < eps {
			return 0.5 + sigma/3, 1.0/6 + sigma/8, C
		}
		sinT, cosT := math.Sincos(theta)
		h := math.Sin(0.5 * theta)
		oneMinusCos := 2 * h * h
		A = oneMinusCos/t2 + sigma*(sinT-theta*cosT)/(t2*theta)
		B = (theta-sinT)/(t2*theta) + sigma*(0.5-sinT/theta+oneMinusCos/t2)/t2
		return A, B, C
	}

	sm1 := math.Expm1(sigma)
	s := 1 + sm1
	C = sm1 / sigma
	if theta < eps {
		s2 := sigma * sigma
		A = (sigma*s - sm1) / s2
		B = (s*s2/2 + sm1 - sigma*s) / (s2 * sigma)
		return A, B, C
	}

	sinT, cosT := math.Sincos(theta)
	h := math.Sin(0.5 * theta)
	oneMinusSCos := 2*h*h - sm1*cosT
	den := t2 + sigma*sigma
	A = (s*sinT*sigma + oneMinusSCos*theta) / (theta * den)
	B = (C - (-oneMinusSCos*sigma+s*sinT*theta)/den) / t2

	return A, B, C
}

// sim3WInvCoeffs returns (a, b, c) with sW⁻¹ = a·Φ + b·Φ² + c·I.
//
// Using Φ³ = −θ²Φ, (AΦ + BΦ² + CI)(aΦ + bΦ² + cI) = I solves to
//
//	c = 1/C, a = −A/D, b = (A² − B·P)/(C·D), P = C − B·θ², D = P² + A²·θ².
//
// No θ appears in a denominator, so the eps branching of (A, B, C) carries over.
func sim3WInvCoeffs(theta, A, B, C float64) (a, b, c float64) {
	t2 := theta * theta
	P := C - B*t2
	D := P*P + A*A*t2

	return -A / D, (A*A - B*P) / (C * D), 1 / C
}

func (sim3Family) exp(eps float64, x, out []float64) {
	tau, phi, sigma := matrix.Vec3From(x[0:3]), matrix.Vec3From(x[3:6]), x[6]
	A, B, C := sim3WCoeffs(eps, phi.Norm(), sigma)
	matrix.SkewPoly(phi, A, B, C).MulVec(tau).Store(out[0:3])
	storeQuat(so3Exp(eps, phi), out[3:7])
	out[7] = math.Exp(sigma)
}

// sim3Log writes (τ, φ, σ) of g into out (len 7).
func sim3Log(eps float64, g, out []float64) {
	t, q, s := sim3Split(g)
	phi := so3Log(eps, q)
	sigma := math.Log(s)
	theta := phi.Norm()
	A, B, C := sim3WCoeffs(eps, theta, sigma)
	a, b, c := sim3WInvCoeffs(theta, A, B, C)
	matrix.SkewPoly(phi, a, b, c).MulVec(t).Store(out[0:3])
	phi.Store(out[3:6])
	out[6] = sigma
}

func (sim3Family) log(eps float64, g, out []float64) { sim3Log(eps, g, out) }

// inv: (−(1/s)·R*t, q*, 1/s).
func (sim3Family) inv(g, out []float64) {
	t, q, s := sim3Split(g)
	rotateInv(q, t).Scale(-1 / s).Store(out[0:3])
	storeQuat(quat.Conj(q), out[3:7])
	out[7] = 1 / s
}

// mul: (t1 + s1·R1·t2, q1·q2, s1·s2).
func (sim3Family) mul(g, h, out []float64) {
	t1, q1, s1 := sim3Split(g)
	t2, q2, s2 := sim3Split(h)
	t1.Add(rotate(q1, t2).Scale(s1)).Store(out[0:3])
	storeQuat(quat.Mul(q1, q2), out[3:7])
	out[7] = s1 * s2
}

// act: s·R·p + t·w, with w = 1 for 3-vectors.
func (sim3Family) act(g, pt, out []float64) {
	t, q, s := sim3Split(g)
	w := 1.0
	if len(pt) == 4 {
		w = pt[3]
		out[3] = w
	}
	rotate(q, matrix.Vec3From(pt)).Scale(s).Add(t.Scale(w)).Store(out)
}

// adj: τ' = s·R·τ + t×(R·φ) − σ·t, φ' = R·φ, σ' = σ.
func (sim3Family) adj(g, a, out []float64) {
	t, q, s := sim3Split(g)
	sigma := a[6]
	rphi := rotate(q, matrix.Vec3From(a[3:6]))
	rotate(q, matrix.Vec3From(a[0:3])).Scale(s).Add(t.Cross(rphi)).Sub(t.Scale(sigma)).Store(out[0:3])
	rphi.Store(out[3:6])
	out[6] = sigma
}

// adjT: τ' = s·Rᵀ·τ, φ' = Rᵀ·(φ − t×τ), σ' = σ − t·τ.
func (sim3Family) adjT(g, a, out []float64) {
	t, q, s := sim3Split(g)
	tau := matrix.Vec3From(a[0:3])
	rotateInv(q, tau).Scale(s).Store(out[0:3])
	rotateInv(q, matrix.Vec3From(a[3:6]).Sub(t.Cross(tau))).Store(out[3:6])
	out[6] = a[6] - t.Dot(tau)
}

// sim3Ad returns the 7×7 algebra adjoint ad(ξ), ξ = (τ, φ, σ):
//
//	[ Φ + σI   T   −τ ]
//	[   0      Φ    0 ]
//	[   0      0    0 ]
func sim3Ad(xi []float64) (*matrix.Dense, error) {
	tau, phi, sigma := matrix.Vec3From(xi[0:3]), matrix.Vec3From(xi[3:6]), xi[6]
	ad, err := matrix.NewDense(sim3AdDim, sim3AdDim)
	if err != nil {
		return nil, err
	}
	if err = ad.SetBlock(0, 0, matrix.SkewPoly(phi, 1, 0, sigma)); err != nil {
		return nil, err
	}
	if err = ad.SetBlock(0, 3, matrix.Skew(tau)); err != nil {
		return nil, err
	}
	if err = ad.SetBlock(3, 3, matrix.Skew(phi)); err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		if err = ad.Set(i, 6, -tau[i]); err != nil {
			return nil, err
		}
	}

	return ad, nil
}

// sim3JinvSeries applies J⁻¹ = I + B₁·ad + Σₖ B₂ₖ/(2k)!·ad²ᵏ to p.
//
// Implementation:
//   - Stage 1: r = p + B₁·(ad·p), v = p.
//   - Stage 2: advance v ← ad·(ad·v) and add B₂ₖ/(2k)!·v to r until the
//     added term's largest entry is at most eps²·max|r| or the table is
//     exhausted. ad is only ever applied to a vector.
//
// Complexity: O(K·7²), K ≤ len(bernoulliEven).
func sim3JinvSeries(eps float64, ad *matrix.Dense, p []float64) ([]float64, error) {
	v, err := matrix.MatVec(ad, p)
	if err != nil {
		return nil, err
	}
	res := append([]float64(nil), p...)
	floats.AddScaled(res, bernoulli1, v)

	term := make([]float64, len(p))
	copy(v, p)
	for _, wgt := range bernoulliEven {
		if v, err = matrix.MatVec(ad, v); err != nil {
			return nil, err
		}
		if v, err = matrix.MatVec(ad, v); err != nil {
			return nil, err
		}
		floats.ScaleTo(term, wgt, v)
		floats.Add(res, term)
		if floats.Norm(term, math.Inf(1)) <= eps*eps*floats.Norm(res, math.Inf(1)) {
			break
		}
	}

	return res, nil
}

// sim3JlSeries returns Jl = Σ adⁿ/(n+1)!, which converges for every ξ.
// Terms are added until the last one is at most eps²·max|Jl| or the order
// reaches sim3JlMaxOrder.
func sim3JlSeries(eps float64, ad *matrix.Dense) (matrix.Matrix, error) {
	id, err := matrix.NewIdentity(sim3AdDim)
	if err != nil {
		return nil, err
	}
	var J, pow matrix.Matrix = id, id
	var tm, jm float64
	for n := 1; n <= sim3JlMaxOrder; n++ {
		if pow, err = matrix.Mul(pow, ad); err != nil {
			return nil, err
		}
		if pow, err = matrix.Scale(pow, 1/float64(n+1)); err != nil {
			return nil, err
		}
		if J, err = matrix.Add(J, pow); err != nil {
			return nil, err
		}
		if tm, err = matrix.MaxAbs(pow); err != nil {
			return nil, err
		}
		if jm, err = matrix.MaxAbs(J); err != nil {
			return nil, err
		}
		if tm <= eps*eps*jm {
			break
		}
	}

	return J, nil
}

// sim3Jinvp returns J⁻¹(ξ)·p. Inside hypot(σ, θ) < sim3SeriesRadius the
// Bernoulli series is applied to p directly; beyond it (where that series
// slows down and, past 2π, diverges) the everywhere-convergent Jl is
// inverted by LU and applied. θ ≤ π keeps Jl regular.
func sim3Jinvp(eps float64, xi, p []float64) ([]float64, error) {
	ad, err := sim3Ad(xi)
	if err != nil {
		return nil, err
	}
	theta := matrix.Vec3From(xi[3:6]).Norm()
	if math.Hypot(xi[6], theta) < sim3SeriesRadius {
		return sim3JinvSeries(eps, ad, p)
	}
	jl, err := sim3JlSeries(eps, ad)
	if err != nil {
		return nil, err
	}
	inv, err := matrix.Inverse(jl)
	if err != nil {
		return nil, err
	}

	return matrix.MatVec(inv, p)
}

func (sim3Family) jinvp(eps float64, g, p, out []float64) {
	var xi [sim3AdDim]float64
	sim3Log(eps, g, xi[:])
	res, err := sim3Jinvp(eps, xi[:], p)
	if err != nil {
		panic("lie: sim3 jacobian: " + err.Error()) // static 7×7 shapes, regular Jl
	}
	copy(out, res)
}

func (sim3Family) matrixDim() int { return 4 }

func (sim3Family) matrix(g, out []float64) {
	t, q, s := sim3Split(g)
	homogeneous(rotationMatrix(q).Scale(s), t, out)
}

// expandSigma: [σ] | [σt, σd, σs] | [σtx, σty, σtz, σd, σs] → per-component std.
func (sim3Family) expandSigma(sigma []float64) []float64 {
	var tx, ty, tz, d, s float64
	switch len(sigma) {
	case 1:
		tx, ty, tz, d, s = sigma[0], sigma[0], sigma[0], sigma[0], sigma[0]
	case 3:
		tx, ty, tz, d, s = sigma[0], sigma[0], sigma[0], sigma[1], sigma[2]
	default:
		tx, ty, tz, d, s = sigma[0], sigma[1], sigma[2], sigma[3], sigma[4]
	}
	r := d * rotationStdScale

	return []float64{tx, ty, tz, r, r, r, s}
}

