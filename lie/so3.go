// SPDX-License-Identifier: MIT

// Package lie - SO3 / so3 kernels.
//
// Layout:
//   - SO3: [qx, qy, qz, qw] unit quaternion.
//   - so3: [φx, φy, φz] rotation vector, θ = ‖φ‖.
//
// Numeric policy:
//   - Every division by θ or ‖ν‖ sits behind an eps guard; below it the
//     Taylor expansions listed next to each coefficient are used.
//   - (1 − cos θ) is evaluated as 2·sin²(θ/2) to keep precision near eps.

package lie

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/lietensor/matrix"
)

// rotationStdScale converts an expected geodesic distance into the std of
// each rotation-vector component: σr = 2σd/√3.
var rotationStdScale = 2 / math.Sqrt(3)

type so3Family struct{}

var _ family = so3Family{}

// so3Exp maps a rotation vector to a unit quaternion.
//
//	θ > eps: v = φ·sin(θ/2)/θ,           w = cos(θ/2)
//	else:    v = φ·(½ − θ²/48 + θ⁴/3840), w = 1 − θ²/8 + θ⁴/384
func so3Exp(eps float64, phi matrix.Vec3) quat.Number {
	theta := phi.Norm()
	var im, re float64
	if theta > eps {
		half := 0.5 * theta
		im, re = math.Sin(half)/theta, math.Cos(half)
	} else {
		t2 := theta * theta
		t4 := t2 * t2
		im = 0.5 - t2/48 + t4/3840
		re = 1 - t2/8 + t4/384
	}

	return quatFrom(phi.Scale(im), re)
}

// so3Log maps a unit quaternion to its rotation vector in the principal
// domain ‖φ‖ ≤ π. q and −q are the same rotation, so q is first flipped to
// w ≥ 0 (−0 is kept, giving sign(−0) = −1 below).
//
//	‖ν‖ > eps, w > eps: 2·atan2(‖ν‖, w)/‖ν‖ · ν
//	‖ν‖ > eps, w ≤ eps: sign(w)·π/‖ν‖ · ν   (sign(+0) = +1)
//	‖ν‖ ≤ eps:          2·(1/w − ‖ν‖²/(3w³)) · ν
func so3Log(eps float64, q quat.Number) matrix.Vec3 {
	nu, w := quatVec(q), q.Real
	if w < 0 {
		nu, w = nu.Neg(), -w
	}
	n := nu.Norm()
	var f float64
	switch {
	case n > eps && w > eps:
		f = 2 * math.Atan2(n, w) / n
	case n > eps:
		f = math.Copysign(math.Pi, w) / n
	default:
		f = 2 * (1/w - n*n/(3*w*w*w))
	}

	return nu.Scale(f)
}

// so3JacobianCoeffs returns (a, b) of J = I + a·Φ + b·Φ².
//
//	a = (1 − cos θ)/θ²   (½ − θ²/24)
//	b = (θ − sin θ)/θ³   (1/6 − θ²/120)
func so3JacobianCoeffs(eps, theta float64) (a, b float64) {
	if theta > eps {
		s := math.Sin(0.5 * theta)
		t2 := theta * theta
		return 2 * s * s / t2, (theta - math.Sin(theta)) / (t2 * theta)
	}
	t2 := theta * theta

	return 0.5 - t2/24, 1.0/6 - t2/120
}

// leftJacobian returns the SO3 left Jacobian J(φ).
func leftJacobian(eps float64, phi matrix.Vec3) matrix.Mat3 {
	a, b := so3JacobianCoeffs(eps, phi.Norm())
	return matrix.SkewPoly(phi, a, b, 1)
}

// rightJacobian returns Jr(φ) = J(−φ) = I − a·Φ + b·Φ².
func rightJacobian(eps float64, phi matrix.Vec3) matrix.Mat3 {
	a, b := so3JacobianCoeffs(eps, phi.Norm())
	return matrix.SkewPoly(phi, -a, b, 1)
}

// leftJacobianInv returns J⁻¹(φ) = I − ½Φ + coef·Φ².
//
//	coef = 1/θ² − cos(θ/2)/(2θ·sin(θ/2))   (1/12 + θ²/720)
func leftJacobianInv(eps float64, phi matrix.Vec3) matrix.Mat3 {
	theta := phi.Norm()
	var coef float64
	if theta > eps {
		half := 0.5 * theta
		coef = 1/(theta*theta) - math.Cos(half)/(2*theta*math.Sin(half))
	} else {
		coef = 1.0/12 + theta*theta/720
	}

	return matrix.SkewPoly(phi, -0.5, coef, 1)
}

func (so3Family) exp(eps float64, x, out []float64) {
	storeQuat(so3Exp(eps, matrix.Vec3From(x)), out)
}

func (so3Family) log(eps float64, g, out []float64) {
	so3Log(eps, loadQuat(g)).Store(out)
}

func (so3Family) inv(g, out []float64) { storeQuat(quat.Conj(loadQuat(g)), out) }

func (so3Family) mul(g, h, out []float64) {
	storeQuat(quat.Mul(loadQuat(g), loadQuat(h)), out)
}

func (so3Family) act(g, pt, out []float64) {
	rotate(loadQuat(g), matrix.Vec3From(pt)).Store(out)
	copy(out[3:], pt[3:]) // homogeneous w passes through
}

func (so3Family) adj(g, a, out []float64) {
	rotate(loadQuat(g), matrix.Vec3From(a)).Store(out)
}

func (so3Family) adjT(g, a, out []float64) {
	rotateInv(loadQuat(g), matrix.Vec3From(a)).Store(out)
}

func (so3Family) jinvp(eps float64, g, p, out []float64) {
	phi := so3Log(eps, loadQuat(g))
	leftJacobianInv(eps, phi).MulVec(matrix.Vec3From(p)).Store(out)
}

func (so3Family) matrixDim() int { return 3 }

func (so3Family) matrix(g, out []float64) {
	r := rotationMatrix(loadQuat(g))
	for i := 0; i < 3; i++ {
		copy(out[3*i:3*i+3], r[i][:])
	}
}

// expandSigma: [σd] → [σr, σr, σr].
func (so3Family) expandSigma(sigma []float64) []float64 {
	r := sigma[0] * rotationStdScale
	return []float64{r, r, r}
}

