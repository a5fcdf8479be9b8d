// SPDX-License-Identifier: MIT

// Package lie - RxSO3 / rxso3 kernels (rotation with positive scale).
//
// Layout:
//   - RxSO3: [qx, qy, qz, qw, s], s > 0.
//   - rxso3: [φx, φy, φz, σ], s = e^σ.

package lie

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/lietensor/matrix"
)

type rxso3Family struct{}

var _ family = rxso3Family{}

func (rxso3Family) exp(eps float64, x, out []float64) {
	storeQuat(so3Exp(eps, matrix.Vec3From(x)), out[0:4])
	out[4] = math.Exp(x[3])
}

func (rxso3Family) log(eps float64, g, out []float64) {
	so3Log(eps, loadQuat(g)).Store(out[0:3])
	out[3] = math.Log(g[4])
}

func (rxso3Family) inv(g, out []float64) {
	storeQuat(quat.Conj(loadQuat(g)), out[0:4])
	out[4] = 1 / g[4]
}

func (rxso3Family) mul(g, h, out []float64) {
	storeQuat(quat.Mul(loadQuat(g), loadQuat(h)), out[0:4])
	out[4] = g[4] * h[4]
}

// act: s·R·p; a homogeneous w passes through.
func (rxso3Family) act(g, pt, out []float64) {
	rotate(loadQuat(g), matrix.Vec3From(pt)).Scale(g[4]).Store(out)
	copy(out[3:], pt[3:])
}

// adj: [R·φ, σ]; scale commutes with rotation.
func (rxso3Family) adj(g, a, out []float64) {
	rotate(loadQuat(g), matrix.Vec3From(a)).Store(out[0:3])
	out[3] = a[3]
}

func (rxso3Family) adjT(g, a, out []float64) {
	rotateInv(loadQuat(g), matrix.Vec3From(a)).Store(out[0:3])
	out[3] = a[3]
}

// jinvp: diag(J⁻¹(φ), 1).
func (rxso3Family) jinvp(eps float64, g, p, out []float64) {
	phi := so3Log(eps, loadQuat(g))
	leftJacobianInv(eps, phi).MulVec(matrix.Vec3From(p)).Store(out[0:3])
	out[3] = p[3]
}

func (rxso3Family) matrixDim() int { return 4 }

func (rxso3Family) matrix(g, out []float64) {
	homogeneous(rotationMatrix(loadQuat(g)).Scale(g[4]), matrix.Vec3{}, out)
}

// expandSigma: [σ] | [σd, σs] → [σr, σr, σr, σs].
func (rxso3Family) expandSigma(sigma []float64) []float64 {
	d, s := sigma[0], sigma[len(sigma)-1]
	r := d * rotationStdScale

	return []float64{r, r, r, s}
}

