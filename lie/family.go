// SPDX-License-Identifier: MIT

// Package lie - per-family kernel capability set.
//
// Purpose:
//   - One stateless implementation per family (SO3, SE3, RxSO3, Sim3) shared
//     by the group kind and its algebra kind.
//   - Kernels operate on single rows: read-only inputs, a caller-owned output
//     row of the correct width. No allocation beyond fixed-size values, no
//     validation (operations validate at entry), no logging.
//
// AI-Hints:
//   - eps is passed explicitly; kernels never read package state.

package lie

// family is the kernel set of one group/algebra pair.
// Row widths: x, a, p are algebra rows; g, h are group rows; pt is a point
// row of width 3 or 4; out has the width of the result kind.
type family interface {
	exp(eps float64, x, out []float64)
	log(eps float64, g, out []float64)
	inv(g, out []float64)
	mul(g, h, out []float64)
	act(g, pt, out []float64)
	adj(g, a, out []float64)
	adjT(g, a, out []float64)
	jinvp(eps float64, g, p, out []float64)

	// matrixDim is the side of the square matrix form (3 or 4).
	matrixDim() int
	// matrix writes the row-major matrix form of g into out (len matrixDim²).
	matrix(g, out []float64)

	// expandSigma broadcasts an accepted sigma to per-component std devs
	// in algebra order (translation per axis, rotation, scale).
	expandSigma(sigma []float64) []float64
}
