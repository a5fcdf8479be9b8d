// SPDX-License-Identifier: MIT

// Package lie - Jacobian products.

package lie

import (
	"github.com/katalvlaran/lietensor/matrix"
	"github.com/katalvlaran/lietensor/tensor"
)

// Jinvp returns J⁻¹(Log x)·p, the inverse left Jacobian of x applied to the
// tangent vector p, without materialising the Jacobian.
//
// Implementation:
//   - SO3: (I − ½Φ + coef·Φ²)·p.
//   - SE3: [[J⁻¹, −J⁻¹QJ⁻¹], [0, J⁻¹]]·p.
//   - RxSO3: diag(J⁻¹, 1)·p.
//   - Sim3: (I − ½ad + ad²/12 − ad⁴/720)·p by repeated 7×7 products.
//
// Inputs:
//   - x: group tensor; p: tensor of x's paired algebra, same batch shape.
//
// Errors:
//   - ErrKindMismatch when p's kind is not x's paired algebra.
//   - ErrNilTensor, ErrShape, ErrUnsupported.
//
// AI-Hints:
//   - Log(Exp(δ)·x) ≈ Log(x) + Jinvp(x, δ) for small δ.
func (e *Engine) Jinvp(x, p *Tensor) (*Tensor, error) {
	eps := e.opts.eps
	return e.groupAlgebra(OpJinvp, x, p, Kind.Pair, func(f family, g, v, out []float64) { f.jinvp(eps, g, v, out) })
}

// Jr returns the so3 right Jacobian Jr(φ) = I − a·Φ + b·Φ² as a
// (batch..., 3, 3) array.
//
// Errors: ErrNilTensor, ErrShape, ErrUnsupported (any kind but so3).
func (e *Engine) Jr(x *Tensor) (*tensor.Dense, error) {
	if err := validateUnary(OpJr, x); err != nil {
		return nil, e.reject(OpJr, err)
	}
	eps := e.opts.eps

	return e.squareBlocks(x, 3, func(in, out []float64) {
		jr := rightJacobian(eps, matrix.Vec3From(in))
		for r := 0; r < 3; r++ {
			copy(out[3*r:3*r+3], jr[r][:])
		}
	}), nil
}
