// SPDX-License-Identifier: MIT

// Package lie - group operations: Inv, Mul, Act, Adj, AdjT, Retr.
//
// Every operation requires exact kind compatibility and equal batch shapes;
// nothing is broadcast or coerced.

package lie

import "github.com/katalvlaran/lietensor/tensor"

// maxGroupWidth bounds per-row scratch buffers (Sim3).
const maxGroupWidth = 8

// Inv returns the group inverse of every element.
//
//	SO3: q*   SE3: (−R*t, q*)   RxSO3: (q*, 1/s)   Sim3: (−R*t/s, q*, 1/s)
//
// Errors: ErrNilTensor, ErrShape, ErrUnsupported (algebra kinds).
func (e *Engine) Inv(x *Tensor) (*Tensor, error) {
	return e.unary(OpInv, x, sameKind, func(f family, in, out []float64) { f.inv(in, out) })
}

// Mul composes x·y element by element.
//
// Errors:
//   - ErrKindMismatch when x and y carry different group kinds.
//   - ErrShape when batch shapes differ.
//   - ErrNilTensor, ErrUnsupported (algebra kinds).
func (e *Engine) Mul(x, y *Tensor) (*Tensor, error) {
	if err := validateSameGroup(OpMul, x, y); err != nil {
		return nil, e.reject(OpMul, err)
	}
	fam := x.kind.family()
	out := alloc(x.BatchShape(), x.kind.Width())
	e.mapRows(x.Len(), func(i int) { fam.mul(x.row(i), y.row(i), out.Row(i)) })

	return wrap(x.kind, out), nil
}

// Act applies every group element to its point.
//
// Inputs:
//   - x: group tensor (batch..., width).
//   - p: points (batch..., 3) or homogeneous points (batch..., 4).
//
// Returns:
//   - *tensor.Dense with p's shape. For homogeneous points the translation is
//     scaled by w and w is copied through.
//
// Errors: ErrNilTensor, ErrShape, ErrUnsupported.
func (e *Engine) Act(x *Tensor, p *tensor.Dense) (*tensor.Dense, error) {
	if err := validateUnary(OpAct, x); err != nil {
		return nil, e.reject(OpAct, err)
	}
	if err := validatePoints(x, p); err != nil {
		return nil, e.reject(OpAct, err)
	}
	fam := x.kind.family()
	out := alloc(x.BatchShape(), p.Width())
	e.mapRows(x.Len(), func(i int) { fam.act(x.row(i), p.Row(i), out.Row(i)) })

	return out, nil
}

// Adj transports tangent vectors a through the adjoint of x: Adj(x)·a.
// a must carry the algebra paired with x's group.
//
// Errors: ErrNilTensor, ErrShape, ErrKindMismatch, ErrUnsupported.
func (e *Engine) Adj(x, a *Tensor) (*Tensor, error) {
	return e.groupAlgebra(OpAdj, x, a, Kind.Pair, func(f family, g, v, out []float64) { f.adj(g, v, out) })
}

// AdjT applies the adjoint transpose: Adj(x)ᵀ·a.
//
// Errors: ErrNilTensor, ErrShape, ErrKindMismatch, ErrUnsupported.
func (e *Engine) AdjT(x, a *Tensor) (*Tensor, error) {
	return e.groupAlgebra(OpAdjT, x, a, Kind.Pair, func(f family, g, v, out []float64) { f.adjT(g, v, out) })
}

// Retr returns Mul(x, Exp(a)), the local-chart update of x by a.
// Retr(x, 0) == x exactly: Exp(0) is the exact identity and the group laws
// only add zeros or multiply by one.
//
// Errors: ErrNilTensor, ErrShape, ErrKindMismatch, ErrUnsupported.
func (e *Engine) Retr(x, a *Tensor) (*Tensor, error) {
	eps := e.opts.eps
	return e.groupAlgebra(OpRetr, x, a, sameKind, func(f family, g, v, out []float64) {
		var buf [maxGroupWidth]float64
		h := buf[:len(g)]
		f.exp(eps, v, h)
		f.mul(g, h, out)
	})
}
