// SPDX-License-Identifier: MIT

// Package lie - Exp and Log.

package lie

// Exp maps an algebra tensor to its paired group, element by element.
//
// Inputs:
//   - x: so3, se3, rxso3 or sim3 tensor of shape (batch..., width).
//
// Returns:
//   - *Tensor: paired group kind, same batch shape.
//
// Errors:
//   - ErrNilTensor, ErrShape, ErrUnsupported (x is a group kind).
//
// Complexity:
//   - Time O(n) closed-form kernels, Space O(n).
func (e *Engine) Exp(x *Tensor) (*Tensor, error) {
	eps := e.opts.eps
	return e.unary(OpExp, x, Kind.Pair, func(f family, in, out []float64) { f.exp(eps, in, out) })
}

// Log maps a group tensor to its paired algebra; the inverse of Exp on the
// principal domain (rotation angle in [0, π]).
//
// Errors:
//   - ErrNilTensor, ErrShape, ErrUnsupported (x is an algebra kind).
//
// Notes:
//   - Non-unit quaternions and non-positive scales are outside the domain;
//     results for them are unspecified and no error is raised.
func (e *Engine) Log(x *Tensor) (*Tensor, error) {
	eps := e.opts.eps
	return e.unary(OpLog, x, Kind.Pair, func(f family, in, out []float64) { f.log(eps, in, out) })
}
