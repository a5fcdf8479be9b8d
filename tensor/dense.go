// SPDX-License-Identifier: MIT

// Package tensor - Dense storage (row-major, arbitrary rank).
//
// Purpose:
//   - Flat buffer with explicit shape; element (i0,...,ik) lives at the
//     row-major offset Σ i_d * stride_d.
//   - Safe public surface: constructors and At return errors instead of panicking.
//   - Row(i) exposes the i-th trailing-dimension row for kernels that fill
//     freshly allocated outputs.
//
// Complexity quicksheet:
//   - New: O(size) zero-init; At: O(rank); Row: O(1); Clone: O(size).

package tensor

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
)

const (
	opNew      = "New"
	opFrom     = "FromSlice"
	opAt       = "At"
	opReshape  = "Reshape"
	opAllClose = "AllClose"
)

// Dense is a row-major N-dimensional float64 array.
type Dense struct {
	shape []int     // rank >= 1, every dim >= 0
	data  []float64 // len == Numel(shape)
}

// Numel returns the product of the dimensions (1 for an empty shape).
func Numel(shape []int) int {
	return lo.Reduce(shape, func(acc int, d int, _ int) int { return acc * d }, 1)
}

// SameShape reports whether a and b have identical rank and dimensions.
func SameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// validateShape checks rank >= 1 and non-negative dims.
func validateShape(shape []int) error {
	if len(shape) == 0 {
		return ErrBadShape
	}
	if lo.SomeBy(shape, func(d int) bool { return d < 0 }) {
		return ErrBadShape
	}

	return nil
}

// New allocates a zero tensor with the given shape.
// Errors: ErrBadShape for rank 0 or negative dims.
// Complexity: O(size).
func New(shape ...int) (*Dense, error) {
	if err := validateShape(shape); err != nil {
		return nil, tensorErrorf(opNew, err)
	}

	return &Dense{
		shape: append([]int(nil), shape...),
		data:  make([]float64, Numel(shape)),
	}, nil
}

// FromSlice copies values into a new tensor with the given shape.
// Errors: ErrBadShape, ErrSizeMismatch. The input slice is never aliased.
func FromSlice(values []float64, shape ...int) (*Dense, error) {
	if err := validateShape(shape); err != nil {
		return nil, tensorErrorf(opFrom, err)
	}
	if len(values) != Numel(shape) {
		return nil, tensorErrorf(opFrom, ErrSizeMismatch)
	}
	t := &Dense{shape: append([]int(nil), shape...), data: make([]float64, len(values))}
	copy(t.data, values)

	return t, nil
}

// Full returns a tensor of the given shape whose trailing rows all equal row.
// The trailing dimension is len(row). Useful for broadcasting identities.
func Full(row []float64, batch ...int) (*Dense, error) {
	shape := append(append([]int(nil), batch...), len(row))
	t, err := New(shape...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < t.Rows(); i++ {
		copy(t.Row(i), row)
	}

	return t, nil
}

// Shape returns a copy of the shape.
func (t *Dense) Shape() []int { return append([]int(nil), t.shape...) }

// Rank returns the number of dimensions.
func (t *Dense) Rank() int { return len(t.shape) }

// Size returns the total number of values.
func (t *Dense) Size() int { return len(t.data) }

// Width returns the trailing dimension.
func (t *Dense) Width() int { return t.shape[len(t.shape)-1] }

// BatchShape returns a copy of every dimension but the trailing one.
func (t *Dense) BatchShape() []int {
	out := make([]int, len(t.shape)-1)
	copy(out, t.shape)

	return out
}

// Rows returns the number of trailing-dimension rows (product of the batch shape).
func (t *Dense) Rows() int { return Numel(t.shape[:len(t.shape)-1]) }

// Row returns the i-th trailing row as a slice aliasing the tensor buffer.
// Kernels only write rows of tensors they allocated themselves.
// Panics on out-of-range i (internal hot path; callers iterate 0..Rows()-1).
func (t *Dense) Row(i int) []float64 {
	w := t.Width()
	return t.data[i*w : (i+1)*w : (i+1)*w]
}

// Data returns a copy of the flat buffer.
func (t *Dense) Data() []float64 {
	out := make([]float64, len(t.data))
	copy(out, t.data)

	return out
}

// Clone returns a deep copy.
func (t *Dense) Clone() *Dense {
	out := &Dense{shape: t.Shape(), data: make([]float64, len(t.data))}
	copy(out.data, t.data)

	return out
}

// At returns the value at the full multi-index idx.
// Errors: ErrOutOfRange when len(idx) != rank or any index is out of bounds.
func (t *Dense) At(idx ...int) (float64, error) {
	if len(idx) != len(t.shape) {
		return 0, tensorErrorf(opAt, ErrOutOfRange)
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= t.shape[d] {
			return 0, tensorErrorf(opAt, ErrOutOfRange)
		}
		off = off*t.shape[d] + i
	}

	return t.data[off], nil
}

// Reshape returns a copy of t with a new shape of identical size.
// Errors: ErrBadShape, ErrSizeMismatch.
func (t *Dense) Reshape(shape ...int) (*Dense, error) {
	if err := validateShape(shape); err != nil {
		return nil, tensorErrorf(opReshape, err)
	}
	if Numel(shape) != len(t.data) {
		return nil, tensorErrorf(opReshape, ErrSizeMismatch)
	}

	return FromSlice(t.data, shape...)
}

// AllClose reports whether t and o have the same shape and every pair of
// values differs by at most tol (absolute or relative, gonum floats.EqualApprox).
func (t *Dense) AllClose(o *Dense, tol float64) (bool, error) {
	if t == nil || o == nil {
		return false, tensorErrorf(opAllClose, ErrNilTensor)
	}
	if !SameShape(t.shape, o.shape) {
		return false, nil
	}

	return floats.EqualApprox(t.data, o.data, tol), nil
}

// String renders shape and values, e.g. "tensor(2,3)[1, 2, 3, 4, 5, 6]".
func (t *Dense) String() string {
	var sb strings.Builder
	sb.WriteString("tensor(")
	sb.WriteString(strings.Join(lo.Map(t.shape, func(d int, _ int) string { return strconv.Itoa(d) }), ","))
	sb.WriteString(")[")
	for i, v := range t.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteString("]")

	return sb.String()
}
