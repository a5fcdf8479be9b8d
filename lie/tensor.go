// SPDX-License-Identifier: MIT

// Package lie - kind-tagged batched values.
//
// Purpose:
//   - Tensor pairs a tensor.Dense of shape (batch..., width) with a Kind.
//   - Construction validates the trailing width; the stored buffer is a
//     private copy, so callers can never mutate a value after the fact.
//   - Kernels read rows of their inputs and write rows of fresh outputs only.

package lie

import (
	"fmt"

	"github.com/katalvlaran/lietensor/tensor"
)

// Tensor is a batch of elements of one Lie group or algebra kind.
type Tensor struct {
	kind Kind
	data *tensor.Dense
}

// NewTensor tags a copy of data with kind.
// Errors: ErrNilTensor (nil data), ErrShape (trailing dim != kind width).
// Panics on an unknown Kind value.
func NewTensor(kind Kind, data *tensor.Dense) (*Tensor, error) {
	if data == nil {
		return nil, lieErrorf("NewTensor", ErrNilTensor)
	}
	if err := validateWidth(kind, data); err != nil {
		return nil, lieErrorf("NewTensor", err)
	}

	return &Tensor{kind: kind, data: data.Clone()}, nil
}

// FromSlice builds a Tensor of the given kind and batch shape from a flat
// row-major slice. An empty batch denotes a single element.
// Errors: ErrShape when len(values) != Numel(batch)*width or a batch dim is negative.
func FromSlice(kind Kind, values []float64, batch ...int) (*Tensor, error) {
	shape := append(append([]int(nil), batch...), kind.Width())
	d, err := tensor.FromSlice(values, shape...)
	if err != nil {
		return nil, lieErrorf("FromSlice", fmt.Errorf("%w: %w", ErrShape, err))
	}

	return &Tensor{kind: kind, data: d}, nil
}

// Identity returns the identity element of kind broadcast over batch
// (the zero vector for algebra kinds).
// Errors: ErrShape for negative batch dims.
func Identity(kind Kind, batch ...int) (*Tensor, error) {
	d, err := tensor.Full(kind.Identity(), batch...)
	if err != nil {
		return nil, lieErrorf("Identity", fmt.Errorf("%w: %w", ErrShape, err))
	}

	return &Tensor{kind: kind, data: d}, nil
}

// IdentityLike returns Identity(x.Kind(), x.BatchShape()...).
func IdentityLike(x *Tensor) (*Tensor, error) {
	if x == nil {
		return nil, lieErrorf("IdentityLike", ErrNilTensor)
	}

	return Identity(x.kind, x.BatchShape()...)
}

// Kind returns the tag.
func (x *Tensor) Kind() Kind { return x.kind }

// Shape returns a copy of (batch..., width).
func (x *Tensor) Shape() []int { return x.data.Shape() }

// BatchShape returns a copy of the batch dimensions (empty for a single element).
func (x *Tensor) BatchShape() []int { return x.data.BatchShape() }

// Len returns the number of elements in the batch.
func (x *Tensor) Len() int { return x.data.Rows() }

// Data returns a copy of the flat row-major buffer.
func (x *Tensor) Data() []float64 { return x.data.Data() }

// Dense returns a copy of the underlying array.
func (x *Tensor) Dense() *tensor.Dense { return x.data.Clone() }

// Element returns a copy of the i-th batch element.
// Errors: ErrShape when i is out of range.
func (x *Tensor) Element(i int) ([]float64, error) {
	if i < 0 || i >= x.Len() {
		return nil, lieErrorf("Element", fmt.Errorf("%w: index %d of %d", ErrShape, i, x.Len()))
	}

	return append([]float64(nil), x.row(i)...), nil
}

// row aliases the i-th element; internal read path for kernels.
func (x *Tensor) row(i int) []float64 { return x.data.Row(i) }

// String renders kind and values, e.g. "SO3 tensor(4)[0, 0, 0, 1]".
func (x *Tensor) String() string { return x.kind.String() + " " + x.data.String() }

// wrap tags a freshly allocated array without copying it.
func wrap(kind Kind, d *tensor.Dense) *Tensor { return &Tensor{kind: kind, data: d} }
