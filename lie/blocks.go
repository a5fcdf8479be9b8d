// SPDX-License-Identifier: MIT

// Package lie - block accessors of group tensors.

package lie

import (
	"fmt"

	"github.com/katalvlaran/lietensor/tensor"
)

// layout locates the blocks of a group row; -1 marks an absent block.
type layout struct{ trans, quat, scale int }

func (k Kind) layout() (layout, error) {
	switch k {
	case SO3:
		return layout{trans: -1, quat: 0, scale: -1}, nil
	case SE3:
		return layout{trans: 0, quat: 3, scale: -1}, nil
	case RxSO3:
		return layout{trans: -1, quat: 0, scale: 4}, nil
	case Sim3:
		return layout{trans: 0, quat: 3, scale: 7}, nil
	default:
		return layout{}, fmt.Errorf("%w: %s has no group layout", ErrUnsupported, k)
	}
}

// Translation returns the (batch..., 3) translation block; zeros for SO3 and RxSO3.
// Errors: ErrNilTensor, ErrUnsupported (algebra kinds).
func (x *Tensor) Translation() (*tensor.Dense, error) {
	return x.block("Translation", 3, func(l layout, in, out []float64) {
		if l.trans >= 0 {
			copy(out, in[l.trans:l.trans+3])
		}
	})
}

// Rotation returns the quaternion block as an SO3 tensor.
// Errors: ErrNilTensor, ErrUnsupported (algebra kinds).
func (x *Tensor) Rotation() (*Tensor, error) {
	d, err := x.block("Rotation", 4, func(l layout, in, out []float64) {
		copy(out, in[l.quat:l.quat+4])
	})
	if err != nil {
		return nil, err
	}

	return wrap(SO3, d), nil
}

// Scale returns the (batch..., 1) scale block; ones for SO3 and SE3.
// Errors: ErrNilTensor, ErrUnsupported (algebra kinds).
func (x *Tensor) Scale() (*tensor.Dense, error) {
	return x.block("Scale", 1, func(l layout, in, out []float64) {
		out[0] = 1
		if l.scale >= 0 {
			out[0] = in[l.scale]
		}
	})
}

// block copies one sub-block of every row into a fresh (batch..., w) array.
func (x *Tensor) block(op string, w int, pick func(l layout, in, out []float64)) (*tensor.Dense, error) {
	if err := validateTensor(x); err != nil {
		return nil, lieErrorf(op, err)
	}
	l, err := x.kind.layout()
	if err != nil {
		return nil, lieErrorf(op, err)
	}
	out := alloc(x.BatchShape(), w)
	for i := 0; i < x.Len(); i++ {
		pick(l, x.row(i), out.Row(i))
	}

	return out, nil
}
