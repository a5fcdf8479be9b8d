// SPDX-License-Identifier: MIT

// Package lie - operand validators.
//
// Purpose:
//   - Single source of truth for operand checks performed at every
//     operation entry: nil, width, kind legality, kind pairing, batch shape.
//   - Return plain sentinels (with detail) so operations wrap uniformly with lieErrorf.
//
// Note:
//   - Composite validators run in a fixed order: nil → width → kind → batch.

package lie

import (
	"fmt"

	"github.com/katalvlaran/lietensor/tensor"
)

// validateWidth checks that the trailing dimension equals the kind width.
func validateWidth(kind Kind, d *tensor.Dense) error {
	if d.Width() != kind.Width() {
		return fmt.Errorf("%w: %s expects trailing dim %d, got %d", ErrShape, kind, kind.Width(), d.Width())
	}

	return nil
}

// validateTensor checks nil and the stored width invariant.
func validateTensor(x *Tensor) error {
	if x == nil || x.data == nil {
		return ErrNilTensor
	}

	return validateWidth(x.kind, x.data)
}

// validateUnary checks a single operand for which op must be supported.
func validateUnary(op Op, x *Tensor) error {
	if err := validateTensor(x); err != nil {
		return err
	}
	if !x.kind.Supports(op) {
		return fmt.Errorf("%w: %s on %s", ErrUnsupported, op, x.kind)
	}

	return nil
}

// validateBatch checks that a and b share batch dimensions.
func validateBatch(a, b *tensor.Dense) error {
	ab, bb := a.BatchShape(), b.BatchShape()
	if !tensor.SameShape(ab, bb) {
		return fmt.Errorf("%w: batch shapes %v and %v differ", ErrShape, ab, bb)
	}

	return nil
}

// validateSameGroup checks Mul operands: same group kind, same batch.
func validateSameGroup(op Op, x, y *Tensor) error {
	if err := validateUnary(op, x); err != nil {
		return err
	}
	if err := validateTensor(y); err != nil {
		return err
	}
	if x.kind != y.kind {
		return fmt.Errorf("%w: %s on %s and %s", ErrKindMismatch, op, x.kind, y.kind)
	}

	return validateBatch(x.data, y.data)
}

// validateGroupAlgebra checks (group, paired algebra) operands with equal batch.
func validateGroupAlgebra(op Op, x, a *Tensor) error {
	if err := validateUnary(op, x); err != nil {
		return err
	}
	if err := validateTensor(a); err != nil {
		return err
	}
	if a.kind != x.kind.Pair() {
		return fmt.Errorf("%w: %s on %s expects %s, got %s", ErrKindMismatch, op, x.kind, x.kind.Pair(), a.kind)
	}

	return validateBatch(x.data, a.data)
}

// validatePoints checks Act points: trailing width 3 or 4, batch equal to x.
func validatePoints(x *Tensor, p *tensor.Dense) error {
	if p == nil {
		return ErrNilTensor
	}
	if w := p.Width(); w != 3 && w != 4 {
		return fmt.Errorf("%w: points must have trailing dim 3 or 4, got %d", ErrShape, w)
	}

	return validateBatch(x.data, p)
}
