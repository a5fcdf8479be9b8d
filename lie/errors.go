// SPDX-License-Identifier: MIT

// Package lie - sentinel error set.
//
// Every public operation validates its operands on entry and returns one of
// these sentinels wrapped once with the operation tag ("lie.Mul: ...").
// Tests match with errors.Is. Panics are reserved for programmer errors
// (unknown Kind values, nonsensical Option values).

package lie

import (
	"errors"
	"fmt"
)

var (
	// ErrKindMismatch is returned when operands do not carry the kinds an
	// operation requires (Mul on SO3 and SE3, Jinvp on SE3 with so3, ...).
	ErrKindMismatch = errors.New("lie: kind mismatch")

	// ErrShape is returned when a trailing dimension does not equal the kind
	// width, or when operands that must share batch dimensions do not.
	ErrShape = errors.New("lie: shape error")

	// ErrConfig is returned when a sampler sigma has a length outside the
	// kind's accepted lengths, or a sigma value is negative or non-finite.
	ErrConfig = errors.New("lie: invalid configuration")

	// ErrNilTensor is returned when a nil *Tensor is passed to an operation.
	ErrNilTensor = errors.New("lie: nil tensor")
)

// ErrUnsupported marks an operation that is not defined for the operand's
// kind (Exp on a group, Log on an algebra). It matches ErrKindMismatch.
var ErrUnsupported = fmt.Errorf("%w: operation not defined for kind", ErrKindMismatch)

// lieErrorf wraps err with the operation tag; errors.Is still matches.
func lieErrorf(op string, err error) error {
	return fmt.Errorf("lie.%s: %w", op, err)
}
