// SPDX-License-Identifier: MIT

// Package tensor - sentinel error set.
// All constructors and accessors return these sentinels (wrapped with an
// operation tag); tests match them via errors.Is.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a shape has rank 0 or a negative dimension.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrSizeMismatch indicates that a buffer length does not match the product of the shape.
	ErrSizeMismatch = errors.New("tensor: data length does not match shape")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrNilTensor indicates that a nil *Dense was used.
	ErrNilTensor = errors.New("tensor: nil tensor")
)

// tensorErrorf wraps err with an operation tag; errors.Is still matches.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("tensor.%s: %w", tag, err)
}
