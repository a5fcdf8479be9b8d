// SPDX-License-Identifier: MIT

// Package lie - matrix form of group elements.

package lie

import "github.com/katalvlaran/lietensor/tensor"

// Matrix returns the matrix form of every group element:
//
//	SO3:   R                      (batch..., 3, 3)
//	SE3:   [[R, t], [0, 1]]       (batch..., 4, 4)
//	RxSO3: [[s·R, 0], [0, 1]]     (batch..., 4, 4)
//	Sim3:  [[s·R, t], [0, 1]]     (batch..., 4, 4)
//
// Errors: ErrNilTensor, ErrShape, ErrUnsupported (algebra kinds).
func (e *Engine) Matrix(x *Tensor) (*tensor.Dense, error) {
	if err := validateUnary(OpMatrix, x); err != nil {
		return nil, e.reject(OpMatrix, err)
	}
	fam := x.kind.family()

	return e.squareBlocks(x, fam.matrixDim(), fam.matrix), nil
}
