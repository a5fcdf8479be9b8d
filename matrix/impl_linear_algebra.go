// SPDX-License-Identifier: MIT

// Package matrix - dense linear algebra kernels.
//
// Purpose:
//   - Add/Scale/Mul/MatVec/MaxAbs over the Matrix interface; the Sim3 left
//     Jacobian is summed as a series in the 7×7 algebra adjoint with these
//     kernels, and MatVec applies the adjoint inside the J⁻¹ series.
//   - *Dense operands take a flat-slice fast path; other implementations go through At/Set.
//
// Determinism:
//   - Fixed loop orders (i→k→j for Mul fast path, i→j elsewhere).
//   - One allocation per result; inputs are never mutated.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ZeroSum is the neutral accumulator for dot-products.
const ZeroSum = 0.0

// Operation tags used in error wrapping.
const (
	opAdd    = "Add"
	opMul    = "Mul"
	opScale  = "Scale"
	opMatVec = "MatVec"
	opMaxAbs = "MaxAbs"
)

// matrixErrorf wraps err with an operation tag so the message reads
// "<tag>: <underlying>" while errors.Is still matches the sentinel.
// Callers must pass a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a + b as a new Dense.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := range res.data {
				res.data[i] = da.data[i] + db.data[i]
			}
			return res, nil
		}
	}

	var av, bv float64
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			res.data[i*res.c+j] = av + bv
		}
	}

	return res, nil
}

// Mul computes the matrix product C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Powers of the sim3 adjoint keep a zero last row and a zero lower-left
//     block; the zero skip pays off there.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var av float64
			for i := 0; i < aRows; i++ {
				rowA, rowR := i*aCols, i*bCols
				for k := 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowB := k * bCols
					for j := 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	var av, bv, acc float64
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			acc = ZeroSum
			for k := 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				acc += av * bv
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// Scale returns alpha*m as a new Dense.
// Complexity: O(rc).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if d, ok := m.(*Dense); ok {
		for i, v := range d.data {
			res.data[i] = alpha * v
		}
		return res, nil
	}

	var v float64
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*res.c+j] = alpha * v
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
//
// AI-Hints:
//   - Applies the sim3 adjoint (and the inverted left Jacobian) to a
//     tangent vector.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var acc, xv float64
		for i := 0; i < d.r; i++ {
			acc = ZeroSum
			base := i * d.c
			for j := 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}
		return y, nil
	}

	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		y[i] = ZeroSum
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// MaxAbs returns max |m(i,j)|, the stopping measure of the operator series.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func MaxAbs(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}
	if d, ok := m.(*Dense); ok {
		return floats.Norm(d.data, math.Inf(1)), nil
	}

	var best, v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opMaxAbs, err)
			}
			best = math.Max(best, math.Abs(v))
		}
	}

	return best, nil
}
