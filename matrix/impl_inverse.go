// SPDX-License-Identifier: MIT

// Package matrix - LU decomposition and inverse.
//
// Purpose:
//   - Invert the small dense operators met in Lie calculus (Jacobians,
//     adjoints; n ≤ 7) without a round trip through gonum.
//
// Determinism:
//   - Partial pivoting picks the first row with the largest |pivot|; ties keep
//     the lower index, so identical inputs give identical permutations.

package matrix

import "math"

const (
	opLU      = "LU"
	opInverse = "Inverse"
)

// LU factors a square matrix as P·A = L·U (Doolittle, partial pivoting).
//
// Implementation:
//   - Stage 1: ValidateSquare; copy A into a working buffer.
//   - Stage 2: for each column k pick the pivot row, swap, then eliminate
//     below it storing multipliers in place.
//   - Stage 3: split the packed buffer into unit-lower L and upper U.
//
// Returns:
//   - L (unit lower), U (upper), perm where row i of P·A is row perm[i] of A.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular (zero pivot column).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix) (*Dense, *Dense, []int, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	n := m.Rows()
	a, err := toDense(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	w := a.data
	for k := 0; k < n; k++ {
		p, best := k, math.Abs(w[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(w[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == 0 {
			return nil, nil, nil, matrixErrorf(opLU, denseErrorf("pivot", k, k, ErrSingular))
		}
		if p != k {
			for j := 0; j < n; j++ {
				w[k*n+j], w[p*n+j] = w[p*n+j], w[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}
		pivot := w[k*n+k]
		for i := k + 1; i < n; i++ {
			f := w[i*n+k] / pivot
			w[i*n+k] = f
			if f == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				w[i*n+j] -= f * w[k*n+j]
			}
		}
	}

	L, _ := NewIdentity(n)
	U, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j < i {
				L.data[i*n+j] = w[i*n+j]
			} else {
				U.data[i*n+j] = w[i*n+j]
			}
		}
	}

	return L, U, perm, nil
}

// Inverse returns m⁻¹ by solving L·U·x = P·e_j for every basis column.
// Errors: those of LU.
// Complexity: O(n³).
func Inverse(m Matrix) (*Dense, error) {
	L, U, perm, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := L.r
	inv, _ := NewDense(n, n)
	y := make([]float64, n)
	x := make([]float64, n)

	var sum float64
	for col := 0; col < n; col++ {
		// forward: L·y = P·e_col
		for i := 0; i < n; i++ {
			sum = ZeroSum
			for k := 0; k < i; k++ {
				sum += L.data[i*n+k] * y[k]
			}
			if perm[i] == col {
				y[i] = 1 - sum
			} else {
				y[i] = -sum
			}
		}
		// backward: U·x = y
		for i := n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k := i + 1; k < n; k++ {
				sum += U.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / U.data[i*n+i]
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// toDense returns a fresh *Dense copy of m.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
