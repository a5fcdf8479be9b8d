// SPDX-License-Identifier: MIT

// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lietensor/matrix"
	"gonum.org/v1/gonum/mat"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At/Set fallback paths in the code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// RandomDense returns an r×c *Dense filled from a seeded PCG stream in [-1, 1).
// Determinism: identical seed ⇒ identical matrix.
func RandomDense(t *testing.T, r, c int, seed uint64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = 2*rng.Float64() - 1
	}
	m, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// RandomVec3 returns a Vec3 with entries in [-1, 1).
func RandomVec3(rng *rand.Rand) matrix.Vec3 {
	return matrix.Vec3{2*rng.Float64() - 1, 2*rng.Float64() - 1, 2*rng.Float64() - 1}
}

// gonumOf copies d into a gonum matrix for cross-checks.
func gonumOf(d *matrix.Dense) *mat.Dense {
	return mat.NewDense(d.Rows(), d.Cols(), d.RawData())
}
