// SPDX-License-Identifier: MIT

// Package lie - batched random sampling.
//
// Purpose:
//   - Draw algebra samples with zero-mean Gaussian components per block:
//     translation std per axis, rotation std 2σd/√3 (so the expected geodesic
//     distance from the identity is σd), scale std σs.
//   - Group samples are Exp of the algebra sample.
//
// Determinism:
//   - Rows are drawn sequentially in row-major order, components in algebra
//     order; a seeded generator reproduces the same tensor for any worker count.

package lie

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/katalvlaran/lietensor/tensor"
)

// defaultSigma is used when the caller passes no sigma.
var defaultSigma = []float64{1.0}

// expandSigma validates sigma against kind and broadcasts it per component.
// Errors: ErrConfig for a length outside kind.SigmaLens() or a negative or
// non-finite value.
func expandSigma(kind Kind, sigma []float64) ([]float64, error) {
	if len(sigma) == 0 {
		sigma = defaultSigma
	}
	if !lo.Contains(kind.SigmaLens(), len(sigma)) {
		return nil, fmt.Errorf("%w: %s accepts sigma lengths %v, got %d", ErrConfig, kind, kind.SigmaLens(), len(sigma))
	}
	if lo.SomeBy(sigma, func(v float64) bool { return v < 0 || math.IsNaN(v) || math.IsInf(v, 0) }) {
		return nil, fmt.Errorf("%w: sigma values must be finite and >= 0, got %v", ErrConfig, sigma)
	}

	return kind.family().expandSigma(sigma), nil
}

// drawNormal fills out with N(0, std[i]²) draws in index order.
func drawNormal(r *rand.Rand, std, out []float64) {
	for i := range out {
		out[i] = r.NormFloat64() * std[i]
	}
}

// Randn draws a (batch..., width) tensor of kind.
//
// Inputs:
//   - r: caller-owned generator; nil selects the engine generator (draws are
//     serialised; seed it with WithSeed for reproducibility).
//   - kind: any group or algebra kind.
//   - sigma: so3/SO3 [σd]; se3/SE3 [σ] | [σt, σd] | [σtx, σty, σtz, σd];
//     rxso3/RxSO3 [σ] | [σd, σs]; sim3/Sim3 [σ] | [σt, σd, σs] |
//     [σtx, σty, σtz, σd, σs]. Empty means [1].
//
// Errors:
//   - ErrConfig (sigma), ErrShape (negative batch dims).
func (e *Engine) Randn(r *rand.Rand, kind Kind, sigma []float64, batch ...int) (*Tensor, error) {
	std, err := expandSigma(kind, sigma)
	if err != nil {
		return nil, e.reject(OpRandn, err)
	}
	alg := kind.Algebra()
	out, err := tensor.New(append(append([]int(nil), batch...), alg.Width())...)
	if err != nil {
		return nil, e.reject(OpRandn, fmt.Errorf("%w: %w", ErrShape, err))
	}

	if r == nil {
		e.rngMu.Lock()
		defer e.rngMu.Unlock()
		r = e.rng
	}
	for i := 0; i < out.Rows(); i++ {
		drawNormal(r, std, out.Row(i))
	}

	x := wrap(alg, out)
	if kind.IsAlgebra() {
		return x, nil
	}

	return e.Exp(x)
}

// RandnLike draws a tensor with x's kind and batch shape.
// Errors: ErrNilTensor plus those of Randn.
func (e *Engine) RandnLike(r *rand.Rand, x *Tensor, sigma []float64) (*Tensor, error) {
	if x == nil {
		return nil, e.reject(OpRandn, ErrNilTensor)
	}

	return e.Randn(r, x.kind, sigma, x.BatchShape()...)
}
