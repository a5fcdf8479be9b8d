// SPDX-License-Identifier: MIT

// Package lie - Engine: the kernel context.
//
// Purpose:
//   - Carry eps, the worker bound and the logger explicitly instead of
//     process-wide state; every operation is a method on *Engine.
//   - Validate operands at entry, allocate the result, fan batch rows out
//     over tensor.ParallelRange, and never return partial results.
//   - Own the fallback generator used when Randn is given a nil *rand.Rand;
//     draws from it are serialised by a mutex.
//
// Concurrency:
//   - An Engine is safe for concurrent use. Kernels are pure per row, so
//     results do not depend on workers or grain.

package lie

import (
	"math/rand/v2"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/lietensor/tensor"
)

// Engine evaluates batched Lie kernels under one configuration.
type Engine struct {
	opts Options

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewEngine builds an Engine from options applied over the defaults.
// Panics only through invalid WithX values.
func NewEngine(opts ...Option) *Engine {
	o := gatherOptions(opts...)
	e := &Engine{
		opts: o,
		rng:  rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15)),
	}
	o.logger.Debug("lie engine ready",
		zap.Float64("eps", o.eps),
		zap.Int("workers", o.workers),
		zap.Int("grain", o.grain),
		zap.Uint64("seed", o.seed),
	)

	return e
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the shared Engine built with the documented defaults.
func Default() *Engine {
	defaultOnce.Do(func() { defaultEngine = NewEngine() })
	return defaultEngine
}

// Epsilon returns the small-value switching threshold.
func (e *Engine) Epsilon() float64 { return e.opts.eps }

// Workers returns the configured worker bound (0 = GOMAXPROCS).
func (e *Engine) Workers() int { return e.opts.workers }

// Logger returns the engine logger (never nil).
func (e *Engine) Logger() *zap.Logger { return e.opts.logger }

// reject logs a refused call at debug level and wraps err with the op tag.
func (e *Engine) reject(op Op, err error) error {
	e.opts.logger.Debug("lie operation rejected", zap.Stringer("op", op), zap.Error(err))
	return lieErrorf(op.String(), err)
}

// mapRows calls fn for every row index in [0, n), possibly concurrently.
func (e *Engine) mapRows(n int, fn func(i int)) {
	tensor.ParallelRange(n, e.opts.workers, e.opts.grain, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(i)
		}
	})
}

// alloc returns a zero array of shape (batch..., trailing...).
func alloc(batch []int, trailing ...int) *tensor.Dense {
	out, err := tensor.New(append(append([]int(nil), batch...), trailing...)...)
	if err != nil {
		// batch comes from a validated tensor; trailing dims are constants.
		panic("lie: alloc: " + err.Error())
	}

	return out
}

// sameKind maps a kind to itself; Kind.Pair maps it to its counterpart.
func sameKind(k Kind) Kind { return k }

// unary validates x for op and fills a fresh to(x.Kind()) tensor row by row.
func (e *Engine) unary(op Op, x *Tensor, to func(Kind) Kind, kernel func(f family, in, out []float64)) (*Tensor, error) {
	if err := validateUnary(op, x); err != nil {
		return nil, e.reject(op, err)
	}
	fam, outKind := x.kind.family(), to(x.kind)
	out := alloc(x.BatchShape(), outKind.Width())
	e.mapRows(x.Len(), func(i int) { kernel(fam, x.row(i), out.Row(i)) })

	return wrap(outKind, out), nil
}

// groupAlgebra validates (x, a) as a group and its paired algebra and fills
// a fresh to(x.Kind()) tensor row by row.
func (e *Engine) groupAlgebra(op Op, x, a *Tensor, to func(Kind) Kind, kernel func(f family, g, v, out []float64)) (*Tensor, error) {
	if err := validateGroupAlgebra(op, x, a); err != nil {
		return nil, e.reject(op, err)
	}
	fam, outKind := x.kind.family(), to(x.kind)
	out := alloc(x.BatchShape(), outKind.Width())
	e.mapRows(x.Len(), func(i int) { kernel(fam, x.row(i), a.row(i), out.Row(i)) })

	return wrap(outKind, out), nil
}

// squareBlocks fills a (batch..., d, d) array with one row-major d×d block per
// element of x. x must already be validated.
func (e *Engine) squareBlocks(x *Tensor, d int, fill func(in, out []float64)) *tensor.Dense {
	flat := alloc(x.BatchShape(), d*d)
	e.mapRows(x.Len(), func(i int) { fill(x.row(i), flat.Row(i)) })
	out, err := flat.Reshape(append(x.BatchShape(), d, d)...)
	if err != nil {
		panic("lie: squareBlocks: " + err.Error()) // same element count
	}

	return out
}
