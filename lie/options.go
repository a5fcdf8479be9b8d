// SPDX-License-Identifier: MIT

// Package lie - functional configuration of an Engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global numeric state; epsilon travels with the Engine.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package lie

import (
	"math"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the threshold below which angles, log-scales and
	// quaternion vector norms switch to their Taylor expansions (float64).
	DefaultEpsilon = 1e-6

	// DefaultWorkers bounds the batch fan-out; 0 selects runtime.GOMAXPROCS.
	DefaultWorkers = 0

	// DefaultGrain is the minimum number of batch elements per worker.
	DefaultGrain = 256

	// DefaultSeed seeds the engine's fallback generator.
	DefaultSeed uint64 = 0x5eed
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "lie: WithEpsilon: eps must be finite and > 0"
	panicWorkersInvalid = "lie: WithWorkers: workers must be >= 0"
	panicGrainInvalid   = "lie: WithGrain: grain must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps     float64     // > 0; DefaultEpsilon
	workers int         // >= 0; DefaultWorkers
	grain   int         // >= 0; DefaultGrain
	seed    uint64      // DefaultSeed
	logger  *zap.Logger // never nil after gatherOptions
}

// WithEpsilon sets the small-angle switching threshold.
// Implementation:
//   - Stage 1: validate eps is finite and > 0 (0 would route exact zeros into 0/0).
//   - Stage 2: return a setter that writes eps into Options.
//
// Notes:
//   - Every branch in the kernels compares against this one value; results
//     are continuous across it within O(eps²) for the series used.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithWorkers bounds the number of goroutines a single call may use.
// 0 selects runtime.GOMAXPROCS(0); 1 runs every kernel on the caller goroutine.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithGrain sets the minimum batch elements per worker (0 selects DefaultGrain).
func WithGrain(n int) Option {
	if n < 0 {
		panic(panicGrainInvalid)
	}

	return func(o *Options) { o.grain = n }
}

// WithSeed seeds the engine's fallback generator used when Randn receives a nil generator.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithLogger attaches a zap logger; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:     DefaultEpsilon,
		workers: DefaultWorkers,
		grain:   DefaultGrain,
		seed:    DefaultSeed,
		logger:  zap.NewNop(),
	}
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
