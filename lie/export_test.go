// SPDX-License-Identifier: MIT

package lie

// Test-Bridge (White-Box) for private coefficient kernels.
//
// Purpose:
//   - Expose the scalar coefficient functions to lie_test so branch
//     continuity can be checked without going through whole tensors.
//
// AI-Hints:
//   - If a coefficient helper changes signature, mirror it here once.

const ExportedSE3QSeriesBound = se3QSeriesBound

var (
	ExportedSO3JacobianCoeffs = so3JacobianCoeffs
	ExportedSE3QCoeffs        = se3QCoeffs
	ExportedSim3Jinvp         = sim3Jinvp
	ExportedSim3WCoeffs       = sim3WCoeffs
	ExportedSim3WInvCoeffs    = sim3WInvCoeffs
	ExportedExpandSigma       = expandSigma
)

// OptionsSnapshot is a read-only view of an Engine's effective options.
type OptionsSnapshot struct {
	Eps     float64
	Workers int
	Grain   int
	Seed    uint64
}

// SnapshotOf returns the effective options of e.
func SnapshotOf(e *Engine) OptionsSnapshot {
	return OptionsSnapshot{Eps: e.opts.eps, Workers: e.opts.workers, Grain: e.opts.grain, Seed: e.opts.seed}
}
