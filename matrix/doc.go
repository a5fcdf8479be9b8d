// Package matrix provides the small dense linear algebra used by the Lie
// kernels.
//
// The matrix package provides:
//
//   - Dense, a row-major r×c buffer with safe At/Set accessors, used for the
//     7×7 sim3 adjoint and the Jacobian operators built from it.
//   - Add, Scale, Mul, MatVec, MaxAbs over the Matrix interface with a
//     flat-slice fast path for *Dense.
//   - Vec3 and Mat3, fixed-size value types for the per-element 3-vector and
//     3×3 operator arithmetic (skew matrices, rotation matrices, the sW
//     operator of Sim3) that sits on the hot path of every kernel.
//   - LU and Inverse (partial pivoting), used to invert the Sim3 left
//     Jacobian far from the identity.
//
// All operations are deterministic: fixed loop orders, no map iteration, no
// hidden state. Operands are never mutated; every result is freshly
// allocated (Dense) or returned by value (Vec3, Mat3).
package matrix
