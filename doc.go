// Package lietensor is a toolkit of batched Lie group kernels for 3D
// geometry: rotations, rigid motions, rotation-scalings and similarities,
// together with their tangent (algebra) spaces.
//
// 🚀 What is lietensor?
//
//	A pure-Go library that brings together:
//		• Groups: SO3, SE3, RxSO3, Sim3 (unit quaternion + translation + log-scale)
//		• Algebras: so3, se3, rxso3, sim3 tangent vectors
//		• Maps: Exp, Log, Inv, Mul, Act on points, Adj / AdjT on tangents
//		• Jacobians: Jinvp (inverse left Jacobian times vector), Jr for so3
//		• Retraction and random sampling around the identity
//
// ✨ Why choose lietensor?
//
//   - Batched – every kernel maps over arbitrary leading batch shapes
//   - Deterministic – same inputs, same bits, for any worker count
//   - Numerically careful – small-angle and small-scale branches switch at eps
//   - Safe surface – sentinel errors wrapped once, never a panic on user input
//
// Under the hood, everything is organized under these subpackages:
//
//	lie/      - Kind, Tensor, Engine and the four group families
//	tensor/   - row-major N-dimensional storage and the batch worker pool
//	matrix/   - Vec3/Mat3 value types, dense operators, gonum bridge
//	config/   - LIE_* / LOG_* environment configuration
//	logging/  - zap logger construction
//	cmd/      - lietool, a command-line front end
//
// Quick example:
//
//	e := lie.Default()
//	x, _ := lie.FromSlice(lie.SE3Alg, []float64{1, 0, 0, 0, 0, math.Pi / 2})
//	g, _ := e.Exp(x) // SE3: translation + quaternion
//
// Dive into lie/doc.go for conventions (quaternion order, Jacobian side,
// sampling scale).
//
//	go get github.com/katalvlaran/lietensor
package lietensor
