// Package lie implements batched arithmetic on the matrix Lie groups SO3,
// SE3, RxSO3 and Sim3 and their Lie algebras so3, se3, rxso3 and sim3.
//
// The package provides:
//
//   - Kind, a closed tag over the eight group/algebra kinds, and its
//     descriptor table (width, paired kind, identity, legal operations).
//   - Tensor, a kind-tagged batch of elements of shape (batch..., width).
//   - Engine, which carries the numeric policy (epsilon), the worker pool
//     bound and a logger, and exposes the kernels: Exp, Log, Inv, Mul, Act,
//     Adj, AdjT, Jinvp, Retr, Matrix, Jr and the Gaussian samplers.
//
// Storage layouts (quaternions are [x, y, z, w]):
//
//	SO3   [qx qy qz qw]                 so3   [φx φy φz]
//	SE3   [tx ty tz qx qy qz qw]        se3   [τx τy τz φx φy φz]
//	RxSO3 [qx qy qz qw s]               rxso3 [φx φy φz σ]
//	Sim3  [tx ty tz qx qy qz qw s]      sim3  [τx τy τz φx φy φz σ]
//
// Every kernel is a pure function of each batch element: results never
// depend on sibling elements, on batch size or on how the engine splits the
// batch across workers. Every division by an angle, a log-scale or their
// combinations is guarded by the engine epsilon, switching to a Taylor
// series below it.
//
// Preconditions (kind pairing, trailing width, matching batch shapes, sigma
// lengths) are checked at the entry of each operation and reported with the
// sentinels in errors.go. Values off the manifold (non-unit quaternions,
// non-positive scales) are not rejected; results for them are undefined.
//
// Example:
//
//	e := lie.NewEngine()
//	x, _ := lie.FromSlice(lie.SO3Alg, []float64{0.1, 0.2, 0.3})
//	X, _ := e.Exp(x)        // SO3
//	back, _ := e.Log(X)     // so3, ≈ x
package lie
