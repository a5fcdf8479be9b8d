// Package tensor is the minimal N-dimensional numeric array engine the Lie
// kernels run on.
//
// A Dense holds float64 values in a flat row-major buffer with an arbitrary
// rank shape. The trailing dimension is the per-element width; everything
// before it is the batch shape. Zero-sized batch dimensions are legal and
// produce empty tensors.
//
// ParallelRange fans contiguous index ranges out over a bounded worker pool
// (golang.org/x/sync/errgroup). Callers that write disjoint rows from each
// range get results that do not depend on the number of workers.
package tensor
