// Package matrix provides dense linear algebra primitives for real-valued
// computations.
//
// The matrix package provides:
//
//   - The Matrix interface: a uniform abstraction over two-dimensional
//     mutable arrays of float64 with bounds-checked access and deep cloning.
//   - Dense, a row-major flat-slice implementation tuned for cache-friendly
//     traversal; every kernel carries a *Dense fast path and a generic
//     At/Set fallback.
//   - Elementwise and product kernels (Add, Sub, Mul, Transpose, Scale,
//     MatVec), norms (FrobeniusNorm, MaxAbs) and tolerant comparison
//     (AllClose).
//   - Central validators returning package-level sentinel errors, matched
//     via errors.Is.
//
// Matrices are best for dense or small problems where O(n²) memory is
// acceptable. Package eigen consumes these primitives for its
// eigendecomposition kernel.
//
// See the examples in this package for usage patterns.
package matrix
