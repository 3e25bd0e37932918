// Package spectral is a small, dependency-light toolkit for dense real
// linear algebra, centered on a full eigenvalue/eigenvector decomposition
// of square real matrices.
//
// 🚀 What is spectral?
//
//	A pure-Go library that brings together:
//		• Matrix primitives: a row-major Dense type behind a minimal Matrix
//		  interface, with bounds-checked access and deep cloning
//		• Kernels: Add, Sub, Mul, Transpose, Scale, MatVec, norms, AllClose
//		• Eigendecomposition: symmetric (Householder tridiagonalization +
//		  implicit-shift QL) and nonsymmetric (Hessenberg reduction +
//		  Francis double-shift QR to real Schur form) pipelines behind one
//		  entry point
//
// ✨ Why choose spectral?
//
//   - Deterministic – fixed loop orders, no global state, reproducible output
//   - Honest numerics – guarded complex division, scaled Householder steps,
//     explicit iteration caps with a documented non-convergence policy
//   - Pure Go – no cgo, no hidden deps
//   - Small API – two packages, clear sentinel errors, errors.Is friendly
//
// Everything is organized under two subpackages:
//
//	matrix/ — Dense storage, elementwise and product kernels, validators
//	eigen/  — the eigendecomposition kernel and its result type
//
// Quick start:
//
//	A, _ := matrix.NewFromFlat(2, 2, []float64{0, 1, -1, 0})
//	dec, err := eigen.Decompose(A)
//	if err != nil { ... }
//	fmt.Println(dec.RealParts(), dec.ImagParts()) // [0 0] [1 -1]
//
// The decomposition satisfies A·V = V·D, where D is block diagonal with
// 1×1 blocks for real eigenvalues and 2×2 blocks [[a, b], [-b, a]] for
// complex-conjugate pairs. See package eigen for the full contract.
package spectral
