// Package eigen computes the eigenvalue/eigenvector decomposition of a
// dense square real matrix.
//
// If the input A is symmetric, then A = V·D·Vᵀ where the eigenvalue matrix
// D is diagonal and the eigenvector matrix V is orthogonal (Vᵀ·V = I).
//
// If A is not symmetric, the eigenvalue matrix D is block diagonal with the
// real eigenvalues in 1×1 blocks and any complex-conjugate eigenvalue pair
// a ± i·b in a 2×2 block [[a, b], [-b, a]] at adjacent indices. This keeps
// V a real matrix in both cases, and A·V = V·D always holds. In the
// nonsymmetric case V may be badly conditioned, or even singular, so the
// validity of A = V·D·V⁻¹ depends on the condition number of V — that is a
// property of the algorithm, not an error.
//
// Algorithm outline:
//
//	Symmetric    — Householder reduction to tridiagonal form, then the
//	               implicit-shift QL iteration; eigenvalues are returned in
//	               ascending order with matching eigenvector columns.
//	Nonsymmetric — Householder reduction to upper Hessenberg form with
//	               orthogonal accumulation, then the Francis double-shift QR
//	               iteration to real Schur form, followed by
//	               back-substitution (with guarded complex division) to
//	               recover real eigenvectors.
//
// Both iterations carry an explicit per-eigenvalue iteration cap
// (DefaultMaxIterations). On overrun the decomposition deflates with the
// best available approximation and reports Converged() == false; pass
// WithErrorOnNonConvergence to receive ErrNoConvergence instead.
//
// The decomposition is eager: Decompose runs the full pipeline before
// returning, all scratch state is local to the call, and the returned
// Decomposition is immutable and safe for unsynchronized concurrent reads.
//
// The algorithms follow:
//
//	Wilkinson, J. H., & Reinsch, C. (1971).
//	Handbook for Automatic Computation: Volume II: Linear Algebra.
//	Springer-Verlag.
package eigen
