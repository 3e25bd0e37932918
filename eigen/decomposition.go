// SPDX-License-Identifier: MIT
// Package eigen — public entry point and result type.
//
// Purpose:
//   - Decompose validates the input, classifies it as symmetric or not,
//     runs the matching pipeline eagerly and returns an immutable result.
//   - Decomposition exposes eigenvalues, eigenvectors and the block
//     diagonal eigenvalue matrix through copying accessors.
//
// Determinism:
//   - Same input and options ⇒ bitwise-identical output. No goroutines,
//     no randomness, no global state.
//
// AI-Hints:
//   - Pass *matrix.Dense to skip the elementwise At fallback when the
//     input is flattened.
//   - A near-symmetric matrix routed through the nonsymmetric pipeline can
//     lose the orthogonality guarantee; either raise WithSymmetryEpsilon or
//     repair the input with matrix.Symmetrize first.

package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spectral/matrix"
)

// machineEpsilon is 2⁻⁵², the double-precision unit roundoff used in every
// relative convergence and deflation test.
const machineEpsilon = 0x1p-52

// Operation tags used when wrapping sentinel errors.
const (
	opDecompose     = "Decompose"
	opBlockDiagonal = "BlockDiagonal"
)

// eigenErrorf wraps err with the operation tag, preserving errors.Is/As.
func eigenErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Decomposition is the immutable result of an eigenvalue decomposition.
// All accessors return fresh copies; a Decomposition is safe for
// unsynchronized concurrent reads.
type Decomposition struct {
	n         int
	symmetric bool
	converged bool
	d         []float64 // eigenvalue real parts
	e         []float64 // eigenvalue imaginary parts
	v         []float64 // eigenvector matrix, row-major, stride n
}

// Decompose computes the eigenvalue decomposition of the square matrix m.
//
// Implementation:
//   - The input is flattened into a private working copy (m is never
//     mutated), classified as symmetric within the configured tolerance,
//     then reduced by the matching pipeline: Householder tridiagonal + QL
//     when symmetric, Hessenberg + double-shift QR otherwise.
//
// Inputs: any Matrix implementation; n ≥ 1 and Rows == Cols required.
// Returns: the Decomposition, or nil with a wrapped sentinel on bad input.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrBadShape,
// and — only under WithErrorOnNonConvergence — ErrNoConvergence, in which
// case the partial Decomposition is returned alongside the error.
// Complexity: O(n³) time, O(n²) space.
func Decompose(m matrix.Matrix, opts ...Option) (*Decomposition, error) {
	cfg := gatherOptions(opts...)

	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, eigenErrorf(opDecompose, err)
	}
	n := m.Rows()
	if n < 1 {
		return nil, eigenErrorf(opDecompose, matrix.ErrBadShape)
	}

	a := flatten(m, n)

	dec := &Decomposition{
		n:         n,
		symmetric: isSymmetricFlat(a, n, cfg.symmetryEps),
		converged: true,
		d:         make([]float64, n),
		e:         make([]float64, n),
		v:         make([]float64, n*n),
	}

	if dec.symmetric {
		copy(dec.v, a)
		tridiagonalize(n, dec.v, dec.d, dec.e)
		dec.converged = qlIterate(n, cfg.maxIterations, dec.v, dec.d, dec.e)
	} else {
		// a doubles as the Hessenberg working buffer; it is call-local.
		ort := make([]float64, n)
		hessenbergReduce(n, a, dec.v, ort)
		dec.converged = schurIterate(n, cfg.maxIterations, a, dec.v, dec.d, dec.e)
	}

	if !dec.converged && cfg.errOnNonConverg {
		return dec, eigenErrorf(opDecompose, ErrNoConvergence)
	}

	return dec, nil
}

// N returns the dimension of the decomposed matrix.
func (dec *Decomposition) N() int { return dec.n }

// Symmetric reports whether the input was classified as symmetric and
// therefore routed through the tridiagonal QL pipeline.
func (dec *Decomposition) Symmetric() bool { return dec.symmetric }

// Converged reports whether every eigenvalue was isolated within the
// iteration cap. When false, the stored values are the best approximations
// available at deflation time.
func (dec *Decomposition) Converged() bool { return dec.converged }

// RealParts returns a copy of the eigenvalue real parts. For a symmetric
// input these are all the eigenvalues, in ascending order.
func (dec *Decomposition) RealParts() []float64 {
	out := make([]float64, dec.n)
	copy(out, dec.d)
	return out
}

// ImagParts returns a copy of the eigenvalue imaginary parts. A conjugate
// pair a ± i·b occupies adjacent slots k, k+1 with ImagParts()[k] = +b and
// ImagParts()[k+1] = -b; real eigenvalues have a zero entry. For a
// symmetric input the slice is all zeros.
func (dec *Decomposition) ImagParts() []float64 {
	out := make([]float64, dec.n)
	copy(out, dec.e)
	return out
}

// Values returns the eigenvalues as complex numbers, pairing RealParts and
// ImagParts slot by slot.
func (dec *Decomposition) Values() []complex128 {
	out := make([]complex128, dec.n)
	for i := 0; i < dec.n; i++ {
		out[i] = complex(dec.d[i], dec.e[i])
	}
	return out
}

// Vectors returns the eigenvector matrix V as a fresh *matrix.Dense.
// Column j corresponds to eigenvalue slot j; for a complex pair at slots
// k, k+1 the true eigenvectors are column(k) ± i·column(k+1). For a
// symmetric input V is orthogonal.
func (dec *Decomposition) Vectors() *matrix.Dense {
	vm, _ := matrix.NewFromFlat(dec.n, dec.n, dec.v) // dimensions are internally consistent
	return vm
}

// BlockDiagonal writes the eigenvalue matrix D into dst: real eigenvalues
// in 1×1 diagonal blocks, each conjugate pair a ± i·b in a 2×2 block
// [[a, b], [-b, a]] at its slot indices; every other cell is zeroed. The
// defining identity A·V = V·D holds up to roundoff whether or not A was
// symmetric.
//
// Errors: matrix.ErrNilMatrix if dst is nil, matrix.ErrNonSquare or
// matrix.ErrDimensionMismatch if dst is not n×n.
// Complexity: O(n²) for the zero fill.
func (dec *Decomposition) BlockDiagonal(dst matrix.Matrix) error {
	if err := matrix.ValidateSquareNonNil(dst); err != nil {
		return eigenErrorf(opBlockDiagonal, err)
	}
	if dst.Rows() != dec.n {
		return eigenErrorf(opBlockDiagonal, matrix.ErrDimensionMismatch)
	}

	for i := 0; i < dec.n; i++ {
		for j := 0; j < dec.n; j++ {
			if err := dst.Set(i, j, 0.0); err != nil {
				return eigenErrorf(opBlockDiagonal, err)
			}
		}
	}
	for k := 0; k < dec.n; k++ {
		if err := dst.Set(k, k, dec.d[k]); err != nil {
			return eigenErrorf(opBlockDiagonal, err)
		}
		// e[k] > 0 marks the first slot of a conjugate pair; the matching
		// e[k+1] = -e[k] fills the lower off-diagonal cell on its own turn.
		if dec.e[k] > 0 {
			if err := dst.Set(k, k+1, dec.e[k]); err != nil {
				return eigenErrorf(opBlockDiagonal, err)
			}
		} else if dec.e[k] < 0 {
			if err := dst.Set(k, k-1, dec.e[k]); err != nil {
				return eigenErrorf(opBlockDiagonal, err)
			}
		}
	}

	return nil
}

// BlockDiagonalDense allocates a fresh n×n *matrix.Dense and fills it via
// BlockDiagonal. Convenience for callers without a staging buffer.
func (dec *Decomposition) BlockDiagonalDense() (*matrix.Dense, error) {
	D, err := matrix.NewZeros(dec.n, dec.n)
	if err != nil {
		return nil, eigenErrorf(opBlockDiagonal, err)
	}
	if err = dec.BlockDiagonal(D); err != nil {
		return nil, err
	}

	return D, nil
}

// flatten copies m into a fresh row-major stride-n slice, using the Dense
// fast path when available and the At fallback otherwise.
func flatten(m matrix.Matrix, n int) []float64 {
	if dm, ok := m.(*matrix.Dense); ok {
		return dm.Flatten()
	}
	out := make([]float64, n*n)
	var val float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			val, _ = m.At(i, j) // bounds are valid by construction
			out[i*n+j] = val
		}
	}
	return out
}

// isSymmetricFlat reports |a[i,j]-a[j,i]| ≤ eps over the strict upper
// triangle. eps has been validated non-negative and finite by the option.
func isSymmetricFlat(a []float64, n int, eps float64) bool {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(a[i*n+j]-a[j*n+i]) > eps {
				return false
			}
		}
	}
	return true
}
