// SPDX-License-Identifier: MIT
// Package matrix_test: unit tests for the central validators.

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/spectral/matrix"
)

func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	if err := matrix.ValidateNotNil(nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("want ErrNilMatrix, got %v", err)
	}
	if err := matrix.ValidateNotNil(MustDense(t, 1, 1)); err != nil {
		t.Fatalf("non-nil input must pass, got %v", err)
	}
}

func TestValidateSquare(t *testing.T) {
	t.Parallel()

	if err := matrix.ValidateSquare(MustDense(t, 2, 3)); !errors.Is(err, matrix.ErrNonSquare) {
		t.Fatalf("want ErrNonSquare, got %v", err)
	}
	if err := matrix.ValidateSquare(MustDense(t, 3, 3)); err != nil {
		t.Fatalf("square input must pass, got %v", err)
	}
}

func TestValidateSquareNonNil_Composite(t *testing.T) {
	t.Parallel()

	if err := matrix.ValidateSquareNonNil(nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("want ErrNilMatrix first, got %v", err)
	}
	if err := matrix.ValidateSquareNonNil(MustDense(t, 1, 2)); !errors.Is(err, matrix.ErrNonSquare) {
		t.Fatalf("want ErrNonSquare, got %v", err)
	}
}

func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 2)
	b := MustDense(t, 2, 3)
	if err := matrix.ValidateBinarySameShape(a, b); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
	if err := matrix.ValidateBinarySameShape(a, nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("want ErrNilMatrix, got %v", err)
	}
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	if err := matrix.ValidateVecLen(nil, 3); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("want ErrNilMatrix for nil vector, got %v", err)
	}
	if err := matrix.ValidateVecLen([]float64{1, 2}, 3); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
	if err := matrix.ValidateVecLen([]float64{1, 2, 3}, 3); err != nil {
		t.Fatalf("matching length must pass, got %v", err)
	}
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := MustFromFlat(t, 2, 2, []float64{1, 2, 2, 3})
	if err := matrix.ValidateSymmetric(sym, 0); err != nil {
		t.Fatalf("exactly symmetric input must pass, got %v", err)
	}

	asym := MustFromFlat(t, 2, 2, []float64{1, 2, 2.5, 3})
	if err := matrix.ValidateSymmetric(asym, 0); !errors.Is(err, matrix.ErrAsymmetry) {
		t.Fatalf("want ErrAsymmetry, got %v", err)
	}
	// The same deviation passes under a wide enough tolerance.
	if err := matrix.ValidateSymmetric(asym, 0.5); err != nil {
		t.Fatalf("tol=0.5 must absorb a 0.5 deviation, got %v", err)
	}

	// Negative tolerance folds to its absolute value rather than failing.
	if err := matrix.ValidateSymmetric(asym, -0.5); err != nil {
		t.Fatalf("tol=-0.5 must behave as tol=0.5, got %v", err)
	}
	if err := matrix.ValidateSymmetric(asym, -0.1); !errors.Is(err, matrix.ErrAsymmetry) {
		t.Fatalf("tol=-0.1 must behave as tol=0.1 and reject, got %v", err)
	}

	if err := matrix.ValidateSymmetric(sym, math.NaN()); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("NaN tolerance must fail with ErrNaNInf, got %v", err)
	}
	if err := matrix.ValidateSymmetric(MustDense(t, 2, 3), 0); !errors.Is(err, matrix.ErrNonSquare) {
		t.Fatalf("want ErrNonSquare, got %v", err)
	}
}

func TestIsSymmetric(t *testing.T) {
	t.Parallel()

	sym := MustFromFlat(t, 2, 2, []float64{1, 2, 2, 3})
	ok, err := matrix.IsSymmetric(sym, 0)
	if err != nil || !ok {
		t.Fatalf("want (true,nil), got (%v,%v)", ok, err)
	}

	asym := MustFromFlat(t, 2, 2, []float64{1, 2, -2, 3})
	ok, err = matrix.IsSymmetric(asym, 0)
	if err != nil || ok {
		t.Fatalf("want (false,nil), got (%v,%v)", ok, err)
	}

	// Structural problems still surface as errors.
	if _, err = matrix.IsSymmetric(nil, 0); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("want ErrNilMatrix, got %v", err)
	}
}

func TestIsZeroOffDiagonal(t *testing.T) {
	t.Parallel()

	diag := MustFromFlat(t, 3, 3, []float64{5, 0, 0, 0, -1, 0, 0, 0, 2})
	ok, err := matrix.IsZeroOffDiagonal(diag, 0)
	if err != nil || !ok {
		t.Fatalf("diagonal matrix: want (true,nil), got (%v,%v)", ok, err)
	}

	MustSet(t, diag, 0, 2, 1e-3)
	ok, err = matrix.IsZeroOffDiagonal(diag, 1e-6)
	if err != nil || ok {
		t.Fatalf("off-diagonal 1e-3 vs tol 1e-6: want (false,nil), got (%v,%v)", ok, err)
	}
	ok, err = matrix.IsZeroOffDiagonal(diag, 1e-2)
	if err != nil || !ok {
		t.Fatalf("off-diagonal 1e-3 vs tol 1e-2: want (true,nil), got (%v,%v)", ok, err)
	}
}
