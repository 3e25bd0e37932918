// SPDX-License-Identifier: MIT
// Package matrix_test: unit tests for the Dense implementation.

package matrix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/spectral/matrix"
)

func TestNewDense_ZeroInitialized(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					if v := MustAt(t, m, i, j); v != 0.0 {
						t.Fatalf("fresh Dense cell [%d,%d] = %v, want 0", i, j, v)
					}
				}
			}
		})
	}
}

func TestNewDense_RejectsBadShape(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{-1, 2},
		{2, -1},
	} {
		if _, err := matrix.NewDense(tc.rows, tc.cols); !errors.Is(err, matrix.ErrBadShape) {
			t.Fatalf("NewDense(%d,%d): want ErrBadShape, got %v", tc.rows, tc.cols, err)
		}
	}
}

func TestNewFromFlat_CopiesAndValidates(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3, 4, 5, 6}
	m := MustFromFlat(t, 2, 3, src)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	// Mutating the source slice must not leak into the matrix.
	src[0] = 99
	if v := MustAt(t, m, 0, 0); v != 1 {
		t.Fatalf("NewFromFlat aliased the input slice: got %v", v)
	}

	// Length mismatch and bad shape each surface their own sentinel.
	if _, err := matrix.NewFromFlat(2, 2, []float64{1, 2, 3}); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch on short slice, got %v", err)
	}
	if _, err := matrix.NewFromFlat(0, 2, nil); !errors.Is(err, matrix.ErrBadShape) {
		t.Fatalf("want ErrBadShape on zero rows, got %v", err)
	}
}

func TestNewFromRows(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)

	if _, err = matrix.NewFromRows(nil); !errors.Is(err, matrix.ErrBadShape) {
		t.Fatalf("want ErrBadShape on nil rows, got %v", err)
	}
	if _, err = matrix.NewFromRows([][]float64{{1, 2}, {3}}); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch on ragged rows, got %v", err)
	}
}

func TestDense_AtSet_Bounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	for _, tc := range []struct{ i, j int }{
		{-1, 0},
		{0, -1},
		{2, 0},
		{0, 2},
	} {
		if _, err := m.At(tc.i, tc.j); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Fatalf("At(%d,%d): want ErrOutOfRange, got %v", tc.i, tc.j, err)
		}
		if err := m.Set(tc.i, tc.j, 1.0); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Fatalf("Set(%d,%d): want ErrOutOfRange, got %v", tc.i, tc.j, err)
		}
	}

	MustSet(t, m, 1, 1, 42.5)
	if v := MustAt(t, m, 1, 1); v != 42.5 {
		t.Fatalf("round-trip: want 42.5, got %v", v)
	}
}

func TestDense_Clone_Independent(t *testing.T) {
	t.Parallel()

	orig := MustFromFlat(t, 2, 2, []float64{1, 2, 3, 4})
	cp := orig.Clone()

	MustSet(t, cp, 0, 0, -7)
	if v := MustAt(t, orig, 0, 0); v != 1 {
		t.Fatalf("Clone shares storage with the original: got %v", v)
	}
	if _, ok := cp.(*matrix.Dense); !ok {
		t.Fatalf("Clone of *Dense should stay *Dense, got %T", cp)
	}
}

func TestDense_Flatten_Copies(t *testing.T) {
	t.Parallel()

	m := MustFromFlat(t, 2, 2, []float64{1, 2, 3, 4})
	flat := m.Flatten()

	want := []float64{1, 2, 3, 4}
	for i, v := range want {
		if flat[i] != v {
			t.Fatalf("Flatten[%d]: want %v, got %v", i, v, flat[i])
		}
	}

	// Mutating the flattened copy must not write through.
	flat[3] = 0
	if v := MustAt(t, m, 1, 1); v != 4 {
		t.Fatalf("Flatten aliased the backing storage: got %v", v)
	}
}
