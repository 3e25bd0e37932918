// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertions for the kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spectral/matrix"
)

// hide wraps any Matrix to mask its concrete type from type assertions,
// forcing kernels onto the interface fallback path instead of the *Dense
// fast path. Wrap only the operand whose path you want to de-optimize.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromFlat builds an r×c *Dense from row-major values or fails the test.
func MustFromFlat(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromFlat(r, c, vals)
	if err != nil {
		t.Fatalf("NewFromFlat(%d,%d): %v", r, c, err)
	}

	return m
}

// MustSet writes m[i,j] = v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomFill fills m with deterministic U(-1,1) values derived from seed.
// Reproducible for a fixed seed; keeps every cell finite.
func RandomFill(t *testing.T, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}
}

// RandFilledDense returns a fresh r×c Dense filled via RandomFill.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	RandomFill(t, m, seed)

	return m
}

// CompareExact asserts m equals want cell by cell, bitwise.
// Prefer for integer-valued fixtures; use CompareClose for float results.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if m.Rows() != len(want) {
		t.Fatalf("rows: want %d, got %d", len(want), m.Rows())
	}
	var i, j int
	var got float64
	for i = 0; i < len(want); i++ {
		if m.Cols() != len(want[i]) {
			t.Fatalf("cols in row %d: want %d, got %d", i, len(want[i]), m.Cols())
		}
		for j = 0; j < len(want[i]); j++ {
			got = MustAt(t, m, i, j)
			if got != want[i][j] {
				t.Fatalf("cell [%d,%d]: want %v, got %v", i, j, want[i][j], got)
			}
		}
	}
}

// CompareClose asserts |m[i,j]-want[i,j]| ≤ tol cell by cell.
func CompareClose(t *testing.T, want [][]float64, m matrix.Matrix, tol float64) {
	t.Helper()
	if m.Rows() != len(want) {
		t.Fatalf("rows: want %d, got %d", len(want), m.Rows())
	}
	var i, j int
	var got float64
	for i = 0; i < len(want); i++ {
		for j = 0; j < len(want[i]); j++ {
			got = MustAt(t, m, i, j)
			if math.Abs(got-want[i][j]) > tol {
				t.Fatalf("cell [%d,%d]: want %v, got %v (tol %g)", i, j, want[i][j], got, tol)
			}
		}
	}
}
