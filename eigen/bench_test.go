// SPDX-License-Identifier: MIT
// Package eigen_test: benchmarks for both decomposition routes.

package eigen_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spectral/eigen"
	"github.com/katalvlaran/spectral/matrix"
)

// benchDense builds an n×n Dense with deterministic U(-1,1) entries.
func benchDense(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = m.Set(i, j, rng.Float64()*2-1); err != nil {
				b.Fatalf("Set: %v", err)
			}
		}
	}

	return m
}

func BenchmarkDecompose_Symmetric50(b *testing.B) {
	raw := benchDense(b, 50, 1)
	sym, err := matrix.Symmetrize(raw)
	if err != nil {
		b.Fatalf("Symmetrize: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = eigen.Decompose(sym); err != nil {
			b.Fatalf("Decompose: %v", err)
		}
	}
}

func BenchmarkDecompose_Nonsymmetric50(b *testing.B) {
	a := benchDense(b, 50, 2)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eigen.Decompose(a); err != nil {
			b.Fatalf("Decompose: %v", err)
		}
	}
}
