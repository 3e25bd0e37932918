package eigen_test

import (
	"fmt"

	"github.com/katalvlaran/spectral/eigen"
	"github.com/katalvlaran/spectral/matrix"
)

// ExampleDecompose decomposes a symmetric matrix and prints its spectrum,
// sorted ascending by the symmetric pipeline.
func ExampleDecompose() {
	a, _ := matrix.NewFromFlat(2, 2, []float64{3, 0, 0, 1})

	dec, _ := eigen.Decompose(a)
	fmt.Println("symmetric:", dec.Symmetric())
	fmt.Println("eigenvalues:", dec.RealParts())

	// Output:
	// symmetric: true
	// eigenvalues: [1 3]
}

// ExampleDecomposition_BlockDiagonal rebuilds the eigenvalue matrix of a
// rotation, whose spectrum is the conjugate pair ±i.
func ExampleDecomposition_BlockDiagonal() {
	a, _ := matrix.NewFromFlat(2, 2, []float64{0, 1, -1, 0})

	dec, _ := eigen.Decompose(a)
	D, _ := matrix.NewZeros(2, 2)
	_ = dec.BlockDiagonal(D)
	fmt.Print(D)

	// Output:
	// [0, 1]
	// [-1, 0]
}
