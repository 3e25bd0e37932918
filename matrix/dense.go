// SPDX-License-Identifier: MIT
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.

package matrix

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewFromFlat creates an r×c Dense matrix from a row-major flat slice.
// The slice is copied; the caller keeps ownership of vals.
// Stage 1 (Validate): shape > 0 and len(vals) == rows*cols.
// Stage 2 (Execute): copy vals into fresh backing storage.
// Complexity: O(r*c) time and memory.
func NewFromFlat(rows, cols int, vals []float64) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Validate backing length matches the requested shape
	if len(vals) != rows*cols {
		return nil, ErrDimensionMismatch
	}
	// Copy into fresh storage so the caller's slice stays independent
	data := make([]float64, rows*cols)
	copy(data, vals)

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewFromRows creates a Dense matrix from a slice of equal-length rows.
// Row data is copied; the caller keeps ownership of rows.
// Stage 1 (Validate): at least one row, all rows the same non-zero length.
// Stage 2 (Execute): copy row by row into fresh backing storage.
// Complexity: O(r*c) time and memory.
func NewFromRows(rows [][]float64) (*Dense, error) {
	// Validate outer dimension
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	r, c := len(rows), len(rows[0])
	data := make([]float64, r*c)
	for i, row := range rows {
		// Every row must match the width of the first
		if len(row) != c {
			return nil, ErrDimensionMismatch
		}
		copy(data[i*c:(i+1)*c], row)
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns a wrapped ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns a wrapped ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Flatten returns a fresh row-major copy of the backing storage.
// The returned slice is independent of the matrix; mutating it has no
// effect on m. Complexity: O(r*c).
//
// AI-Hints:
//   - Use Flatten to hand dense data to kernels that work on flat slices
//     (e.g. the eigen package) without exposing internal storage.
func (m *Dense) Flatten() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
