// SPDX-License-Identifier: MIT
// Package eigen — nonsymmetric pipeline, stage one.
//
// Implementation:
//   - hessenbergReduce: orthogonal reduction of a general real matrix to
//     upper Hessenberg form via scaled Householder reflectors, followed by
//     accumulation of the product of reflectors (procedures orthes and
//     ortran, Handbook for Automatic Computation II).
//
// Determinism: fixed loop orders throughout.
// Complexity: O(n³) time, O(1) extra space beyond the caller's buffers.

package eigen

import "math"

// hessenbergReduce reduces h (n×n, row-major, stride n) to upper Hessenberg
// form in place and writes the accumulated orthogonal transform into v.
// ort is an n-length scratch buffer for the Householder vectors; its
// contents on return are unspecified.
//
// Entries of h below the first subdiagonal hold reflector remnants
// afterwards; the Schur iteration that follows only reads the Hessenberg
// part, so they are left in place rather than zeroed.
func hessenbergReduce(n int, h, v, ort []float64) {
	var (
		i, j, m     int
		scale, f, g float64
		sigma       float64
	)
	low := 0
	high := n - 1

	for m = low + 1; m <= high-1; m++ {
		// Scale the column to make the reflector robust to wide dynamic range.
		scale = 0.0
		for i = m; i <= high; i++ {
			scale += math.Abs(h[i*n+m-1])
		}
		if scale == 0.0 {
			continue // column already reduced
		}

		// Form the Householder vector for column m-1.
		sigma = 0.0
		for i = high; i >= m; i-- {
			ort[i] = h[i*n+m-1] / scale
			sigma += ort[i] * ort[i]
		}
		g = math.Sqrt(sigma)
		if ort[m] > 0 {
			g = -g
		}
		sigma -= ort[m] * g
		ort[m] -= g

		// Apply the similarity transformation H = (I - u·uᵀ/σ)·H·(I - u·uᵀ/σ).
		for j = m; j < n; j++ {
			f = 0.0
			for i = high; i >= m; i-- {
				f += ort[i] * h[i*n+j]
			}
			f /= sigma
			for i = m; i <= high; i++ {
				h[i*n+j] -= f * ort[i]
			}
		}
		for i = 0; i <= high; i++ {
			f = 0.0
			for j = high; j >= m; j-- {
				f += ort[j] * h[i*n+j]
			}
			f /= sigma
			for j = m; j <= high; j++ {
				h[i*n+j] -= f * ort[j]
			}
		}

		ort[m] *= scale
		h[m*n+m-1] = scale * g
	}

	// Accumulate the reflectors into v, in reverse order so each one is
	// applied to the identity exactly once.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				v[i*n+j] = 1.0
			} else {
				v[i*n+j] = 0.0
			}
		}
	}
	for m = high - 1; m >= low+1; m-- {
		if h[m*n+m-1] == 0.0 {
			continue // trivial reflector was skipped above
		}
		for i = m + 1; i <= high; i++ {
			ort[i] = h[i*n+m-1]
		}
		for j = m; j <= high; j++ {
			g = 0.0
			for i = m; i <= high; i++ {
				g += ort[i] * v[i*n+j]
			}
			// Double division avoids possible underflow in the product.
			g = (g / ort[m]) / h[m*n+m-1]
			for i = m; i <= high; i++ {
				v[i*n+j] += g * ort[i]
			}
		}
	}
}
