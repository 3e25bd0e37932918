// SPDX-License-Identifier: MIT
// Package eigen — symmetric pipeline.
//
// Implementation:
//   - tridiagonalize: Householder reduction of a symmetric matrix to
//     tridiagonal form with accumulation of the orthogonal transform
//     (procedure tred2, Handbook for Automatic Computation II).
//   - qlIterate: implicit-shift QL iteration on the tridiagonal pair (d, e)
//     with eigenvector accumulation and a final ascending sort
//     (procedure tql2, ibid.).
//
// Determinism:
//   - Fixed loop orders, no data-dependent reordering beyond the
//     deterministic selection sort at the end of qlIterate.
//
// Complexity: O(n³) for both stages combined; O(1) extra space beyond the
// caller-provided buffers.

package eigen

import "math"

// tridiagonalize reduces a symmetric matrix to tridiagonal form.
//
// On entry v (n×n, row-major, stride n) holds the symmetric input; only its
// lower triangle is read. On return v holds the accumulated orthogonal
// transform Q, d the diagonal of the tridiagonal form, and e its
// subdiagonal in e[1..n-1] (e[0] == 0).
func tridiagonalize(n int, v, d, e []float64) {
	var (
		i, j, k        int
		scale, h, f, g float64
		hh             float64
	)

	for j = 0; j < n; j++ {
		d[j] = v[(n-1)*n+j]
	}

	// Householder reduction, one reflector per column from the bottom up.
	for i = n - 1; i > 0; i-- {
		// Scale to avoid under/overflow while forming the reflector.
		scale = 0.0
		h = 0.0
		for k = 0; k < i; k++ {
			scale += math.Abs(d[k])
		}
		if scale == 0.0 {
			// Row already reduced; record the trivial subdiagonal entry.
			e[i] = d[i-1]
			for j = 0; j < i; j++ {
				d[j] = v[(i-1)*n+j]
				v[i*n+j] = 0.0
				v[j*n+i] = 0.0
			}
		} else {
			// Generate the Householder vector in d[0..i-1].
			for k = 0; k < i; k++ {
				d[k] /= scale
				h += d[k] * d[k]
			}
			f = d[i-1]
			g = math.Sqrt(h)
			if f > 0 {
				g = -g
			}
			e[i] = scale * g
			h -= f * g
			d[i-1] = f - g
			for j = 0; j < i; j++ {
				e[j] = 0.0
			}

			// Apply the similarity transformation to the remaining submatrix.
			for j = 0; j < i; j++ {
				f = d[j]
				v[j*n+i] = f
				g = e[j] + v[j*n+j]*f
				for k = j + 1; k <= i-1; k++ {
					g += v[k*n+j] * d[k]
					e[k] += v[k*n+j] * f
				}
				e[j] = g
			}
			f = 0.0
			for j = 0; j < i; j++ {
				e[j] /= h
				f += e[j] * d[j]
			}
			hh = f / (h + h)
			for j = 0; j < i; j++ {
				e[j] -= hh * d[j]
			}
			for j = 0; j < i; j++ {
				f = d[j]
				g = e[j]
				for k = j; k <= i-1; k++ {
					v[k*n+j] -= f*e[k] + g*d[k]
				}
				d[j] = v[(i-1)*n+j]
				v[i*n+j] = 0.0
			}
		}
		d[i] = h
	}

	// Accumulate the transformations into v.
	for i = 0; i < n-1; i++ {
		v[(n-1)*n+i] = v[i*n+i]
		v[i*n+i] = 1.0
		h = d[i+1]
		if h != 0.0 {
			for k = 0; k <= i; k++ {
				d[k] = v[k*n+i+1] / h
			}
			for j = 0; j <= i; j++ {
				g = 0.0
				for k = 0; k <= i; k++ {
					g += v[k*n+i+1] * v[k*n+j]
				}
				for k = 0; k <= i; k++ {
					v[k*n+j] -= g * d[k]
				}
			}
		}
		for k = 0; k <= i; k++ {
			v[k*n+i+1] = 0.0
		}
	}
	for j = 0; j < n; j++ {
		d[j] = v[(n-1)*n+j]
		v[(n-1)*n+j] = 0.0
	}
	v[(n-1)*n+(n-1)] = 1.0
	e[0] = 0.0
}

// qlIterate diagonalizes the tridiagonal pair (d, e) in place with the
// implicit-shift QL iteration, accumulating rotations into v. maxIter caps
// the sweeps spent on each eigenvalue; on overrun the current approximation
// is accepted, the affected eigenvalue is deflated, and the sweep carries
// on. Eigenvalues are sorted ascending with their eigenvector columns.
//
// Returns false when any eigenvalue hit the cap.
func qlIterate(n, maxIter int, v, d, e []float64) bool {
	var (
		i, k, l, m, iter          int
		f, tst1, g, p, r, dl1, h  float64
		c, c2, c3, el1, s, s2, sp float64
	)

	// Shift the subdiagonal down so e[l] pairs with d[l] during the sweep.
	for i = 1; i < n; i++ {
		e[i-1] = e[i]
	}
	e[n-1] = 0.0

	converged := true
	f = 0.0
	tst1 = 0.0
	for l = 0; l < n; l++ {
		// Find a small subdiagonal element relative to the running scale.
		tst1 = math.Max(tst1, math.Abs(d[l])+math.Abs(e[l]))
		m = l
		for m < n {
			if math.Abs(e[m]) <= machineEpsilon*tst1 {
				break
			}
			m++
		}

		// If m == l, d[l] is an eigenvalue already; otherwise iterate.
		if m > l {
			iter = 0
			for {
				iter++
				if iter > maxIter {
					// Cap hit: accept the current approximation for d[l]
					// and deflate so the sweep always terminates.
					converged = false
					break
				}

				// Compute the implicit shift.
				g = d[l]
				p = (d[l+1] - g) / (2.0 * e[l])
				r = math.Hypot(p, 1.0)
				if p < 0 {
					r = -r
				}
				d[l] = e[l] / (p + r)
				d[l+1] = e[l] * (p + r)
				dl1 = d[l+1]
				h = g - d[l]
				for i = l + 2; i < n; i++ {
					d[i] -= h
				}
				f += h

				// QL sweep with implicit shift.
				p = d[m]
				c = 1.0
				c2 = c
				c3 = c
				el1 = e[l+1]
				s = 0.0
				s2 = 0.0
				for i = m - 1; i >= l; i-- {
					c3 = c2
					c2 = c
					s2 = s
					g = c * e[i]
					h = c * p
					r = math.Hypot(p, e[i])
					e[i+1] = s * r
					s = e[i] / r
					c = p / r
					p = c*d[i] - s*g
					d[i+1] = h + s*(c*g+s*d[i])

					// Accumulate the rotation into the eigenvector columns.
					for k = 0; k < n; k++ {
						sp = v[k*n+i+1]
						v[k*n+i+1] = s*v[k*n+i] + c*sp
						v[k*n+i] = c*v[k*n+i] - s*sp
					}
				}
				p = -s * s2 * c3 * el1 * e[l] / dl1
				e[l] = s * p
				d[l] = c * p

				if math.Abs(e[l]) <= machineEpsilon*tst1 {
					break
				}
			}
		}
		d[l] += f
		e[l] = 0.0
	}

	sortEigenpairs(n, v, d)

	return converged
}

// sortEigenpairs orders eigenvalues ascending, swapping the matching
// eigenvector columns of v alongside. Deterministic selection sort; the
// O(n²) comparisons are negligible next to the O(n³) iteration above.
func sortEigenpairs(n int, v, d []float64) {
	var (
		i, j, k int
		p, t    float64
	)
	for i = 0; i < n-1; i++ {
		k = i
		p = d[i]
		for j = i + 1; j < n; j++ {
			if d[j] < p {
				k = j
				p = d[j]
			}
		}
		if k != i {
			d[k] = d[i]
			d[i] = p
			for j = 0; j < n; j++ {
				t = v[j*n+i]
				v[j*n+i] = v[j*n+k]
				v[j*n+k] = t
			}
		}
	}
}
