// SPDX-License-Identifier: MIT
// Package eigen — nonsymmetric pipeline, stage two.
//
// Implementation:
//   - schurIterate: Francis double-shift QR iteration on an upper
//     Hessenberg matrix, reducing it to real Schur form with deflation,
//     then back-substitution and back-transformation to recover real
//     eigenvectors (procedure hqr2, Handbook for Automatic Computation II).
//
// Shift schedule:
//   - The standard Francis double shift, with the classic ad hoc
//     exceptional shift after 10 stalled sweeps and the alternate
//     exceptional shift after 30. With the default iteration cap of 30 the
//     second exceptional shift is reachable only when the cap is raised.
//
// Determinism: fixed loop orders; deflation points depend only on the data.
// Complexity: O(n³) typical; each eigenvalue is bounded by the caller's cap.

package eigen

import "math"

// Sweep counts after which the exceptional shifts fire. Both are classic
// EISPACK constants, as are the replacement shift values below.
const (
	firstExceptionalSweep  = 10
	secondExceptionalSweep = 30

	adHocShiftY = 0.75    // replacement y after the first exceptional shift
	adHocShiftW = -0.4375 // replacement w after the first exceptional shift
	matlabShift = 0.964   // replacement w=x=y after the second
)

// schurIterate reduces the upper Hessenberg matrix h (nn×nn, row-major,
// stride nn) to real Schur form, accumulating transformations into v, which
// on entry holds the orthogonal matrix produced by hessenbergReduce.
// Eigenvalue real parts land in d, imaginary parts in e; a conjugate pair
// a ± i·b occupies adjacent slots with e[k] = +b, e[k+1] = -b. On return v
// holds the (generally non-orthogonal) real eigenvector matrix.
//
// maxIter caps the QR sweeps per eigenvalue; on overrun the trailing
// diagonal entry is deflated as a real eigenvalue approximation and the
// iteration continues. Returns false when any eigenvalue hit the cap.
func schurIterate(nn, maxIter int, h, v, d, e []float64) bool {
	var (
		i, j, k, m, l, iter   int
		p, q, r, s, z, t, w   float64
		x, y, ra, sa, vr, vi  float64
		norm, exshift, cr, ci float64
	)

	n := nn - 1
	low := 0
	high := nn - 1
	converged := true

	// Store isolated roots and compute the matrix norm used for the
	// relative deflation and zero tests.
	for i = 0; i < nn; i++ {
		if i < low || i > high {
			d[i] = h[i*nn+i]
			e[i] = 0.0
		}
		for j = max(i-1, 0); j < nn; j++ {
			norm += math.Abs(h[i*nn+j])
		}
	}

	// Outer loop: peel eigenvalues off the bottom of the active window.
	iter = 0
	for n >= low {
		// Look for a single small subdiagonal element.
		l = n
		for l > low {
			s = math.Abs(h[(l-1)*nn+(l-1)]) + math.Abs(h[l*nn+l])
			if s == 0.0 {
				s = norm
			}
			if math.Abs(h[l*nn+l-1]) < machineEpsilon*s {
				break
			}
			l--
		}

		switch {
		case l == n:
			// One real root found.
			h[n*nn+n] += exshift
			d[n] = h[n*nn+n]
			e[n] = 0.0
			n--
			iter = 0

		case l == n-1:
			// Two roots found; classify by the discriminant of the
			// trailing 2×2 block.
			w = h[n*nn+n-1] * h[(n-1)*nn+n]
			p = (h[(n-1)*nn+(n-1)] - h[n*nn+n]) / 2.0
			q = p*p + w
			z = math.Sqrt(math.Abs(q))
			h[n*nn+n] += exshift
			h[(n-1)*nn+(n-1)] += exshift
			x = h[n*nn+n]

			if q >= 0 {
				// Real pair.
				if p >= 0 {
					z = p + z
				} else {
					z = p - z
				}
				d[n-1] = x + z
				d[n] = d[n-1]
				if z != 0.0 {
					d[n] = x - w/z
				}
				e[n-1] = 0.0
				e[n] = 0.0
				x = h[n*nn+n-1]
				s = math.Abs(x) + math.Abs(z)
				p = x / s
				q = z / s
				r = math.Sqrt(p*p + q*q)
				p /= r
				q /= r

				// Row modification.
				for j = n - 1; j < nn; j++ {
					z = h[(n-1)*nn+j]
					h[(n-1)*nn+j] = q*z + p*h[n*nn+j]
					h[n*nn+j] = q*h[n*nn+j] - p*z
				}
				// Column modification.
				for i = 0; i <= n; i++ {
					z = h[i*nn+n-1]
					h[i*nn+n-1] = q*z + p*h[i*nn+n]
					h[i*nn+n] = q*h[i*nn+n] - p*z
				}
				// Accumulate transformations.
				for i = low; i <= high; i++ {
					z = v[i*nn+n-1]
					v[i*nn+n-1] = q*z + p*v[i*nn+n]
					v[i*nn+n] = q*v[i*nn+n] - p*z
				}
			} else {
				// Complex conjugate pair.
				d[n-1] = x + p
				d[n] = x + p
				e[n-1] = z
				e[n] = -z
			}
			n -= 2
			iter = 0

		default:
			// No convergence yet.
			if iter >= maxIter {
				// Cap hit: deflate the trailing entry with its best real
				// approximation so the outer loop always terminates.
				converged = false
				h[n*nn+n] += exshift
				d[n] = h[n*nn+n]
				e[n] = 0.0
				n--
				iter = 0
				continue
			}

			// Form the Francis shift from the trailing 2×2 block.
			x = h[n*nn+n]
			y = 0.0
			w = 0.0
			if l < n {
				y = h[(n-1)*nn+(n-1)]
				w = h[n*nn+n-1] * h[(n-1)*nn+n]
			}

			if iter == firstExceptionalSweep {
				// Ad hoc exceptional shift to break a stalled sweep.
				exshift += x
				for i = low; i <= n; i++ {
					h[i*nn+i] -= x
				}
				s = math.Abs(h[n*nn+n-1]) + math.Abs(h[(n-1)*nn+n-2])
				y = adHocShiftY * s
				x = y
				w = adHocShiftW * s * s
			}
			if iter == secondExceptionalSweep {
				s = (y - x) / 2.0
				s = s*s + w
				if s > 0 {
					s = math.Sqrt(s)
					if y < x {
						s = -s
					}
					s = x - w/((y-x)/2.0+s)
					for i = low; i <= n; i++ {
						h[i*nn+i] -= s
					}
					exshift += s
					w = matlabShift
					x = w
					y = w
				}
			}
			iter++

			// Look for two consecutive small subdiagonal elements.
			m = n - 2
			for m >= l {
				z = h[m*nn+m]
				r = x - z
				s = y - z
				p = (r*s-w)/h[(m+1)*nn+m] + h[m*nn+m+1]
				q = h[(m+1)*nn+m+1] - z - r - s
				r = h[(m+2)*nn+m+1]
				s = math.Abs(p) + math.Abs(q) + math.Abs(r)
				p /= s
				q /= s
				r /= s
				if m == l {
					break
				}
				if math.Abs(h[m*nn+m-1])*(math.Abs(q)+math.Abs(r)) <
					machineEpsilon*(math.Abs(p)*(math.Abs(h[(m-1)*nn+(m-1)])+math.Abs(z)+math.Abs(h[(m+1)*nn+(m+1)]))) {
					break
				}
				m--
			}
			for i = m + 2; i <= n; i++ {
				h[i*nn+i-2] = 0.0
				if i > m+2 {
					h[i*nn+i-3] = 0.0
				}
			}

			// Double QR step on rows l..n and columns m..n: chase the bulge
			// down the subdiagonal with 3×3 Householder reflectors.
			for k = m; k <= n-1; k++ {
				notlast := k != n-1
				if k != m {
					p = h[k*nn+k-1]
					q = h[(k+1)*nn+k-1]
					if notlast {
						r = h[(k+2)*nn+k-1]
					} else {
						r = 0.0
					}
					x = math.Abs(p) + math.Abs(q) + math.Abs(r)
					if x != 0.0 {
						p /= x
						q /= x
						r /= x
					}
				}
				if x == 0.0 {
					break
				}
				s = math.Sqrt(p*p + q*q + r*r)
				if p < 0 {
					s = -s
				}
				if s != 0 {
					if k != m {
						h[k*nn+k-1] = -s * x
					} else if l != m {
						h[k*nn+k-1] = -h[k*nn+k-1]
					}
					p += s
					x = p / s
					y = q / s
					z = r / s
					q /= p
					r /= p

					// Row modification.
					for j = k; j < nn; j++ {
						p = h[k*nn+j] + q*h[(k+1)*nn+j]
						if notlast {
							p += r * h[(k+2)*nn+j]
							h[(k+2)*nn+j] -= p * z
						}
						h[k*nn+j] -= p * x
						h[(k+1)*nn+j] -= p * y
					}
					// Column modification.
					for i = 0; i <= min(n, k+3); i++ {
						p = x*h[i*nn+k] + y*h[i*nn+k+1]
						if notlast {
							p += z * h[i*nn+k+2]
							h[i*nn+k+2] -= p * r
						}
						h[i*nn+k] -= p
						h[i*nn+k+1] -= p * q
					}
					// Accumulate transformations.
					for i = low; i <= high; i++ {
						p = x*v[i*nn+k] + y*v[i*nn+k+1]
						if notlast {
							p += z * v[i*nn+k+2]
							v[i*nn+k+2] -= p * r
						}
						v[i*nn+k] -= p
						v[i*nn+k+1] -= p * q
					}
				}
			}
		}
	}

	// All roots found. Backsubstitute to find vectors of the upper
	// triangular (quasi-triangular) form.
	if norm == 0.0 {
		return converged
	}

	for n = nn - 1; n >= 0; n-- {
		p = d[n]
		q = e[n]

		if q == 0 {
			// Real eigenvector.
			l = n
			h[n*nn+n] = 1.0
			for i = n - 1; i >= 0; i-- {
				w = h[i*nn+i] - p
				r = 0.0
				for j = l; j <= n; j++ {
					r += h[i*nn+j] * h[j*nn+n]
				}
				if e[i] < 0.0 {
					z = w
					s = r
				} else {
					l = i
					if e[i] == 0.0 {
						if w != 0.0 {
							h[i*nn+n] = -r / w
						} else {
							h[i*nn+n] = -r / (machineEpsilon * norm)
						}
					} else {
						// Solve the real 2×2 system for the pair rows.
						x = h[i*nn+i+1]
						y = h[(i+1)*nn+i]
						q = (d[i]-p)*(d[i]-p) + e[i]*e[i]
						t = (x*s - z*r) / q
						h[i*nn+n] = t
						if math.Abs(x) > math.Abs(z) {
							h[(i+1)*nn+n] = (-r - w*t) / x
						} else {
							h[(i+1)*nn+n] = (-s - y*t) / z
						}
					}

					// Overflow control.
					t = math.Abs(h[i*nn+n])
					if (machineEpsilon*t)*t > 1 {
						for j = i; j <= n; j++ {
							h[j*nn+n] /= t
						}
					}
				}
			}
		} else if q < 0 {
			// Complex eigenvector; only the slot with negative e[n] is
			// processed, yielding both components of the pair.
			l = n - 1

			// Last vector component imaginary, so the matrix is triangular.
			if math.Abs(h[n*nn+n-1]) > math.Abs(h[(n-1)*nn+n]) {
				h[(n-1)*nn+(n-1)] = q / h[n*nn+n-1]
				h[(n-1)*nn+n] = -(h[n*nn+n] - p) / h[n*nn+n-1]
			} else {
				cr, ci = complexDiv(0.0, -h[(n-1)*nn+n], h[(n-1)*nn+(n-1)]-p, q)
				h[(n-1)*nn+(n-1)] = cr
				h[(n-1)*nn+n] = ci
			}
			h[n*nn+n-1] = 0.0
			h[n*nn+n] = 1.0
			for i = n - 2; i >= 0; i-- {
				ra = 0.0
				sa = 0.0
				for j = l; j <= n; j++ {
					ra += h[i*nn+j] * h[j*nn+n-1]
					sa += h[i*nn+j] * h[j*nn+n]
				}
				w = h[i*nn+i] - p

				if e[i] < 0.0 {
					z = w
					r = ra
					s = sa
				} else {
					l = i
					if e[i] == 0 {
						cr, ci = complexDiv(-ra, -sa, w, q)
						h[i*nn+n-1] = cr
						h[i*nn+n] = ci
					} else {
						// Solve the complex 2×2 system for the pair rows.
						x = h[i*nn+i+1]
						y = h[(i+1)*nn+i]
						vr = (d[i]-p)*(d[i]-p) + e[i]*e[i] - q*q
						vi = (d[i] - p) * 2.0 * q
						if vr == 0.0 && vi == 0.0 {
							vr = machineEpsilon * norm *
								(math.Abs(w) + math.Abs(q) + math.Abs(x) + math.Abs(y) + math.Abs(z))
						}
						cr, ci = complexDiv(x*r-z*ra+q*sa, x*s-z*sa-q*ra, vr, vi)
						h[i*nn+n-1] = cr
						h[i*nn+n] = ci
						if math.Abs(x) > math.Abs(z)+math.Abs(q) {
							h[(i+1)*nn+n-1] = (-ra - w*h[i*nn+n-1] + q*h[i*nn+n]) / x
							h[(i+1)*nn+n] = (-sa - w*h[i*nn+n] - q*h[i*nn+n-1]) / x
						} else {
							cr, ci = complexDiv(-r-y*h[i*nn+n-1], -s-y*h[i*nn+n], z, q)
							h[(i+1)*nn+n-1] = cr
							h[(i+1)*nn+n] = ci
						}
					}

					// Overflow control.
					t = math.Max(math.Abs(h[i*nn+n-1]), math.Abs(h[i*nn+n]))
					if (machineEpsilon*t)*t > 1 {
						for j = i; j <= n; j++ {
							h[j*nn+n-1] /= t
							h[j*nn+n] /= t
						}
					}
				}
			}
		}
	}

	// Vectors of isolated roots.
	for i = 0; i < nn; i++ {
		if i < low || i > high {
			for j = i; j < nn; j++ {
				v[i*nn+j] = h[i*nn+j]
			}
		}
	}

	// Back transformation to get eigenvectors of the original matrix.
	for j = nn - 1; j >= low; j-- {
		for i = low; i <= high; i++ {
			z = 0.0
			for k = low; k <= min(j, high); k++ {
				z += v[i*nn+k] * h[k*nn+j]
			}
			v[i*nn+j] = z
		}
	}

	return converged
}
