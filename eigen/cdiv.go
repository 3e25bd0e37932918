// SPDX-License-Identifier: MIT

package eigen

import "math"

// complexDiv computes the complex quotient (xr + i·xi) / (yr + i·yi) in
// real arithmetic. The division is normalized by the larger-magnitude
// component of the denominator (Smith's algorithm), so intermediate
// products stay bounded where the naive formula would overflow or lose
// precision for denominators near the floating-point range limits.
//
// The denominator must be nonzero; callers in the Schur back-substitution
// guard against y == 0 before dividing.
func complexDiv(xr, xi, yr, yi float64) (float64, float64) {
	var r, d float64
	if math.Abs(yr) > math.Abs(yi) {
		r = yi / yr
		d = yr + r*yi
		return (xr + r*xi) / d, (xi - r*xr) / d
	}
	r = yr / yi
	d = yi + r*yr
	return (r*xr + xi) / d, (r*xi - xr) / d
}
