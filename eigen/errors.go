// SPDX-License-Identifier: MIT
// Package eigen: sentinel error set.
// Structural failures (nil, non-square, empty input) surface as the matrix
// package sentinels through the central validators; this file defines only
// the sentinels owned by the eigen package. All are matched via errors.Is.

package eigen

import "errors"

// ErrNoConvergence indicates that a QL or QR sweep exceeded its iteration
// cap before isolating an eigenvalue. It is returned by Decompose only when
// WithErrorOnNonConvergence is set; the accompanying Decomposition still
// carries the best available approximation.
var ErrNoConvergence = errors.New("eigen: iteration cap exceeded before convergence")
