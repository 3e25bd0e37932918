// SPDX-License-Identifier: MIT
// Package eigen — functional options for Decompose.
//
// Purpose:
//   - Keep the Decompose signature stable while exposing tuning knobs.
//   - Centralize defaults so every call site shares one numeric policy.
//
// Policy:
//   - Options validate eagerly and panic on programmer error (invalid
//     arguments are bugs at the call site, not runtime conditions).
//   - gatherOptions applies defaults first, then user options in order;
//     the last write wins.

package eigen

import "math"

// Default option values. Exported so callers can reference the exact
// policy in their own configuration layers.
const (
	// DefaultMaxIterations caps the QL/QR sweeps spent isolating a single
	// eigenvalue before the iteration deflates with its best approximation.
	// 30 is the classic EISPACK budget; well-conditioned inputs converge in
	// a handful of sweeps.
	DefaultMaxIterations = 30

	// DefaultSymmetryEpsilon is the tolerance used when classifying the
	// input as symmetric. Zero demands exact elementwise equality
	// A[i,j] == A[j,i], which keeps the classification bit-reproducible.
	DefaultSymmetryEpsilon = 0.0
)

// Panic messages for invalid option arguments (programmer errors).
const (
	panicBadMaxIterations   = "eigen: WithMaxIterations: cap must be >= 1"
	panicBadSymmetryEpsilon = "eigen: WithSymmetryEpsilon: eps must be finite and >= 0"
)

// Options carries the resolved configuration for one Decompose call.
// Zero value is not meaningful; obtain instances via gatherOptions.
type Options struct {
	maxIterations   int     // per-eigenvalue sweep cap (>= 1)
	symmetryEps     float64 // |A[i,j]-A[j,i]| tolerance for the symmetric route
	errOnNonConverg bool    // escalate Converged()==false to ErrNoConvergence
}

// Option mutates Options during gathering.
type Option func(*Options)

// WithMaxIterations overrides the per-eigenvalue iteration cap.
// Panics if cap < 1. A cap of 1 is a cheap way to force the
// non-convergence path deterministically in tests.
func WithMaxIterations(limit int) Option {
	if limit < 1 {
		panic(panicBadMaxIterations)
	}
	return func(o *Options) { o.maxIterations = limit }
}

// WithSymmetryEpsilon overrides the symmetry-classification tolerance:
// the input is routed through the symmetric pipeline when
// |A[i,j]-A[j,i]| ≤ eps for all i<j. Panics on NaN, ±Inf or negative eps.
func WithSymmetryEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicBadSymmetryEpsilon)
	}
	return func(o *Options) { o.symmetryEps = eps }
}

// WithErrorOnNonConvergence makes Decompose return ErrNoConvergence when an
// iteration cap is exceeded, alongside the partial Decomposition. Without
// this option the partial result is returned silently and callers inspect
// Converged().
func WithErrorOnNonConvergence() Option {
	return func(o *Options) { o.errOnNonConverg = true }
}

// gatherOptions resolves defaults, then applies user options in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		maxIterations: DefaultMaxIterations,
		symmetryEps:   DefaultSymmetryEpsilon,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
