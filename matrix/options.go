// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense allocation and the
// closure postconditions.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by CheckSymmetric/CheckTriangle.
	DefaultEpsilon = 1e-9

	// DefaultAllowInfDistances permits +Inf ("no path") in Set/Fill.
	// NaN and -Inf are rejected regardless.
	DefaultAllowInfDistances = false

	// DefaultTriangleCheck makes Closure verify the triangle inequality (O(n³)).
	DefaultTriangleCheck = false
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps               float64
	allowInfDistances bool
	triangleCheck     bool
}

// WithEpsilon sets the numeric tolerance for postcondition checks.
// Panics when eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithAllowInfDistances permits +Inf entries to represent “no path”.
// Closure and Pivot always allocate with this policy.
func WithAllowInfDistances() Option {
	return func(o *Options) { o.allowInfDistances = true }
}

// WithTriangleCheck makes Closure verify d(i,j) <= d(i,k)+d(k,j)+eps for all
// triples before returning. Doubles the closure cost.
func WithTriangleCheck() Option {
	return func(o *Options) { o.triangleCheck = true }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:               DefaultEpsilon,
		allowInfDistances: DefaultAllowInfDistances,
		triangleCheck:     DefaultTriangleCheck,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
