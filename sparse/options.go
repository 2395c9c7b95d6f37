// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions helper that resolves the effective configuration.
//
// Notes:
//   - The bounds-checking mode is fixed at construction and inherited by every
//     row a matrix owns and by every matrix derived from it (Add, Scale,
//     Transpose, MatMul, Permute, Clone).
//   - Unchecked mode skips every explicit index validation on accessors and on
//     AddInteraction. Out-of-range access then falls through to the Go runtime
//     (slice bounds panic) or silently writes past the logical shape.
package sparse

// Defaults (single source of truth).
const (
	// DefaultBoundsCheck enables IndexError reporting on every public accessor.
	DefaultBoundsCheck = true

	// DefaultRowCapacity is the initial per-row capacity reserved on allocation.
	// Zero means rows grow on demand.
	DefaultRowCapacity = 0
)

const panicRowCapacityInvalid = "sparse: WithRowCapacity: capacity must be >= 0"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	boundsCheck bool // DefaultBoundsCheck
	rowCapacity int  // DefaultRowCapacity
}

// WithBoundsCheck selects checked (true) or unchecked (false) index access.
//
// Checked mode reports ErrOutOfRange from accessors and AddInteraction.
// Unchecked mode trades that safety for the absence of per-call comparisons;
// misuse is then undefined from the package's point of view.
func WithBoundsCheck(enabled bool) Option {
	return func(o *Options) {
		o.boundsCheck = enabled
	}
}

// WithRowCapacity reserves capacity for k nonzeros in every row at allocation.
// Panics if k < 0.
func WithRowCapacity(k int) Option {
	if k < 0 {
		panic(panicRowCapacityInvalid)
	}

	return func(o *Options) {
		o.rowCapacity = k
	}
}

// defaultOptions returns the zero-configuration baseline.
func defaultOptions() Options {
	return Options{
		boundsCheck: DefaultBoundsCheck,
		rowCapacity: DefaultRowCapacity,
	}
}

// gatherOptions applies opts in order over the defaults. Later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
