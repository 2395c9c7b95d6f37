// SPDX-License-Identifier: MIT

// Package solver: functional configuration for the iterative solvers.
//
// Defaults mirror the usual stopping rule: relative residual 1e-6 or 1000
// iterations, whichever comes first. Option constructors panic on
// nonsensical values (programmer error).

package solver

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// Defaults (single source of truth).
const (
	// DefaultTolerance is the relative-residual threshold ‖r‖₂/‖b‖₂.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps the number of Krylov iterations.
	DefaultMaxIterations = 1000

	// DefaultReportEvery is the residual reporting period, in iterations.
	DefaultReportEvery = 10

	// DefaultHistory disables per-iteration residual recording.
	DefaultHistory = false
)

const (
	panicToleranceInvalid   = "solver: WithTolerance: tolerance must be finite and >= 0"
	panicMaxIterInvalid     = "solver: WithMaxIterations: cap must be >= 0"
	panicReportEveryInvalid = "solver: WithReportEvery: period must be > 0"
	panicLoggerNil          = "solver: WithLogger: logger must not be nil"
)

// Option mutates solver options.
type Option func(*Options)

// Options is the effective solver configuration.
type Options struct {
	tol         float64
	maxIter     int
	reportEvery int
	history     bool
	log         logrus.FieldLogger
}

// WithTolerance sets the relative-residual threshold. Panics if tol < 0 or
// not finite.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations sets the iteration cap. Zero performs no iteration and
// only evaluates the initial residual. Panics if n < 0.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithReportEvery sets the period of the residual report. Panics if n <= 0.
func WithReportEvery(n int) Option {
	if n <= 0 {
		panic(panicReportEveryInvalid)
	}

	return func(o *Options) { o.reportEvery = n }
}

// WithHistory records the relative residual after every iteration in
// Result.History (the initial residual first).
func WithHistory(enabled bool) Option {
	return func(o *Options) { o.history = enabled }
}

// WithLogger routes residual reports to l. Panics if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.log = l }
}

// discardLogger is the silent default.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		tol:         DefaultTolerance,
		maxIter:     DefaultMaxIterations,
		reportEvery: DefaultReportEvery,
		history:     DefaultHistory,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.log == nil {
		o.log = discardLogger()
	}

	return o
}
