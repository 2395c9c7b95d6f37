// Package ordering provides tunable options and error definitions
// for fill- and bandwidth-reducing reorderings of sparse matrices.
package ordering

import (
	"errors"
	"fmt"
)

// Sentinel errors for ordering.
var (
	// ErrNonSquare is returned when the matrix pattern is not square.
	ErrNonSquare = errors.New("ordering: matrix is not square")

	// ErrStartOutOfRange is returned when WithStart names a node outside [0,n).
	ErrStartOutOfRange = errors.New("ordering: start node out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ordering: invalid option supplied")
)

// Option configures the ordering via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for the level-structure walk.
type Options struct {
	// Start, if >= 0, seeds the first component at this node instead of a
	// pseudo-peripheral node.
	Start int

	// OnVisit is called when a node is appended to the Cuthill–McKee order
	// (before reversal), with its level in the component's level structure.
	OnVisit func(node, level int)

	err error
}

// DefaultOptions returns Options with automatic start selection and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Start:   -1,
		OnVisit: func(int, int) {},
	}
}

// WithStart seeds the walk at node v. Negative v is an option violation.
func WithStart(v int) Option {
	return func(o *Options) {
		if v < 0 {
			o.err = fmt.Errorf("%w: start cannot be negative (%d)", ErrOptionViolation, v)
			return
		}
		o.Start = v
	}
}

// WithOnVisit registers a callback run for every ordered node.
func WithOnVisit(fn func(node, level int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
