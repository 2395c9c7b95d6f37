// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"

	"github.com/jafarpenot/ter/sparse"
)

var (
	// ErrNotImplemented is the panic cause raised by BaseOperator methods that
	// a concrete operator forgot to override.
	ErrNotImplemented = errors.New("solver: operation not implemented for this operator")

	// ErrDimensionMismatch reports operator/vector shapes that cannot be combined.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch")
)

// Operator is the matrix-vector contract consumed by the iterative solvers.
// *sparse.Matrix[T] satisfies it; matrix-free operators can too.
type Operator[T sparse.Scalar] interface {
	// RowCount returns m.
	RowCount() int
	// ColumnCount returns n.
	ColumnCount() int
	// Product computes y = A·x, with len(x) == n and len(y) == m.
	Product(x, y []T)
	// ProductAdd computes y += alpha·A·x.
	ProductAdd(alpha T, x, y []T)
}

var _ Operator[float64] = (*sparse.Matrix[float64])(nil)

// BaseOperator carries the shape of an operator and nothing else.
// It is meant to be embedded: the embedding type overrides the products it
// supports. Reaching a product that was not overridden is a programming
// error and panics with an error wrapping ErrNotImplemented.
type BaseOperator[T sparse.Scalar] struct {
	M, N int
}

// RowCount returns M.
func (b BaseOperator[T]) RowCount() int { return b.M }

// ColumnCount returns N.
func (b BaseOperator[T]) ColumnCount() int { return b.N }

// Product panics: it must be overridden.
func (b BaseOperator[T]) Product(_, _ []T) {
	panic(fmt.Errorf("BaseOperator.Product (%dx%d): %w", b.M, b.N, ErrNotImplemented))
}

// ProductAdd panics: it must be overridden.
func (b BaseOperator[T]) ProductAdd(_ T, _, _ []T) {
	panic(fmt.Errorf("BaseOperator.ProductAdd (%dx%d): %w", b.M, b.N, ErrNotImplemented))
}

// FuncOperator is a matrix-free operator defined by its product y = A·x.
// ProductAdd is derived from Apply through a scratch vector.
type FuncOperator[T sparse.Scalar] struct {
	BaseOperator[T]
	Apply func(x, y []T)

	scratch []T
}

// NewFuncOperator wraps apply as an m×n operator.
func NewFuncOperator[T sparse.Scalar](m, n int, apply func(x, y []T)) *FuncOperator[T] {
	return &FuncOperator[T]{BaseOperator: BaseOperator[T]{M: m, N: n}, Apply: apply}
}

// Product implements Operator.
func (f *FuncOperator[T]) Product(x, y []T) {
	checkLengths("FuncOperator.Product", f.M, f.N, x, y)
	f.Apply(x, y)
}

// ProductAdd implements Operator.
func (f *FuncOperator[T]) ProductAdd(alpha T, x, y []T) {
	checkLengths("FuncOperator.ProductAdd", f.M, f.N, x, y)
	if len(f.scratch) != f.M {
		f.scratch = make([]T, f.M)
	}
	f.Apply(x, f.scratch)
	for i, v := range f.scratch {
		y[i] += alpha * v
	}
}

// checkLengths panics when x or y does not fit an m×n operator.
func checkLengths[T sparse.Scalar](op string, m, n int, x, y []T) {
	if len(x) != n || len(y) != m {
		panic(fmt.Errorf("%s: len(x)=%d len(y)=%d for %dx%d: %w", op, len(x), len(y), m, n, ErrDimensionMismatch))
	}
}
