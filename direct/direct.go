// SPDX-License-Identifier: MIT

// Package direct hands sparse matrices to a dense direct factorization.
//
// The hand-off follows the usual sparse direct-solver convention: the matrix
// is exported as a coordinate list with 1-based row and column numbers; in
// symmetric mode only the upper triangle (row <= column) is transmitted. The
// factorization itself is delegated to gonum (Cholesky for symmetric positive
// definite input, LU otherwise). Complex systems are factorized through
// their real 2n×2n block form. Solve overwrites the right-hand side with
// the solution.
package direct

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/jafarpenot/ter/sparse"
)

// Sentinel errors.
var (
	// ErrSizeMismatch is returned when a vector does not match the system order.
	ErrSizeMismatch = errors.New("direct: size mismatch")

	// ErrNotSquare is returned when the matrix to factorize is not square.
	ErrNotSquare = errors.New("direct: matrix is not square")

	// ErrSingular is returned when the factorization detects a singular matrix.
	ErrSingular = errors.New("direct: singular matrix")

	// ErrNotFactorized is returned by Solve on a zero-value or cleared Solver.
	ErrNotFactorized = errors.New("direct: no factorization")
)

// Defaults.
const (
	// DefaultSymmetric transmits the full pattern.
	DefaultSymmetric = false

	// DefaultKeepMatrix releases the caller's matrix after the hand-off.
	DefaultKeepMatrix = false
)

// Option configures Factorize.
type Option func(*Options)

// Options is the effective Factorize configuration.
type Options struct {
	symmetric  bool
	keepMatrix bool
}

// WithSymmetric declares the matrix symmetric: only its upper triangle is
// transmitted and Cholesky is attempted first.
func WithSymmetric(sym bool) Option {
	return func(o *Options) { o.symmetric = sym }
}

// WithKeepMatrix keeps the caller's matrix intact. When false (the default)
// the matrix is cleared after the coordinate export.
func WithKeepMatrix(keep bool) Option {
	return func(o *Options) { o.keepMatrix = keep }
}

func gatherOptions(opts ...Option) Options {
	o := Options{symmetric: DefaultSymmetric, keepMatrix: DefaultKeepMatrix}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Coordinates is a 1-based coordinate-form matrix of order N.
type Coordinates struct {
	N         int
	Rows      []int
	Cols      []int
	Values    []float64
	Symmetric bool
}

// NewCoordinates exports a square matrix in 1-based coordinate form.
// With symmetric, only entries with row <= column are kept.
func NewCoordinates(a *sparse.Matrix[float64], symmetric bool) (*Coordinates, error) {
	rows, cols, vals, err := export("NewCoordinates", a, symmetric)
	if err != nil {
		return nil, err
	}

	return &Coordinates{N: a.RowCount(), Rows: rows, Cols: cols, Values: vals, Symmetric: symmetric}, nil
}

// export lists the stored entries of a square matrix with 1-based indices.
func export[T float64 | complex128](op string, a *sparse.Matrix[T], upperOnly bool) ([]int, []int, []T, error) {
	m, n := a.Dims()
	if m != n {
		return nil, nil, nil, fmt.Errorf("%s(%dx%d): %w", op, m, n, ErrNotSquare)
	}
	ts := a.Triplets(upperOnly)
	rows, cols, vals := make([]int, len(ts)), make([]int, len(ts)), make([]T, len(ts))
	for k, t := range ts {
		rows[k] = t.Row + 1
		cols[k] = t.Col + 1
		vals[k] = t.Value
	}

	return rows, cols, vals, nil
}

// Dense expands c into a dense matrix, mirroring the upper triangle in
// symmetric mode. Coinciding coordinates are summed.
func (c *Coordinates) Dense() *mat.Dense {
	d := mat.NewDense(c.N, c.N, nil)
	for k, v := range c.Values {
		i, j := c.Rows[k]-1, c.Cols[k]-1
		d.Set(i, j, d.At(i, j)+v)
		if c.Symmetric && i != j {
			d.Set(j, i, d.At(j, i)+v)
		}
	}

	return d
}

// Solver holds a factorization of a square system.
type Solver struct {
	n    int
	lu   *mat.LU
	chol *mat.Cholesky
}

// Factorize exports a, then factorizes it.
//
// Errors:
//   - ErrNotSquare for rectangular input, ErrSingular when the factorization
//     is numerically singular. An empty (0×0) matrix is rejected as singular.
func Factorize(a *sparse.Matrix[float64], opts ...Option) (*Solver, error) {
	o := gatherOptions(opts...)
	coords, err := NewCoordinates(a, o.symmetric)
	if err != nil {
		return nil, err
	}
	if !o.keepMatrix {
		a.Clear()
	}

	return FactorizeCoordinates(coords)
}

// FactorizeCoordinates factorizes a coordinate-form matrix.
func FactorizeCoordinates(c *Coordinates) (*Solver, error) {
	if c.N == 0 {
		return nil, fmt.Errorf("FactorizeCoordinates: empty system: %w", ErrSingular)
	}
	d := c.Dense()
	s := &Solver{n: c.N}
	if c.Symmetric {
		var chol mat.Cholesky
		if chol.Factorize(mat.NewSymDense(c.N, d.RawMatrix().Data)) {
			s.chol = &chol
			return s, nil
		}
	}
	var lu mat.LU
	lu.Factorize(d)
	if lu.Det() == 0 {
		return nil, fmt.Errorf("FactorizeCoordinates: %w", ErrSingular)
	}
	s.lu = &lu

	return s, nil
}

// N returns the order of the factorized system.
func (s *Solver) N() int { return s.n }

// Solve overwrites rhs with the solution of A·x = rhs.
//
// Errors:
//   - ErrSizeMismatch if len(rhs) != N(); ErrNotFactorized on an empty Solver;
//     ErrSingular if gonum reports the system too ill-conditioned to solve.
func (s *Solver) Solve(rhs []float64) error {
	if s == nil || (s.lu == nil && s.chol == nil) {
		return ErrNotFactorized
	}
	if len(rhs) != s.n {
		return fmt.Errorf("Solve: len(rhs)=%d, order %d: %w", len(rhs), s.n, ErrSizeMismatch)
	}
	b := mat.NewVecDense(s.n, rhs)
	var x mat.VecDense
	var err error
	if s.chol != nil {
		err = s.chol.SolveVecTo(&x, b)
	} else {
		err = s.lu.SolveVecTo(&x, false, b)
	}
	if err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return fmt.Errorf("Solve: %w: %w", ErrSingular, err)
		}
	}
	copy(rhs, x.RawVector().Data)

	return nil
}

// Clear releases the factorization.
func (s *Solver) Clear() {
	s.lu, s.chol = nil, nil
}
