// SPDX-License-Identifier: MIT

package direct

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/jafarpenot/ter/sparse"
)

// ComplexCoordinates is a 1-based coordinate-form complex matrix of order N.
// In symmetric mode the upper triangle is mirrored without conjugation
// (Aᵀ = A), which is the complex-symmetric case, not the Hermitian one.
type ComplexCoordinates struct {
	N         int
	Rows      []int
	Cols      []int
	Values    []complex128
	Symmetric bool
}

// NewComplexCoordinates exports a square complex matrix in 1-based
// coordinate form. With symmetric, only entries with row <= column are kept.
func NewComplexCoordinates(a *sparse.Matrix[complex128], symmetric bool) (*ComplexCoordinates, error) {
	rows, cols, vals, err := export("NewComplexCoordinates", a, symmetric)
	if err != nil {
		return nil, err
	}

	return &ComplexCoordinates{N: a.RowCount(), Rows: rows, Cols: cols, Values: vals, Symmetric: symmetric}, nil
}

// Dense expands c into a dense complex matrix.
func (c *ComplexCoordinates) Dense() *mat.CDense {
	d := mat.NewCDense(c.N, c.N, nil)
	c.each(func(i, j int, v complex128) {
		d.Set(i, j, d.At(i, j)+v)
	})

	return d
}

// Block expands c = Ar + i·Ai into the real 2N×2N matrix
//
//	⎡Ar  −Ai⎤
//	⎣Ai   Ar⎦
//
// so that A·x = b becomes a real system in (Re x, Im x).
func (c *ComplexCoordinates) Block() *mat.Dense {
	n := c.N
	d := mat.NewDense(2*n, 2*n, nil)
	add := func(i, j int, v float64) { d.Set(i, j, d.At(i, j)+v) }
	c.each(func(i, j int, v complex128) {
		add(i, j, real(v))
		add(n+i, n+j, real(v))
		add(i, n+j, -imag(v))
		add(n+i, j, imag(v))
	})

	return d
}

// each visits every 0-based entry, mirroring off-diagonal ones in
// symmetric mode.
func (c *ComplexCoordinates) each(fn func(i, j int, v complex128)) {
	for k, v := range c.Values {
		i, j := c.Rows[k]-1, c.Cols[k]-1
		fn(i, j, v)
		if c.Symmetric && i != j {
			fn(j, i, v)
		}
	}
}

// ComplexSolver holds a factorization of a square complex system.
type ComplexSolver struct {
	n  int
	lu *mat.LU
}

// FactorizeComplex exports a, then factorizes it. Options and errors are
// those of Factorize; WithSymmetric only halves the transmitted entries.
func FactorizeComplex(a *sparse.Matrix[complex128], opts ...Option) (*ComplexSolver, error) {
	o := gatherOptions(opts...)
	coords, err := NewComplexCoordinates(a, o.symmetric)
	if err != nil {
		return nil, err
	}
	if !o.keepMatrix {
		a.Clear()
	}

	return FactorizeComplexCoordinates(coords)
}

// FactorizeComplexCoordinates factorizes the real block form of c with LU.
func FactorizeComplexCoordinates(c *ComplexCoordinates) (*ComplexSolver, error) {
	if c.N == 0 {
		return nil, fmt.Errorf("FactorizeComplexCoordinates: empty system: %w", ErrSingular)
	}
	var lu mat.LU
	lu.Factorize(c.Block())
	if lu.Det() == 0 {
		return nil, fmt.Errorf("FactorizeComplexCoordinates: %w", ErrSingular)
	}

	return &ComplexSolver{n: c.N, lu: &lu}, nil
}

// N returns the order of the factorized complex system.
func (s *ComplexSolver) N() int { return s.n }

// Solve overwrites rhs with the solution of A·x = rhs.
//
// Errors:
//   - ErrSizeMismatch, ErrNotFactorized, ErrSingular as for Solver.Solve.
func (s *ComplexSolver) Solve(rhs []complex128) error {
	if s == nil || s.lu == nil {
		return ErrNotFactorized
	}
	if len(rhs) != s.n {
		return fmt.Errorf("Solve: len(rhs)=%d, order %d: %w", len(rhs), s.n, ErrSizeMismatch)
	}
	b := mat.NewVecDense(2*s.n, nil)
	for i, v := range rhs {
		b.SetVec(i, real(v))
		b.SetVec(s.n+i, imag(v))
	}
	var x mat.VecDense
	if err := s.lu.SolveVecTo(&x, false, b); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return fmt.Errorf("Solve: %w: %w", ErrSingular, err)
		}
	}
	for i := range rhs {
		rhs[i] = complex(x.AtVec(i), x.AtVec(s.n+i))
	}

	return nil
}

// Clear releases the factorization.
func (s *ComplexSolver) Clear() { s.lu = nil }
