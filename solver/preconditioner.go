// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/jafarpenot/ter/sparse"
)

// Preconditioner applies an approximation of A⁻¹ to a residual: z ≈ A⁻¹·r.
// For COCG the preconditioner must itself be (complex) symmetric.
type Preconditioner[T sparse.Scalar] interface {
	Solve(r, z []T)
}

// Identity is the trivial preconditioner z = r.
type Identity[T sparse.Scalar] struct{}

// Solve copies r into z.
func (Identity[T]) Solve(r, z []T) { copy(z, r) }

// Jacobi scales the residual by the inverted diagonal: z[i] = r[i] / A(i,i).
type Jacobi[T sparse.Scalar] struct {
	invDiag []T
}

// NewJacobi extracts the inverted diagonal of a.
//
// Errors:
//   - sparse.ErrNonSquare, sparse.ErrZeroDiagonal (wrapped).
func NewJacobi[T sparse.Scalar](a *sparse.Matrix[T]) (*Jacobi[T], error) {
	inv, err := a.InvDiagonal()
	if err != nil {
		return nil, fmt.Errorf("NewJacobi: %w", err)
	}

	return &Jacobi[T]{invDiag: inv}, nil
}

// Solve implements Preconditioner.
func (j *Jacobi[T]) Solve(r, z []T) {
	for i, d := range j.invDiag {
		z[i] = d * r[i]
	}
}

// SSOR applies one symmetric over-relaxation sweep from a zero guess, which
// is a symmetric approximation of A⁻¹ for 0 < omega < 2.
type SSOR[T sparse.Scalar] struct {
	a       *sparse.Matrix[T]
	invDiag []T
	omega   T
}

// NewSSOR prepares an SSOR preconditioner for a with relaxation factor omega.
//
// Errors:
//   - sparse.ErrNonSquare, sparse.ErrZeroDiagonal (wrapped).
func NewSSOR[T sparse.Scalar](a *sparse.Matrix[T], omega T) (*SSOR[T], error) {
	inv, err := a.InvDiagonal()
	if err != nil {
		return nil, fmt.Errorf("NewSSOR: %w", err)
	}

	return &SSOR[T]{a: a, invDiag: inv, omega: omega}, nil
}

// Solve implements Preconditioner.
func (s *SSOR[T]) Solve(r, z []T) {
	clear(z)
	s.a.ApplySSOR(r, s.invDiag, z, s.omega)
}
