// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jafarpenot/ter/sparse"
)

// Status tells how an iterative solve ended.
type Status int

const (
	// Converged: the relative residual reached the tolerance.
	Converged Status = iota
	// Exhausted: the iteration cap was hit first.
	Exhausted
	// Diverged: the relative residual became NaN or ±Inf, typically a
	// breakdown (zero ⟨p, A·p⟩ or ⟨r, z⟩) on a matrix outside the method's
	// domain.
	Diverged
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	case Diverged:
		return "diverged"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result summarises a solve.
type Result struct {
	// Iterations performed.
	Iterations int
	// Residual is the relative residual ‖b − A·x‖₂/‖b‖₂ at exit, as tracked
	// by the recurrence.
	Residual float64
	Status   Status
	// History holds the relative residual before the first iteration and
	// after each one. Nil unless WithHistory(true).
	History []float64
}

// ConjugateGradient solves A·x = b with the conjugate orthogonal conjugate
// gradient method (COCG), updating x in place from the initial guess it holds.
// MAIN DESCRIPTION:
//   - Preconditioned CG where every inner product is the unconjugated bilinear
//     form ⟨u, v⟩ = Σ u[i]·v[i]. For real symmetric A this is classic PCG; for
//     complex symmetric (Aᵀ = A, not Hermitian) A it is COCG.
//   - Not valid for non-symmetric or complex Hermitian matrices.
//
// Implementation:
//   - Stage 1: r = b − A·x; if ‖b‖ = 0, x is zeroed and the solve converges.
//   - Stage 2: while ‖r‖/‖b‖ > tol and k < cap:
//     z = M⁻¹r; ρ = ⟨r, z⟩; p = z on the first pass, else p = (ρ/ρ_prev)·p + z;
//     q = A·p; α = ρ/⟨p, q⟩; x += α·p; r −= α·q.
//   - Stage 3: every ReportEvery iterations log the relative residual at Info.
//
// Returns:
//   - Result with Status Converged, Exhausted (cap reached) or Diverged
//     (NaN/Inf residual; x is left as computed at that point).
//
// Errors:
//   - ErrDimensionMismatch if A is not square or len(x), len(b) differ from n.
//
// Complexity:
//   - Per iteration one operator product, one preconditioner solve and O(n)
//     vector work. Extra space: four vectors of length n.
func ConjugateGradient[T sparse.Scalar](a Operator[T], x, b []T, m Preconditioner[T], opts ...Option) (Result, error) {
	n := a.RowCount()
	if a.ColumnCount() != n || len(x) != n || len(b) != n {
		return Result{}, fmt.Errorf("ConjugateGradient: A is %dx%d, len(x)=%d, len(b)=%d: %w",
			n, a.ColumnCount(), len(x), len(b), ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	var res Result

	normB := nrm2(b)
	if normB == 0 {
		clear(x)
		if o.history {
			res.History = []float64{0}
		}
		o.log.WithField("iterations", 0).Debug("cocg: zero right-hand side")

		return res, nil
	}

	r := make([]T, n)
	copy(r, b)
	a.ProductAdd(-1, x, r)
	res.Residual = nrm2(r) / normB
	if o.history {
		res.History = append(res.History, res.Residual)
	}
	if !finite(res.Residual) {
		res.Status = Diverged

		return res, nil
	}

	z := make([]T, n)
	p := make([]T, n)
	q := make([]T, n)
	var rhoPrev T
	for res.Residual > o.tol && res.Iterations < o.maxIter {
		m.Solve(r, z)
		rho := dotu(r, z)
		if res.Iterations == 0 {
			copy(p, z)
		} else {
			scaleAdd(rho/rhoPrev, p, z)
		}
		a.Product(p, q)
		alpha := rho / dotu(p, q)
		axpy(alpha, p, x)
		axpy(-alpha, q, r)
		rhoPrev = rho
		res.Iterations++

		res.Residual = nrm2(r) / normB
		if o.history {
			res.History = append(res.History, res.Residual)
		}
		if !finite(res.Residual) {
			res.Status = Diverged
			o.log.WithFields(logrus.Fields{
				"iteration": res.Iterations,
				"residual":  res.Residual,
			}).Warn("cocg: breakdown")

			return res, nil
		}
		if res.Iterations%o.reportEvery == 0 {
			o.log.WithFields(logrus.Fields{
				"iteration": res.Iterations,
				"residual":  res.Residual,
			}).Info("cocg: residual")
		}
	}

	if res.Residual > o.tol {
		res.Status = Exhausted
	}
	o.log.WithFields(logrus.Fields{
		"iterations": res.Iterations,
		"residual":   res.Residual,
		"status":     res.Status.String(),
	}).Debug("cocg: done")

	return res, nil
}
