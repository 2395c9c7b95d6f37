// Package solver implements preconditioned iterative solvers over an abstract
// matrix-vector Operator.
//
// ConjugateGradient is the COCG variant of preconditioned conjugate gradient:
// it uses the unconjugated bilinear form throughout, which makes it valid for
// real symmetric and complex symmetric (non-Hermitian) systems, such as
// Helmholtz problems with complex shifts or absorbing layers. It is not valid
// for general non-symmetric or Hermitian matrices.
//
// The solver never signals failure through its error return for numerical
// reasons: the outcome is reported in Result.Status (Converged, Exhausted,
// Diverged). Errors are reserved for shape mismatches.
//
// Operators:
//
//   - *sparse.Matrix[T] satisfies Operator directly.
//   - FuncOperator wraps a matrix-free product.
//   - BaseOperator can be embedded by custom operators; any product left
//     un-overridden panics with ErrNotImplemented.
//
// Preconditioners: Identity, Jacobi (inverted diagonal) and SSOR (one
// symmetric relaxation sweep from zero).
//
// Residual reporting goes to a logrus.FieldLogger injected with WithLogger;
// by default the solver is silent.
package solver
