// Package ter is the root of a small sparse linear-algebra toolkit for
// finite-element and finite-difference systems, real or complex symmetric.
//
// The work is split across subpackages:
//
//	sparse/    row-compressed matrices: assembly, products, algebra, text dump
//	solver/    operator and preconditioner contracts, the COCG solver
//	ordering/  reverse Cuthill-McKee bandwidth reduction
//	direct/    1-based coordinate export and a dense direct fallback
//	vecio/     binary and Medit writers for solution vectors
//	cmd/cocg   command-line driver on Poisson and damped Helmholtz grids
//
// Quick example:
//
//	a, _ := sparse.New[complex128](n, n)
//	_ = a.AddInteraction(i, j, v) // repeated calls accumulate
//	x := make([]complex128, n)
//	res, _ := solver.ConjugateGradient[complex128](a, x, b, solver.Identity[complex128]{})
//	if res.Status != solver.Converged { ... }
//
// Every package depends only on sparse and the gonum numeric kernels; the
// solver logs through a logrus.FieldLogger that is silent by default.
package ter
