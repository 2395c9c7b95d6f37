// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"

	"github.com/jafarpenot/ter/direct"
	"github.com/jafarpenot/ter/ordering"
	"github.com/jafarpenot/ter/solver"
	"github.com/jafarpenot/ter/sparse"
	"github.com/jafarpenot/ter/vecio"
)

// solve runs COCG on a·x = b from a zero guess, optionally on the
// RCM-reordered system, and returns x in the original numbering.
func solve[T sparse.Scalar](cfg config, a *sparse.Matrix[T], b []T, omega T, log logrus.FieldLogger) ([]T, solver.Result, error) {
	var perm []int
	if cfg.rcm {
		p, err := ordering.ReverseCuthillMcKee(a)
		if err != nil {
			return nil, solver.Result{}, err
		}
		pa, err := a.Permute(p)
		if err != nil {
			return nil, solver.Result{}, err
		}
		log.WithFields(logrus.Fields{
			"before": ordering.Bandwidth(a),
			"after":  ordering.Bandwidth(pa),
		}).Info("reordered")
		a, b, perm = pa, ordering.Gather(p, b), p
	}

	m, err := preconditioner(cfg.precond, a, omega)
	if err != nil {
		return nil, solver.Result{}, err
	}
	x := make([]T, len(b))
	res, err := solver.ConjugateGradient[T](a, x, b, m,
		solver.WithTolerance(cfg.tol),
		solver.WithMaxIterations(cfg.maxIter),
		solver.WithReportEvery(cfg.reportEvery),
		solver.WithHistory(cfg.plot != ""),
		solver.WithLogger(log),
	)
	if err != nil {
		return nil, res, err
	}
	if perm != nil {
		x = ordering.Scatter(perm, x)
	}

	return x, res, nil
}

// preconditioner builds the preconditioner named by --precond.
func preconditioner[T sparse.Scalar](name string, a *sparse.Matrix[T], omega T) (solver.Preconditioner[T], error) {
	switch name {
	case precondJacobi:
		return solver.NewJacobi(a)
	case precondSSOR:
		return solver.NewSSOR(a, omega)
	case precondIdentity:
		return solver.Identity[T]{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown preconditioner %q", errBadConfig, name)
	}
}

// crossCheck solves the system directly and reports the max-norm distance
// to the iterative solution.
func crossCheck(a *sparse.Matrix[float64], b, x []float64, out io.Writer, log logrus.FieldLogger) error {
	s, err := direct.Factorize(a.Clone(), direct.WithSymmetric(true))
	if err != nil {
		return err
	}
	defer s.Clear()
	ref := append([]float64(nil), b...)
	if err = s.Solve(ref); err != nil {
		return err
	}
	dist := floats.Distance(x, ref, math.Inf(1))
	log.WithField("distance", dist).Debug("direct cross-check")
	fmt.Fprintf(out, "direct: max|x-x_direct|=%.3e\n", dist)

	return nil
}

// crossCheckComplex is crossCheck for the Helmholtz system.
func crossCheckComplex(a *sparse.Matrix[complex128], b, x []complex128, out io.Writer, log logrus.FieldLogger) error {
	s, err := direct.FactorizeComplex(a.Clone(), direct.WithSymmetric(true))
	if err != nil {
		return err
	}
	defer s.Clear()
	ref := append([]complex128(nil), b...)
	if err = s.Solve(ref); err != nil {
		return err
	}
	dist := cmplxs.Distance(x, ref, math.Inf(1))
	log.WithField("distance", dist).Debug("direct cross-check")
	fmt.Fprintf(out, "direct: max|x-x_direct|=%.3e\n", dist)

	return nil
}

// parsePart maps --part to a Medit field.
func parsePart(name string) (vecio.Part, error) {
	switch name {
	case "real":
		return vecio.Real, nil
	case "imag":
		return vecio.Imag, nil
	case "modulus":
		return vecio.Modulus, nil
	default:
		return 0, fmt.Errorf("%w: unknown part %q", errBadConfig, name)
	}
}

// writeReal writes x as a binary vector.
func writeReal(cfg config, x []float64) error {
	prec := vecio.Double
	if cfg.single {
		prec = vecio.Single
	}

	return createAndWrite(cfg.out, func(w io.Writer) error {
		return vecio.WriteFloats(w, x, prec, vecio.WithSwap(cfg.swap))
	})
}

// writeComplex writes one field of x as a Medit solution file.
func writeComplex(cfg config, x []complex128) error {
	part, err := parsePart(cfg.part)
	if err != nil {
		return err
	}

	return createAndWrite(cfg.out, func(w io.Writer) error {
		return vecio.WriteMedit(w, x, part)
	})
}

// createAndWrite creates path, hands it to write and closes it.
func createAndWrite(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return write(f)
}
