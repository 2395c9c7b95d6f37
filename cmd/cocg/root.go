// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jafarpenot/ter/solver"
)

// newRootCommand wires flags, environment and config file into one command.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cocg",
		Short: "Solve a Poisson or damped Helmholtz model problem with preconditioned COCG",
		Long: `Assemble the 5-point finite-difference operator on a square grid and solve
it with the conjugate orthogonal conjugate gradient method.

Every flag may also be set through a COCG_<FLAG> environment variable
(dashes become underscores) or a configuration file given with --config.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vip, err := newViper(cmd.Flags())
			if err != nil {
				return err
			}
			cfg, err := loadConfig(vip)
			if err != nil {
				return err
			}

			return run(cfg, cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr(), cfg.logLevel))
		},
	}
	addFlags(cmd.Flags())

	return cmd
}

// newLogger returns a text logger writing to w at level.
func newLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return log
}

// run assembles, solves and writes the requested artifacts.
func run(cfg config, out io.Writer, log logrus.FieldLogger) error {
	log = log.WithFields(logrus.Fields{"grid": cfg.grid, "precond": cfg.precond})
	if !cfg.complexShift() {
		return runPoisson(cfg, out, log)
	}

	return runHelmholtz(cfg, out, log)
}

func runPoisson(cfg config, out io.Writer, log logrus.FieldLogger) error {
	a, b, err := poisson(cfg.grid)
	if err != nil {
		return err
	}
	if cfg.dump != "" {
		if err = a.DumpText(cfg.dump); err != nil {
			return err
		}
	}
	x, res, err := solve(cfg, a, b, cfg.omega, log)
	if err != nil {
		return err
	}
	if cfg.direct {
		if err = crossCheck(a, b, x, out, log); err != nil {
			return err
		}
	}
	if cfg.out != "" {
		if err = writeReal(cfg, x); err != nil {
			return err
		}
	}

	return finish(cfg, res, out)
}

func runHelmholtz(cfg config, out io.Writer, log logrus.FieldLogger) error {
	a, b, err := helmholtz(cfg.grid, cfg.shiftK, cfg.eta)
	if err != nil {
		return err
	}
	if cfg.dump != "" {
		if err = a.DumpText(cfg.dump); err != nil {
			return err
		}
	}
	x, res, err := solve(cfg, a, b, complex(cfg.omega, 0), log)
	if err != nil {
		return err
	}
	if cfg.direct {
		if err = crossCheckComplex(a, b, x, out, log); err != nil {
			return err
		}
	}
	if cfg.out != "" {
		if err = writeComplex(cfg, x); err != nil {
			return err
		}
	}

	return finish(cfg, res, out)
}

// finish prints the summary, saves the plot and maps the status to an error.
func finish(cfg config, res solver.Result, out io.Writer) error {
	fmt.Fprintf(out, "status=%s iterations=%d residual=%.3e\n", res.Status, res.Iterations, res.Residual)
	if cfg.plot != "" {
		if err := savePlot(cfg.plot, res.History); err != nil {
			return err
		}
	}
	if res.Status != solver.Converged {
		return fmt.Errorf("%w: %s after %d iterations", errNotConverged, res.Status, res.Iterations)
	}

	return nil
}
