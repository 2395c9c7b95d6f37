// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var errEmptyHistory = errors.New("cocg: no positive residual to plot")

// savePlot draws the relative residual history on a log scale. Exact zero
// residuals cannot be placed on a log axis and are skipped.
func savePlot(path string, history []float64) error {
	pts := make(plotter.XYs, 0, len(history))
	for k, r := range history {
		if r > 0 {
			pts = append(pts, plotter.XY{X: float64(k), Y: r})
		}
	}
	if len(pts) == 0 {
		return errEmptyHistory
	}

	p := plot.New()
	p.Title.Text = "COCG convergence"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "relative residual"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	p.Add(line)

	if err = p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("plot: %w", err)
	}

	return nil
}
