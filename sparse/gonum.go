// SPDX-License-Identifier: MIT

// Package sparse - gonum interoperability.
//
// View exposes a real sparse matrix through gonum's mat.Matrix interface
// without copying, so that gonum routines (formatting, norms, dense
// factorizations in the direct package) can consume it. Dense and CDense
// materialize copies.

package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// RealView adapts *Matrix[float64] to mat.Matrix.
type RealView struct {
	a *Matrix[float64]
}

var _ mat.Matrix = RealView{}

// View returns a read-only mat.Matrix view over a.
func View(a *Matrix[float64]) RealView { return RealView{a: a} }

// Dims implements mat.Matrix.
func (v RealView) Dims() (r, c int) { return v.a.m, v.a.n }

// At implements mat.Matrix. Following gonum conventions it panics with
// mat.ErrIndexOutOfRange on invalid indices regardless of the checking mode.
func (v RealView) At(i, j int) float64 {
	if i < 0 || i >= v.a.m || j < 0 || j >= v.a.n {
		panic(mat.ErrIndexOutOfRange)
	}

	return v.a.rows[i].At(j)
}

// T implements mat.Matrix with an implicit transpose.
func (v RealView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// Dense copies a into a new gonum dense matrix.
// A matrix with a zero extent yields nil, since gonum forbids empty Dense.
func Dense(a *Matrix[float64]) *mat.Dense {
	if a.m == 0 || a.n == 0 {
		return nil
	}
	d := mat.NewDense(a.m, a.n, nil)
	a.Do(func(i, j int, v float64) {
		d.Set(i, j, v)
	})

	return d
}

// CDense copies a complex matrix into a new gonum complex dense matrix.
func CDense(a *Matrix[complex128]) *mat.CDense {
	if a.m == 0 || a.n == 0 {
		return nil
	}
	d := mat.NewCDense(a.m, a.n, nil)
	a.Do(func(i, j int, v complex128) {
		d.Set(i, j, v)
	})

	return d
}

// FromDense builds a sparse matrix from the nonzero entries of m.
func FromDense(m mat.Matrix, opts ...Option) (*Matrix[float64], error) {
	r, c := m.Dims()
	a, err := New[float64](r, c, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); v != 0 {
				a.rows[i].AddInteraction(j, v)
			}
		}
	}

	return a, nil
}

// Format renders a with gonum's matrix formatter, zeros shown as '.' and
// large matrices reduced to an excerpt.
func Format(a *Matrix[float64]) string {
	return fmt.Sprintf("% v", mat.Formatted(View(a), mat.Squeeze(), mat.DotByte('.'), mat.Excerpt(8)))
}
