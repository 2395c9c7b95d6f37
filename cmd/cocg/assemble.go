// SPDX-License-Identifier: MIT

package main

import (
	"github.com/jafarpenot/ter/sparse"
)

// laplacian assembles the 5-point stencil on an s×s interior grid with
// Dirichlet boundaries: 4 on the diagonal, −1 for each neighbour. Unknowns
// are numbered row by row.
func laplacian[T sparse.Scalar](s int) (*sparse.Matrix[T], error) {
	n := s * s
	a, err := sparse.New[T](n, n, sparse.WithRowCapacity(5))
	if err != nil {
		return nil, err
	}
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			i := y*s + x
			if err = a.AddInteraction(i, i, 4); err != nil {
				return nil, err
			}
			if x+1 < s {
				if err = a.AddInteraction(i, i+1, -1); err != nil {
					return nil, err
				}
				if err = a.AddInteraction(i+1, i, -1); err != nil {
					return nil, err
				}
			}
			if y+1 < s {
				if err = a.AddInteraction(i, i+s, -1); err != nil {
					return nil, err
				}
				if err = a.AddInteraction(i+s, i, -1); err != nil {
					return nil, err
				}
			}
		}
	}

	return a, nil
}

// poisson returns the scaled Poisson system L·u = h²·f with f ≡ 1.
func poisson(s int) (*sparse.Matrix[float64], []float64, error) {
	a, err := laplacian[float64](s)
	if err != nil {
		return nil, nil, err
	}
	h := 1 / float64(s+1)
	b := make([]float64, a.RowCount())
	for i := range b {
		b[i] = h * h
	}

	return a, b, nil
}

// helmholtz returns (L − σ·I)·u = b with σ = k²h²(1 + iη) and a unit point
// source at the grid centre. The sum is formed with Matrix.Add so that the
// shift may hit an existing diagonal entry.
func helmholtz(s int, k, eta float64) (*sparse.Matrix[complex128], []complex128, error) {
	l, err := laplacian[complex128](s)
	if err != nil {
		return nil, nil, err
	}
	n := l.RowCount()
	h := 1 / float64(s+1)
	sigma := complex(k*k*h*h, 0) * complex(1, eta)

	shift, err := sparse.New[complex128](n, n)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < n; i++ {
		if err = shift.AddInteraction(i, i, 1); err != nil {
			return nil, nil, err
		}
	}
	a := l.Add(shift.Scale(-sigma))

	b := make([]complex128, n)
	b[(s/2)*s+s/2] = 1

	return a, b, nil
}
