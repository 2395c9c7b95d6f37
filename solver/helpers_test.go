package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jafarpenot/ter/sparse"
)

// diag builds a diagonal matrix from d.
func diag(tb testing.TB, d ...float64) *sparse.Matrix[float64] {
	tb.Helper()
	a, err := sparse.New[float64](len(d), len(d))
	require.NoError(tb, err)
	for i, v := range d {
		require.NoError(tb, a.AddInteraction(i, i, v))
	}

	return a
}

// laplacian1D is the n×n tridiag(-1, 2, -1) matrix.
func laplacian1D(tb testing.TB, n int) *sparse.Matrix[float64] {
	tb.Helper()
	a, err := sparse.New[float64](n, n)
	require.NoError(tb, err)
	for i := 0; i < n; i++ {
		require.NoError(tb, a.AddInteraction(i, i, 2))
		if i > 0 {
			require.NoError(tb, a.AddInteraction(i, i-1, -1))
			require.NoError(tb, a.AddInteraction(i-1, i, -1))
		}
	}

	return a
}

// laplacian2D is the 5-point Dirichlet Laplacian on an s×s grid.
func laplacian2D(tb testing.TB, s int) *sparse.Matrix[float64] {
	tb.Helper()
	n := s * s
	a, err := sparse.New[float64](n, n)
	require.NoError(tb, err)
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			i := y*s + x
			require.NoError(tb, a.AddInteraction(i, i, 4))
			if x > 0 {
				require.NoError(tb, a.AddInteraction(i, i-1, -1))
			}
			if x < s-1 {
				require.NoError(tb, a.AddInteraction(i, i+1, -1))
			}
			if y > 0 {
				require.NoError(tb, a.AddInteraction(i, i-s, -1))
			}
			if y < s-1 {
				require.NoError(tb, a.AddInteraction(i, i+s, -1))
			}
		}
	}

	return a
}

// ones returns a length-n vector of ones.
func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}

	return v
}
