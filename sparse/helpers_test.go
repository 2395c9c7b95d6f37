// Package sparse_test contains shared fixtures for the sparse package tests.
package sparse_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jafarpenot/ter/sparse"
)

// mustNew allocates an m×n matrix or fails the test.
func mustNew[T sparse.Scalar](tb testing.TB, m, n int, opts ...sparse.Option) *sparse.Matrix[T] {
	tb.Helper()
	a, err := sparse.New[T](m, n, opts...)
	require.NoError(tb, err)

	return a
}

// entry is a shorthand coordinate used to fill fixtures.
type entry struct {
	i, j int
	v    float64
}

// fromEntries builds an m×n float64 matrix from entries (duplicates accumulate).
func fromEntries(tb testing.TB, m, n int, es ...entry) *sparse.Matrix[float64] {
	tb.Helper()
	a := mustNew[float64](tb, m, n)
	for _, e := range es {
		require.NoError(tb, a.AddInteraction(e.i, e.j, e.v))
	}

	return a
}

// randomMatrix fills roughly density·m·n entries with deterministic values.
func randomMatrix(tb testing.TB, m, n int, density float64, seed int64) *sparse.Matrix[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	a := mustNew[float64](tb, m, n)
	for k := 0; k < int(density*float64(m*n)); k++ {
		require.NoError(tb, a.AddInteraction(rng.Intn(m), rng.Intn(n), float64(rng.Intn(19)-9)))
	}

	return a
}

// tripletSet collects the stored entries of a keyed by (row, col).
func tripletSet[T sparse.Scalar](a *sparse.Matrix[T]) map[[2]int]T {
	out := make(map[[2]int]T, a.NonZeros())
	a.Do(func(i, j int, v T) {
		out[[2]int{i, j}] = v
	})

	return out
}

// requirePanicIs runs fn and asserts that it panics with an error matching target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	fn()
}
