package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()

	return out.String(), err
}

// TestLaplacianPattern checks size, symmetry and the stencil row sums.
func TestLaplacianPattern(t *testing.T) {
	a, err := laplacian[float64](3)
	require.NoError(t, err)
	require.Equal(t, 9, a.RowCount())
	// 9 diagonal entries plus 12 grid edges stored twice
	require.Equal(t, 33, a.NonZeros())

	at := a.Transpose()
	a.Do(func(i, j int, v float64) {
		w, err := at.At(i, j)
		require.NoError(t, err)
		require.Equal(t, v, w)
	})

	centre, err := a.Row(4)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 4, 5, 7}, centre.Columns())
}

// TestHelmholtzShift checks the complex diagonal and the point source.
func TestHelmholtzShift(t *testing.T) {
	const s = 5
	a, b, err := helmholtz(s, 3, 0.5)
	require.NoError(t, err)

	h := 1.0 / (s + 1)
	sigma := complex(9*h*h, 9*h*h*0.5)
	d, err := a.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, real(4-sigma), real(d), 1e-15)
	require.InDelta(t, imag(4-sigma), imag(d), 1e-15)

	off, err := a.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, complex128(-1), off)

	var sum complex128
	for _, v := range b {
		sum += v
	}
	require.Equal(t, complex128(1), sum)
	require.Equal(t, complex128(1), b[2*s+2])
}

// TestRunPoissonArtifacts exercises reordering, SSOR, the direct check and
// every output file.
func TestRunPoissonArtifacts(t *testing.T) {
	dir := t.TempDir()
	dump := filepath.Join(dir, "a.txt")
	png := filepath.Join(dir, "residual.png")
	bin := filepath.Join(dir, "x.bin")

	out, err := execute(t,
		"--grid", "8", "--tol", "1e-10", "--precond", "ssor", "--omega", "1.5",
		"--rcm", "--direct", "--dump", dump, "--plot", png, "--out", bin,
		"--log-level", "debug",
	)
	require.NoError(t, err)
	require.Contains(t, out, "status=converged")
	require.Contains(t, out, "direct: max|x-x_direct|=")

	text, err := os.ReadFile(dump)
	require.NoError(t, err)
	require.Equal(t, 64+2*2*8*7, strings.Count(string(text), "\n"))

	info, err := os.Stat(png)
	require.NoError(t, err)
	require.Positive(t, info.Size())

	info, err = os.Stat(bin)
	require.NoError(t, err)
	require.Equal(t, int64(4+8*64), info.Size())
}

// TestRunHelmholtzMedit writes the modulus of the complex solution.
func TestRunHelmholtzMedit(t *testing.T) {
	bb := filepath.Join(t.TempDir(), "u.bb")
	out, err := execute(t,
		"--grid", "8", "--shift-k", "10", "--eta", "0.5", "--precond", "jacobi",
		"--out", bb, "--part", "modulus", "--direct", "--tol", "1e-10",
	)
	require.NoError(t, err)
	require.Contains(t, out, "status=converged")
	require.Contains(t, out, "direct: max|x-x_direct|=")

	data, err := os.ReadFile(bb)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 65)
	require.Equal(t, "2 1 64 2", lines[0])
}

// TestIterationCap maps an exhausted solve to an error.
func TestIterationCap(t *testing.T) {
	out, err := execute(t, "--grid", "6", "--max-iter", "1")
	require.ErrorIs(t, err, errNotConverged)
	require.Contains(t, out, "status=exhausted iterations=1")
}

// TestEnvironmentOverride reads a flag from COCG_*.
func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("COCG_MAX_ITER", "-1")
	_, err := execute(t)
	require.ErrorIs(t, err, errBadConfig)
}

// TestConfigFile reads values from a YAML file; explicit flags still win.
func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cocg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid: 4\nprecond: bogus\n"), 0o600))

	_, err := execute(t, "--config", path)
	require.ErrorIs(t, err, errBadConfig)

	out, err := execute(t, "--config", path, "--precond", "jacobi")
	require.NoError(t, err)
	require.Contains(t, out, "status=converged")
}

// TestInvalidConfigurations covers the validation branches.
func TestInvalidConfigurations(t *testing.T) {
	cases := [][]string{
		{"--grid", "0"},
		{"--tol", "-1"},
		{"--report-every", "0"},
		{"--omega", "2"},
		{"--part", "phase"},
		{"--log-level", "loud"},
	}
	for _, args := range cases {
		_, err := execute(t, args...)
		require.ErrorIs(t, err, errBadConfig, "args %v", args)
	}
}

// TestSavePlotEmpty rejects a history without positive values.
func TestSavePlotEmpty(t *testing.T) {
	err := savePlot(filepath.Join(t.TempDir(), "p.png"), []float64{0})
	require.ErrorIs(t, err, errEmptyHistory)
}
