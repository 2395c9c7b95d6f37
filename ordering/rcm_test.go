package ordering_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jafarpenot/ter/ordering"
	"github.com/jafarpenot/ter/solver"
	"github.com/jafarpenot/ter/sparse"
)

// grid assembles the 5-point Laplacian on an s×s grid.
func grid(t *testing.T, s int) *sparse.Matrix[float64] {
	t.Helper()
	n := s * s
	a, err := sparse.New[float64](n, n)
	require.NoError(t, err)
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			i := y*s + x
			require.NoError(t, a.AddInteraction(i, i, 4))
			if x+1 < s {
				require.NoError(t, a.AddInteraction(i, i+1, -1))
				require.NoError(t, a.AddInteraction(i+1, i, -1))
			}
			if y+1 < s {
				require.NoError(t, a.AddInteraction(i, i+s, -1))
				require.NoError(t, a.AddInteraction(i+s, i, -1))
			}
		}
	}

	return a
}

// scramble applies a deterministic random symmetric permutation.
func scramble(t *testing.T, a *sparse.Matrix[float64], seed int64) *sparse.Matrix[float64] {
	t.Helper()
	b, err := a.Permute(rand.New(rand.NewSource(seed)).Perm(a.RowCount()))
	require.NoError(t, err)

	return b
}

// TestRCMIsPermutation checks that the result is a bijection on [0,n).
func TestRCMIsPermutation(t *testing.T) {
	a := scramble(t, grid(t, 6), 1)
	p, err := ordering.ReverseCuthillMcKee(a)
	require.NoError(t, err)
	_, err = sparse.InversePermutation(p, a.RowCount())
	require.NoError(t, err)
}

// TestRCMReducesBandwidth on a scrambled grid.
func TestRCMReducesBandwidth(t *testing.T) {
	a := scramble(t, grid(t, 8), 2)
	p, err := ordering.ReverseCuthillMcKee(a)
	require.NoError(t, err)
	b, err := a.Permute(p)
	require.NoError(t, err)

	before, after := ordering.Bandwidth(a), ordering.Bandwidth(b)
	require.Less(t, after, before/2, "bandwidth %d -> %d", before, after)
	require.Equal(t, a.NonZeros(), b.NonZeros())
}

// TestRCMPathIsTridiagonal: a scrambled path graph is restored to bandwidth 1.
func TestRCMPathIsTridiagonal(t *testing.T) {
	const n = 12
	label := rand.New(rand.NewSource(3)).Perm(n)
	a, err := sparse.New[float64](n, n)
	require.NoError(t, err)
	for k := 0; k < n; k++ {
		require.NoError(t, a.AddInteraction(label[k], label[k], 2))
		if k+1 < n {
			require.NoError(t, a.AddInteraction(label[k], label[k+1], -1))
			require.NoError(t, a.AddInteraction(label[k+1], label[k], -1))
		}
	}

	p, err := ordering.ReverseCuthillMcKee(a)
	require.NoError(t, err)
	b, err := a.Permute(p)
	require.NoError(t, err)
	require.Equal(t, 1, ordering.Bandwidth(b))
}

// TestRCMDisconnected orders isolated nodes as well.
func TestRCMDisconnected(t *testing.T) {
	a, err := sparse.New[float64](4, 4)
	require.NoError(t, err)
	require.NoError(t, a.AddInteraction(0, 3, 1))
	require.NoError(t, a.AddInteraction(1, 1, 1))

	p, err := ordering.ReverseCuthillMcKee(a)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1, 2, 3}, p)
}

// TestRCMStartAndHook checks WithStart and the OnVisit callback.
func TestRCMStartAndHook(t *testing.T) {
	a := grid(t, 3)
	var visits []int
	levels := map[int]int{}
	p, err := ordering.ReverseCuthillMcKee(a,
		ordering.WithStart(4),
		ordering.WithOnVisit(func(node, level int) {
			visits = append(visits, node)
			levels[node] = level
		}),
	)
	require.NoError(t, err)
	require.Len(t, visits, 9)
	require.Equal(t, 4, visits[0])
	require.Equal(t, 4, p[len(p)-1], "reversal puts the start last")
	require.Equal(t, 0, levels[4])
	require.Equal(t, 1, levels[1])
	require.Equal(t, 2, levels[0])
}

// TestRCMErrors covers invalid inputs and options.
func TestRCMErrors(t *testing.T) {
	rect, err := sparse.New[float64](2, 3)
	require.NoError(t, err)
	_, err = ordering.ReverseCuthillMcKee(rect)
	require.ErrorIs(t, err, ordering.ErrNonSquare)

	sq := grid(t, 2)
	_, err = ordering.ReverseCuthillMcKee(sq, ordering.WithStart(-1))
	require.ErrorIs(t, err, ordering.ErrOptionViolation)
	_, err = ordering.ReverseCuthillMcKee(sq, ordering.WithStart(4))
	require.ErrorIs(t, err, ordering.ErrStartOutOfRange)
}

// TestGatherScatter checks that the two renumberings are inverse.
func TestGatherScatter(t *testing.T) {
	p := []int{2, 0, 3, 1}
	x := []string{"a", "b", "c", "d"}
	y := ordering.Gather(p, x)
	require.Equal(t, []string{"c", "a", "d", "b"}, y)
	require.Equal(t, x, ordering.Scatter(p, y))
}

// TestReorderedSolveMatches: solving the permuted system and mapping back
// gives the same solution as solving the original one.
func TestReorderedSolveMatches(t *testing.T) {
	a := scramble(t, grid(t, 7), 4)
	n := a.RowCount()
	b := make([]float64, n)
	for i := range b {
		b[i] = float64(i%4) + 1
	}

	x := make([]float64, n)
	_, err := solver.ConjugateGradient[float64](a, x, b, solver.Identity[float64]{}, solver.WithTolerance(1e-12))
	require.NoError(t, err)

	p, err := ordering.ReverseCuthillMcKee(a)
	require.NoError(t, err)
	ap, err := a.Permute(p)
	require.NoError(t, err)
	ssor, err := solver.NewSSOR(ap, 1.2)
	require.NoError(t, err)
	xp := make([]float64, n)
	res, err := solver.ConjugateGradient[float64](ap, xp, ordering.Gather(p, b), ssor, solver.WithTolerance(1e-12))
	require.NoError(t, err)
	require.Equal(t, solver.Converged, res.Status)

	require.InDeltaSlice(t, x, ordering.Scatter(p, xp), 1e-8)
}
