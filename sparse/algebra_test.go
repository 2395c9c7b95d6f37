package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/jafarpenot/ter/sparse"
)

// TestAdd verifies that overlapping entries sum and the rest are preserved.
func TestAdd(t *testing.T) {
	a := fromEntries(t, 2, 3, entry{0, 0, 1}, entry{0, 2, 2})
	b := fromEntries(t, 2, 3, entry{0, 0, 3}, entry{1, 1, 4})

	c := a.Add(b)
	require.Equal(t, map[[2]int]float64{
		{0, 0}: 4,
		{0, 2}: 2,
		{1, 1}: 4,
	}, tripletSet(c))

	// operands untouched
	require.Equal(t, 2, a.NonZeros())
	require.Equal(t, 2, b.NonZeros())
}

// TestAddShapeMismatchPanics exercises the fatal shape guard.
func TestAddShapeMismatchPanics(t *testing.T) {
	a := mustNew[float64](t, 2, 3)
	b := mustNew[float64](t, 3, 2)
	requirePanicIs(t, sparse.ErrDimensionMismatch, func() { _ = a.Add(b) })
}

// TestAddInheritsMode checks that the result keeps the receiver's checking mode.
func TestAddInheritsMode(t *testing.T) {
	a := mustNew[float64](t, 2, 2, sparse.WithBoundsCheck(false))
	b := mustNew[float64](t, 2, 2)
	require.False(t, a.Add(b).BoundsChecked())
	require.False(t, a.Transpose().BoundsChecked())
}

// TestScale multiplies every stored entry by alpha, using the column index.
func TestScale(t *testing.T) {
	a := fromEntries(t, 2, 3, entry{0, 2, 1.5}, entry{1, 0, -2}, entry{1, 2, 4})
	b := a.Scale(2)
	require.Equal(t, map[[2]int]float64{
		{0, 2}: 3,
		{1, 0}: -4,
		{1, 2}: 8,
	}, tripletSet(b))

	z := mustNew[complex128](t, 1, 2)
	require.NoError(t, z.AddInteraction(0, 1, 1+1i))
	v, err := z.Scale(1i).At(0, 1)
	require.NoError(t, err)
	require.Equal(t, -1+1i, v)
}

// TestTranspose checks the shape swap and the involution property.
func TestTranspose(t *testing.T) {
	a := randomMatrix(t, 7, 4, 0.4, 11)

	at := a.Transpose()
	m, n := at.Dims()
	require.Equal(t, 4, m)
	require.Equal(t, 7, n)
	a.Do(func(i, j int, v float64) {
		got, err := at.At(j, i)
		require.NoError(t, err)
		require.Equal(t, v, got)
	})

	require.Equal(t, tripletSet(a), tripletSet(at.Transpose()))
}

// TestMatMulAgainstDense compares MatMul with gonum's dense product.
func TestMatMulAgainstDense(t *testing.T) {
	a := randomMatrix(t, 4, 3, 0.5, 3)
	b := randomMatrix(t, 3, 5, 0.5, 5)

	ab := a.MatMul(b)
	m, n := ab.Dims()
	require.Equal(t, 4, m)
	require.Equal(t, 5, n)

	var want mat.Dense
	want.Mul(sparse.View(a), sparse.View(b))
	require.True(t, mat.EqualApprox(&want, sparse.View(ab), 1e-12),
		"got\n%v\nwant\n%v", mat.Formatted(sparse.View(ab)), mat.Formatted(&want))
}

// TestMatMulSkipsEmptyPairs checks that only reachable (i,k) pairs are stored.
func TestMatMulSkipsEmptyPairs(t *testing.T) {
	a := fromEntries(t, 2, 2, entry{0, 0, 1})
	b := fromEntries(t, 2, 2, entry{0, 1, 3}, entry{1, 0, 9})

	ab := a.MatMul(b)
	require.Equal(t, map[[2]int]float64{{0, 1}: 3}, tripletSet(ab))
}

// TestMatMulShapeMismatchPanics exercises the inner-dimension guard.
func TestMatMulShapeMismatchPanics(t *testing.T) {
	a := mustNew[float64](t, 2, 3)
	b := mustNew[float64](t, 2, 3)
	requirePanicIs(t, sparse.ErrDimensionMismatch, func() { _ = a.MatMul(b) })
}

// TestApplySSORDiagonal: on a diagonal system one sweep with omega=1 is exact.
func TestApplySSORDiagonal(t *testing.T) {
	a := fromEntries(t, 3, 3, entry{0, 0, 4}, entry{1, 1, 4}, entry{2, 2, 4})
	inv, err := a.InvDiagonal()
	require.NoError(t, err)

	x := make([]float64, 3)
	a.ApplySSOR([]float64{4, 8, 12}, inv, x, 1)
	require.Equal(t, []float64{1, 2, 3}, x)
}

// TestApplySSORSweepOrder checks the forward-then-backward update on a 2×2 system.
func TestApplySSORSweepOrder(t *testing.T) {
	a := fromEntries(t, 2, 2,
		entry{0, 0, 4}, entry{0, 1, 1},
		entry{1, 0, 1}, entry{1, 1, 3},
	)
	inv := []float64{1.0 / 4, 1.0 / 3}
	x := make([]float64, 2)
	a.ApplySSOR([]float64{1, 2}, inv, x, 1)

	// forward: x0 = 1/4, x1 = (2 - 1/4)/3 = 7/12
	// backward: x1 unchanged (zero residual), x0 = 1/4 - (7/12)/4 = 5/48
	require.InDelta(t, 5.0/48, x[0], 1e-15)
	require.InDelta(t, 7.0/12, x[1], 1e-15)
}

// TestApplySSORLengthMismatch verifies the fatal length guard.
func TestApplySSORLengthMismatch(t *testing.T) {
	a := fromEntries(t, 2, 2, entry{0, 0, 1}, entry{1, 1, 1})
	requirePanicIs(t, sparse.ErrDimensionMismatch, func() {
		a.ApplySSOR([]float64{1, 1}, []float64{1}, make([]float64, 2), 1)
	})
}

// TestInvDiagonal covers the success path and both failure sentinels.
func TestInvDiagonal(t *testing.T) {
	a := fromEntries(t, 2, 2, entry{0, 0, 2}, entry{1, 1, -4}, entry{0, 1, 7})
	inv, err := a.InvDiagonal()
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, -0.25}, inv)

	_, err = fromEntries(t, 2, 2, entry{0, 0, 2}).InvDiagonal()
	require.ErrorIs(t, err, sparse.ErrZeroDiagonal)

	_, err = mustNew[float64](t, 2, 3).InvDiagonal()
	require.ErrorIs(t, err, sparse.ErrNonSquare)
}

// TestPermute checks B(i,j) = A(p[i], p[j]) and permutation validation.
func TestPermute(t *testing.T) {
	a := randomMatrix(t, 5, 5, 0.5, 17)
	p := []int{3, 0, 4, 1, 2}

	b, err := a.Permute(p)
	require.NoError(t, err)
	require.Equal(t, a.NonZeros(), b.NonZeros())
	for i := range p {
		for j := range p {
			want, _ := a.At(p[i], p[j])
			got, _ := b.At(i, j)
			require.Equal(t, want, got, "B(%d,%d)", i, j)
		}
	}

	_, err = a.Permute([]int{0, 1, 1, 2, 3})
	require.ErrorIs(t, err, sparse.ErrBadPermutation)
	_, err = a.Permute([]int{0, 1})
	require.ErrorIs(t, err, sparse.ErrBadPermutation)
	_, err = mustNew[float64](t, 2, 3).Permute([]int{0, 1})
	require.ErrorIs(t, err, sparse.ErrNonSquare)
}
