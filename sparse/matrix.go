// SPDX-License-Identifier: MIT

// Package sparse - row-wise sparse matrix & accessors.
//
// Purpose:
//   - Own m ordered sparse rows over n columns and expose slot-indexed and
//     column-indexed access to them.
//   - Report out-of-range access as ErrOutOfRange in checked mode and skip all
//     validation in unchecked mode.
//
// Complexity quicksheet:
//   - New/Reallocate: O(m); RowSize/Index/Value: O(1); At: O(nnz(row));
//     AddInteraction: O(nnz(row)); Clone: O(nnz).

package sparse

// Matrix is an m×n sparse matrix stored as m ordered rows.
//
// Invariants:
//   - len(rows) == m.
//   - every column index stored in any row is < n (enforced by AddInteraction
//     in checked mode; the caller's responsibility otherwise).
type Matrix[T Scalar] struct {
	m, n    int
	rows    []Row[T]
	opts    Options
	checked bool
}

// New allocates an m×n matrix with no stored entries.
//
// Errors:
//   - ErrBadShape if m < 0 or n < 0. A 0×0 matrix is legal.
func New[T Scalar](m, n int, opts ...Option) (*Matrix[T], error) {
	a := &Matrix[T]{opts: gatherOptions(opts...)}
	a.checked = a.opts.boundsCheck
	if err := a.Reallocate(m, n); err != nil {
		return nil, err
	}

	return a, nil
}

// derived allocates a result matrix that inherits a's configuration.
// Shapes passed here are produced by kernels and are never negative.
func (a *Matrix[T]) derived(m, n int) *Matrix[T] {
	b := &Matrix[T]{opts: a.opts, checked: a.checked}
	_ = b.Reallocate(m, n)

	return b
}

// Reallocate discards all content and allocates m empty rows over n columns.
func (a *Matrix[T]) Reallocate(m, n int) error {
	if m < 0 || n < 0 {
		return sparseErrorf(opReallocate, m, n, ErrBadShape)
	}
	a.m, a.n = m, n
	a.rows = make([]Row[T], m)
	for i := range a.rows {
		a.rows[i].checked = a.checked
		if c := a.opts.rowCapacity; c > 0 {
			a.rows[i].index = make([]int, 0, c)
			a.rows[i].value = make([]T, 0, c)
		}
	}

	return nil
}

// Clear resets the shape to 0×0 and releases every row.
func (a *Matrix[T]) Clear() {
	a.m, a.n = 0, 0
	a.rows = nil
}

// RowCount returns m.
func (a *Matrix[T]) RowCount() int { return a.m }

// ColumnCount returns n.
func (a *Matrix[T]) ColumnCount() int { return a.n }

// Dims returns (m, n).
func (a *Matrix[T]) Dims() (int, int) { return a.m, a.n }

// BoundsChecked reports whether the matrix validates indices.
func (a *Matrix[T]) BoundsChecked() bool { return a.checked }

// checkRow validates row i against m when checking is on.
func (a *Matrix[T]) checkRow(op string, i, j int) error {
	if a.checked && (i < 0 || i >= a.m) {
		return sparseErrorf(op, i, j, ErrOutOfRange)
	}

	return nil
}

// Row returns the row i for direct manipulation.
// The returned row is owned by the matrix and stays valid until the next
// Reallocate or Clear.
func (a *Matrix[T]) Row(i int) (*Row[T], error) {
	if err := a.checkRow(opRow, i, 0); err != nil {
		return nil, err
	}

	return &a.rows[i], nil
}

// RowSize returns the number of stored entries in row i.
func (a *Matrix[T]) RowSize(i int) (int, error) {
	if err := a.checkRow(opRow, i, 0); err != nil {
		return 0, err
	}

	return a.rows[i].Size(), nil
}

// ReallocateRow discards row i and allocates n zeroed slots in it.
func (a *Matrix[T]) ReallocateRow(i, n int) error {
	if err := a.checkRow(opReallocate, i, n); err != nil {
		return err
	}
	a.rows[i].Reallocate(n)

	return nil
}

// ClearRow empties row i. The matrix shape is unchanged.
func (a *Matrix[T]) ClearRow(i int) error {
	if err := a.checkRow(opRow, i, 0); err != nil {
		return err
	}
	a.rows[i].Clear()

	return nil
}

// Index returns the column number stored at slot j of row i.
func (a *Matrix[T]) Index(i, j int) (int, error) {
	if err := a.checkRow(opIndex, i, j); err != nil {
		return 0, err
	}
	c, err := a.rows[i].Index(j)
	if err != nil {
		return 0, sparseErrorf(opIndex, i, j, ErrOutOfRange)
	}

	return c, nil
}

// Value returns the value stored at slot j of row i.
func (a *Matrix[T]) Value(i, j int) (T, error) {
	if err := a.checkRow(opValue, i, j); err != nil {
		var zero T
		return zero, err
	}
	v, err := a.rows[i].Value(j)
	if err != nil {
		return v, sparseErrorf(opValue, i, j, ErrOutOfRange)
	}

	return v, nil
}

// SetIndex overwrites the column number stored at slot j of row i. Row
// ordering is not re-established.
func (a *Matrix[T]) SetIndex(i, j, col int) error {
	if err := a.checkRow(opSetIndex, i, j); err != nil {
		return err
	}
	if err := a.rows[i].SetIndex(j, col); err != nil {
		return sparseErrorf(opSetIndex, i, j, ErrOutOfRange)
	}

	return nil
}

// SetValue overwrites the value stored at slot j of row i.
func (a *Matrix[T]) SetValue(i, j int, v T) error {
	if err := a.checkRow(opSetValue, i, j); err != nil {
		return err
	}
	if err := a.rows[i].SetValue(j, v); err != nil {
		return sparseErrorf(opSetValue, i, j, ErrOutOfRange)
	}

	return nil
}

// At returns the entry at (row i, column j), or zero when it is not stored.
func (a *Matrix[T]) At(i, j int) (T, error) {
	if a.checked && (i < 0 || i >= a.m || j < 0 || j >= a.n) {
		var zero T
		return zero, sparseErrorf(opAt, i, j, ErrOutOfRange)
	}

	return a.rows[i].At(j), nil
}

// AddInteraction adds delta to entry (i, j), inserting it when absent.
//
// Errors:
//   - ErrOutOfRange if (i, j) lies outside m×n and checking is enabled.
func (a *Matrix[T]) AddInteraction(i, j int, delta T) error {
	if a.checked && (i < 0 || i >= a.m || j < 0 || j >= a.n) {
		return sparseErrorf(opAddInteract, i, j, ErrOutOfRange)
	}
	a.rows[i].AddInteraction(j, delta)

	return nil
}

// NonZeros returns the total number of stored entries.
func (a *Matrix[T]) NonZeros() int {
	nnz := 0
	for i := range a.rows {
		nnz += len(a.rows[i].index)
	}

	return nnz
}

// Clone returns a deep copy of a with the same configuration.
func (a *Matrix[T]) Clone() *Matrix[T] {
	b := &Matrix[T]{m: a.m, n: a.n, opts: a.opts, checked: a.checked}
	b.rows = make([]Row[T], a.m)
	for i := range a.rows {
		b.rows[i] = *a.rows[i].Clone()
	}

	return b
}

// Do calls fn for every stored entry in row-major slot order.
func (a *Matrix[T]) Do(fn func(i, j int, v T)) {
	for i := range a.rows {
		r := &a.rows[i]
		for k, c := range r.index {
			fn(i, c, r.value[k])
		}
	}
}
