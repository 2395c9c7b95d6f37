// SPDX-License-Identifier: MIT

// Package sparse - ordered sparse row storage.
//
// Purpose:
//   - Keep the nonzeros of one matrix row as two parallel slices (column
//     indices and values) with strictly ascending, unique column indices.
//   - Support incremental assembly through AddInteraction, which accumulates
//     into an existing slot or inserts a new one in order.
//
// Complexity quicksheet:
//   - Size/Index/Value: O(1); At: O(nnz) linear scan; AddInteraction: O(nnz)
//     scan plus an O(nnz) shift on insertion.

package sparse

import (
	"fmt"
	"strings"
)

// Scalar is the set of element types a sparse matrix can hold.
// Complex types are included so that complex-symmetric systems can be assembled.
type Scalar interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Row is an ordered sparse container of (column, value) pairs.
//
// Invariants:
//   - len(index) == len(value) at all times.
//   - index is strictly ascending with no duplicates, provided the row is only
//     grown through AddInteraction (bulk fills via Reallocate/SetIndex are the
//     caller's responsibility).
type Row[T Scalar] struct {
	index   []int
	value   []T
	checked bool
}

// NewRow returns an empty row. The bounds-checking mode follows opts.
func NewRow[T Scalar](opts ...Option) *Row[T] {
	o := gatherOptions(opts...)
	r := &Row[T]{checked: o.boundsCheck}
	if o.rowCapacity > 0 {
		r.index = make([]int, 0, o.rowCapacity)
		r.value = make([]T, 0, o.rowCapacity)
	}

	return r
}

// Size returns the number of stored (column, value) pairs.
func (r *Row[T]) Size() int { return len(r.index) }

// Reallocate discards the content and allocates exactly n zeroed pairs.
// The caller is expected to fill them in ascending column order with
// SetIndex/SetValue. Negative n is treated as 0.
func (r *Row[T]) Reallocate(n int) {
	if n < 0 {
		n = 0
	}
	r.index = make([]int, n)
	r.value = make([]T, n)
}

// Resize keeps the first min(Size(), n) pairs and grows or shrinks the tail.
// A grown tail is zero-filled (column 0, value 0) and must be overwritten by
// the caller before the row is used in algebra.
func (r *Row[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(r.index) {
		r.index = r.index[:n]
		r.value = r.value[:n]

		return
	}
	idx := make([]int, n)
	val := make([]T, n)
	copy(idx, r.index)
	copy(val, r.value)
	r.index, r.value = idx, val
}

// Clear empties the row and releases its storage.
func (r *Row[T]) Clear() {
	r.index = nil
	r.value = nil
}

// checkSlot validates slot j against the current size when checking is on.
func (r *Row[T]) checkSlot(op string, j int) error {
	if r.checked && (j < 0 || j >= len(r.index)) {
		return rowErrorf(op, j, ErrOutOfRange)
	}

	return nil
}

// Index returns the column number stored at slot j.
func (r *Row[T]) Index(j int) (int, error) {
	if err := r.checkSlot(opIndex, j); err != nil {
		return 0, err
	}

	return r.index[j], nil
}

// Value returns the value stored at slot j.
func (r *Row[T]) Value(j int) (T, error) {
	if err := r.checkSlot(opValue, j); err != nil {
		var zero T
		return zero, err
	}

	return r.value[j], nil
}

// SetIndex overwrites the column number at slot j.
// Ordering is not re-established; this is the bulk-construction path.
func (r *Row[T]) SetIndex(j, col int) error {
	if err := r.checkSlot(opSetIndex, j); err != nil {
		return err
	}
	r.index[j] = col

	return nil
}

// SetValue overwrites the value at slot j.
func (r *Row[T]) SetValue(j int, v T) error {
	if err := r.checkSlot(opSetValue, j); err != nil {
		return err
	}
	r.value[j] = v

	return nil
}

// At returns the value stored for column col, or zero if the column is absent.
func (r *Row[T]) At(col int) T {
	v, _ := r.lookup(col)

	return v
}

// lookup scans ascending indices for col and stops at the first larger one.
func (r *Row[T]) lookup(col int) (T, bool) {
	for k, c := range r.index {
		if c == col {
			return r.value[k], true
		}
		if c > col {
			break
		}
	}
	var zero T

	return zero, false
}

// AddInteraction adds delta to the entry at column col.
// MAIN DESCRIPTION:
//   - Merge a contribution into the row while keeping it sorted and unique.
//
// Implementation:
//   - Stage 1: scan ascending indices for the first slot k with index[k] >= col.
//   - Stage 2: if index[k] == col, accumulate delta into value[k] and return.
//   - Stage 3: otherwise grow both slices by one, shift the tail [k:] right by
//     one slot with copy, and write (col, delta) at k. Reaching the end of the
//     scan degenerates into an append.
//
// Behavior highlights:
//   - Duplicates accumulate, they never overwrite.
//   - A zero delta still creates a slot (structural nonzero).
//
// Complexity:
//   - Time O(Size()), Space amortized O(1).
func (r *Row[T]) AddInteraction(col int, delta T) {
	k := 0
	for k < len(r.index) && r.index[k] < col {
		k++
	}
	if k < len(r.index) && r.index[k] == col {
		r.value[k] += delta

		return
	}
	var zero T
	r.index = append(r.index, 0)
	r.value = append(r.value, zero)
	copy(r.index[k+1:], r.index[k:])
	copy(r.value[k+1:], r.value[k:])
	r.index[k] = col
	r.value[k] = delta
}

// Columns returns a copy of the stored column numbers in slot order.
func (r *Row[T]) Columns() []int {
	out := make([]int, len(r.index))
	copy(out, r.index)

	return out
}

// Values returns a copy of the stored values in slot order.
func (r *Row[T]) Values() []T {
	out := make([]T, len(r.value))
	copy(out, r.value)

	return out
}

// Clone returns a deep copy of r with the same checking mode.
func (r *Row[T]) Clone() *Row[T] {
	c := &Row[T]{checked: r.checked}
	c.index = r.Columns()
	c.value = r.Values()

	return c
}

// dot returns Σ_k value[k]·x[index[k]] (unconjugated).
func (r *Row[T]) dot(x []T) T {
	var s T
	for k, c := range r.index {
		s += r.value[k] * x[c]
	}

	return s
}

// String renders the row as "{c:v c:v ...}".
func (r *Row[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for k, c := range r.index {
		if k > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d:%v", c, r.value[k])
	}
	sb.WriteByte('}')

	return sb.String()
}
