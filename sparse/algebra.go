// SPDX-License-Identifier: MIT

// Package sparse - matrix algebra kernels.
//
// Purpose:
//   - Elementwise sum, scalar scaling, transpose and sparse×sparse product,
//     all producing a fresh matrix assembled through Row.AddInteraction so that
//     coinciding entries accumulate without a separate merge step.
//
// Notes:
//   - Results inherit the receiver's configuration (bounds-checking mode,
//     row capacity).
//   - Shape mismatches panic with an error wrapping ErrDimensionMismatch.
//   - Kernels iterate rows and slots in ascending order; the output is
//     deterministic for a given input.

package sparse

// Add returns C = A + B.
// MAIN DESCRIPTION:
//   - Elementwise sum of two matrices of identical shape.
//
// Implementation:
//   - Stage 1: panic unless A and B are both m×n.
//   - Stage 2: insert every stored entry of A into a fresh C, row by row.
//   - Stage 3: insert every stored entry of B into C; coinciding columns
//     accumulate through the insertion rule.
//
// Complexity:
//   - Time O(nnz(A)+nnz(B)) insertions, each O(nnz(row of C)).
func (a *Matrix[T]) Add(b *Matrix[T]) *Matrix[T] {
	if a.m != b.m || a.n != b.n {
		shapePanic(opAdd, a.m, a.n, b.m, b.n)
	}
	c := a.derived(a.m, a.n)
	for i := 0; i < a.m; i++ {
		dst := &c.rows[i]
		ra, rb := &a.rows[i], &b.rows[i]
		for k, col := range ra.index {
			dst.AddInteraction(col, ra.value[k])
		}
		for k, col := range rb.index {
			dst.AddInteraction(col, rb.value[k])
		}
	}

	return c
}

// Scale returns B = alpha·A with the same shape and sparsity pattern.
// Every stored entry is kept, including those that become zero.
func (a *Matrix[T]) Scale(alpha T) *Matrix[T] {
	b := a.derived(a.m, a.n)
	for i := range a.rows {
		src := &a.rows[i]
		dst := &b.rows[i]
		for k, col := range src.index {
			dst.AddInteraction(col, alpha*src.value[k])
		}
	}

	return b
}

// Transpose returns the n×m matrix B with B(j,i) = A(i,j).
// Rows of A are visited in ascending order, so every insertion into a row of
// B lands at its end and the per-entry cost stays O(1) in practice.
func (a *Matrix[T]) Transpose() *Matrix[T] {
	b := a.derived(a.n, a.m)
	for i := range a.rows {
		src := &a.rows[i]
		for k, col := range src.index {
			b.rows[col].AddInteraction(i, src.value[k])
		}
	}

	return b
}

// MatMul returns the m×p product A·B for an n×p matrix B.
// MAIN DESCRIPTION:
//   - Dense-style triple loop over the output columns of B.
//
// Implementation:
//   - For each output column k of B, for each row i of A, accumulate
//     Σ_j A(i,j)·B(j,k) with B(j,k) fetched by a linear scan of row j of B and insert
//     the sum into AB(i,k) when at least one term was multiplied.
//
// Behavior highlights:
//   - Pairs whose sum cancels to exactly zero are still stored when a product
//     term existed. Pairs with no contributing term are skipped.
//
// Complexity:
//   - Time O(p · nnz(A) · max nnz(row of B)). Adequate for genuinely sparse
//     operands only.
func (a *Matrix[T]) MatMul(b *Matrix[T]) *Matrix[T] {
	if a.n != b.m {
		shapePanic(opMatMul, a.m, a.n, b.m, b.n)
	}
	ab := a.derived(a.m, b.n)
	for k := 0; k < b.n; k++ {
		for i := range a.rows {
			ra := &a.rows[i]
			var sum T
			hit := false
			for s, j := range ra.index {
				v, ok := b.rows[j].lookup(k)
				if !ok {
					continue
				}
				sum += ra.value[s] * v
				hit = true
			}
			if hit {
				ab.rows[i].AddInteraction(k, sum)
			}
		}
	}

	return ab
}
