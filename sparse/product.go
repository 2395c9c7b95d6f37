// SPDX-License-Identifier: MIT

// Package sparse - matrix-vector kernels.
//
// Product and ProductAdd make *Matrix[T] satisfy the operator contract
// consumed by the iterative solvers: both write into a caller-owned output
// vector and never allocate. MulVec is the allocating convenience form.
//
// Vector length mismatches are programmer errors and panic with an error
// wrapping ErrDimensionMismatch.

package sparse

// Product computes y = A·x.
//
// Requirements:
//   - len(x) == n, len(y) == m; otherwise panics (ErrDimensionMismatch).
//
// Complexity:
//   - Time O(nnz), Space O(1).
func (a *Matrix[T]) Product(x, y []T) {
	if len(x) != a.n {
		lengthPanic(opProduct, a.n, len(x))
	}
	if len(y) != a.m {
		lengthPanic(opProduct, a.m, len(y))
	}
	for i := range a.rows {
		y[i] = a.rows[i].dot(x)
	}
}

// ProductAdd computes y += alpha·A·x in place.
//
// Requirements:
//   - len(x) == n, len(y) == m; otherwise panics (ErrDimensionMismatch).
func (a *Matrix[T]) ProductAdd(alpha T, x, y []T) {
	if len(x) != a.n {
		lengthPanic(opProductAdd, a.n, len(x))
	}
	if len(y) != a.m {
		lengthPanic(opProductAdd, a.m, len(y))
	}
	for i := range a.rows {
		y[i] += alpha * a.rows[i].dot(x)
	}
}

// MulVec returns a freshly allocated A·x.
func (a *Matrix[T]) MulVec(x []T) []T {
	y := make([]T, a.m)
	a.Product(x, y)

	return y
}
