// SPDX-License-Identifier: MIT

// Package sparse - relaxation sweeps.

package sparse

// ApplySSOR performs one symmetric successive over-relaxation sweep on x.
// MAIN DESCRIPTION:
//   - Forward pass i = 0..m-1, then backward pass i = m-1..0, each applying
//     r = b[i] - Σ_j A(i,j)·x[j]; x[i] += omega·r·invDiag[i].
//
// Behavior highlights:
//   - No division is performed: invDiag holds the pre-inverted diagonal.
//   - invDiag is not checked against the actual diagonal of A.
//   - The sum uses the freshest x values (Gauss-Seidel ordering).
//
// Requirements:
//   - A square; len(b) == len(invDiag) == len(x) == m, otherwise panics
//     (ErrDimensionMismatch).
//
// Complexity:
//   - Time O(2·nnz), Space O(1).
func (a *Matrix[T]) ApplySSOR(b, invDiag, x []T, omega T) {
	if a.m != a.n {
		shapePanic(opSSOR, a.m, a.n, a.n, a.n)
	}
	for _, l := range [...]int{len(b), len(invDiag), len(x)} {
		if l != a.m {
			lengthPanic(opSSOR, a.m, l)
		}
	}
	for i := 0; i < a.m; i++ {
		r := b[i] - a.rows[i].dot(x)
		x[i] += omega * r * invDiag[i]
	}
	for i := a.m - 1; i >= 0; i-- {
		r := b[i] - a.rows[i].dot(x)
		x[i] += omega * r * invDiag[i]
	}
}

// InvDiagonal returns the vector of reciprocal diagonal entries 1/A(i,i).
//
// Errors:
//   - ErrNonSquare if m != n.
//   - ErrZeroDiagonal if some A(i,i) is absent or exactly zero.
func (a *Matrix[T]) InvDiagonal() ([]T, error) {
	if a.m != a.n {
		return nil, sparseErrorf(opInvDiagonal, a.m, a.n, ErrNonSquare)
	}
	var zero T
	inv := make([]T, a.m)
	for i := range a.rows {
		d, ok := a.rows[i].lookup(i)
		if !ok || d == zero {
			return nil, sparseErrorf(opInvDiagonal, i, i, ErrZeroDiagonal)
		}
		inv[i] = 1 / d
	}

	return inv, nil
}
