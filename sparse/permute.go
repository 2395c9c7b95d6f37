// SPDX-License-Identifier: MIT

package sparse

// Permute returns B = P·A·Pᵀ with B(i,j) = A(p[i], p[j]).
// p maps new positions to old ones and must be a permutation of [0,n).
//
// Errors:
//   - ErrNonSquare if A is not square.
//   - ErrBadPermutation if len(p) != n or p is not a bijection.
func (a *Matrix[T]) Permute(p []int) (*Matrix[T], error) {
	if a.m != a.n {
		return nil, sparseErrorf(opPermute, a.m, a.n, ErrNonSquare)
	}
	inv, err := InversePermutation(p, a.n)
	if err != nil {
		return nil, err
	}
	b := a.derived(a.m, a.n)
	a.Do(func(i, j int, v T) {
		b.rows[inv[i]].AddInteraction(inv[j], v)
	})

	return b, nil
}

// InversePermutation validates p as a permutation of [0,n) and returns q with
// q[p[i]] = i.
func InversePermutation(p []int, n int) ([]int, error) {
	if len(p) != n {
		return nil, sparseErrorf(opPermute, len(p), n, ErrBadPermutation)
	}
	q := make([]int, n)
	for i := range q {
		q[i] = -1
	}
	for i, old := range p {
		if old < 0 || old >= n || q[old] != -1 {
			return nil, sparseErrorf(opPermute, i, old, ErrBadPermutation)
		}
		q[old] = i
	}

	return q, nil
}
