// Package ordering computes symmetric reorderings of sparse matrices.
//
// ReverseCuthillMcKee walks the level structure of the symmetrized sparsity
// graph breadth-first, visiting neighbors by increasing degree, and reverses
// the resulting order. Applied with sparse.Matrix.Permute it concentrates the
// nonzeros near the diagonal, which helps relaxation sweeps and direct
// factorization.
package ordering

import (
	"fmt"
	"sort"

	"github.com/jafarpenot/ter/sparse"
)

// queueItem pairs a node with its level in the current component.
type queueItem struct {
	node  int
	level int
}

// walker encapsulates mutable level-structure state.
type walker struct {
	adj     [][]int
	opts    Options
	queue   []queueItem
	visited []bool
	order   []int
}

// ReverseCuthillMcKee returns a permutation p (new position → old index) for
// the square matrix a. The pattern is symmetrized (A + Aᵀ) and the diagonal
// ignored. Disconnected components are ordered one after the other.
//
// Errors:
//   - ErrNonSquare, ErrOptionViolation, ErrStartOutOfRange.
func ReverseCuthillMcKee[T sparse.Scalar](a *sparse.Matrix[T], opts ...Option) ([]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	m, n := a.Dims()
	if m != n {
		return nil, fmt.Errorf("ReverseCuthillMcKee(%dx%d): %w", m, n, ErrNonSquare)
	}
	if o.Start >= n {
		return nil, fmt.Errorf("ReverseCuthillMcKee: start %d: %w", o.Start, ErrStartOutOfRange)
	}

	w := &walker{
		adj:     Adjacency(a),
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		order:   make([]int, 0, n),
	}
	if o.Start >= 0 {
		w.component(o.Start)
	}
	for {
		seed := w.minDegreeUnvisited()
		if seed < 0 {
			break
		}
		w.component(w.peripheral(seed))
	}

	for i, j := 0, len(w.order)-1; i < j; i, j = i+1, j-1 {
		w.order[i], w.order[j] = w.order[j], w.order[i]
	}

	return w.order, nil
}

// Adjacency returns the sorted off-diagonal neighbor lists of A + Aᵀ.
func Adjacency[T sparse.Scalar](a *sparse.Matrix[T]) [][]int {
	m, _ := a.Dims()
	sets := make([]map[int]struct{}, m)
	for i := range sets {
		sets[i] = map[int]struct{}{}
	}
	a.Do(func(i, j int, _ T) {
		if i == j || j >= m {
			return
		}
		sets[i][j] = struct{}{}
		sets[j][i] = struct{}{}
	})
	adj := make([][]int, m)
	for i, s := range sets {
		adj[i] = make([]int, 0, len(s))
		for j := range s {
			adj[i] = append(adj[i], j)
		}
		sort.Ints(adj[i])
	}

	return adj
}

// component runs Cuthill–McKee from start over its connected component.
func (w *walker) component(start int) {
	w.enqueue(start, 0)
	for len(w.queue) > 0 {
		item := w.dequeue()
		for _, nbr := range w.byDegree(item.node) {
			w.enqueue(nbr, item.level+1)
		}
	}
}

// enqueue marks node visited, records it in the order and queues it.
func (w *walker) enqueue(node, level int) {
	w.visited[node] = true
	w.order = append(w.order, node)
	w.opts.OnVisit(node, level)
	w.queue = append(w.queue, queueItem{node: node, level: level})
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// byDegree returns the unvisited neighbors of node by increasing degree,
// ties broken by index.
func (w *walker) byDegree(node int) []int {
	var out []int
	for _, nbr := range w.adj[node] {
		if !w.visited[nbr] {
			out = append(out, nbr)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(w.adj[out[i]]) < len(w.adj[out[j]])
	})

	return out
}

// minDegreeUnvisited returns the unvisited node of least degree, or -1.
func (w *walker) minDegreeUnvisited() int {
	best := -1
	for v, seen := range w.visited {
		if seen {
			continue
		}
		if best < 0 || len(w.adj[v]) < len(w.adj[best]) {
			best = v
		}
	}

	return best
}

// peripheral finds a pseudo-peripheral node of seed's component
// (George–Liu): repeatedly jump to a minimum-degree node of the deepest level
// while the eccentricity keeps growing.
func (w *walker) peripheral(seed int) int {
	v := seed
	levels, depth := w.levelStructure(v)
	for {
		cand := -1
		for u, l := range levels {
			if l != depth {
				continue
			}
			du := len(w.adj[u])
			if cand < 0 || du < len(w.adj[cand]) || (du == len(w.adj[cand]) && u < cand) {
				cand = u
			}
		}
		nl, nd := w.levelStructure(cand)
		if nd <= depth {
			return v
		}
		v, levels, depth = cand, nl, nd
	}
}

// levelStructure returns the BFS level of every unvisited node reachable from
// root and the maximum level. The walker's visited set is left untouched.
func (w *walker) levelStructure(root int) (map[int]int, int) {
	levels := map[int]int{root: 0}
	frontier := []int{root}
	depth := 0
	for len(frontier) > 0 {
		var next []int
		for _, u := range frontier {
			for _, nbr := range w.adj[u] {
				if w.visited[nbr] {
					continue
				}
				if _, ok := levels[nbr]; ok {
					continue
				}
				levels[nbr] = levels[u] + 1
				next = append(next, nbr)
			}
		}
		if len(next) > 0 {
			depth++
		}
		frontier = next
	}

	return levels, depth
}

// Bandwidth returns max |i − j| over the stored entries of a.
func Bandwidth[T sparse.Scalar](a *sparse.Matrix[T]) int {
	bw := 0
	a.Do(func(i, j int, _ T) {
		d := i - j
		if d < 0 {
			d = -d
		}
		if d > bw {
			bw = d
		}
	})

	return bw
}

// Gather returns y with y[i] = x[p[i]] (old → new numbering).
func Gather[T any](p []int, x []T) []T {
	y := make([]T, len(p))
	for i, old := range p {
		y[i] = x[old]
	}

	return y
}

// Scatter returns x with x[p[i]] = y[i] (new → old numbering).
func Scatter[T any](p []int, y []T) []T {
	x := make([]T, len(p))
	for i, old := range p {
		x[old] = y[i]
	}

	return x
}
