package fgraph

// Prune implements remove_vertices_with_f_1: iteratively remove vertices
// with f[v] == 1 (such a vertex's single color is forced, so each neighbor's
// list size can be reduced by one), propagating until a fixed point.
//
// Returns the pruned graph and true on success. Returns (nil, false) if any
// f[v] is <= 0 to begin with, if propagation would drive some f[v] to 0, or
// if fewer than 2 vertices remain: in every such case this optimization does
// not apply, and the caller should fall back to running the search on the
// unpruned graph rather than inferring a verdict from the failure. This does
// not alter search.Driver's semantics: it is wired as a pre-processing step
// cmd/fchoosability runs before constructing a search.Driver.
func (g *Graph) Prune() (*Graph, bool) {
	n := g.N
	f := make([]int, n)
	copy(f, g.F)

	for _, fv := range f {
		if fv <= 0 {
			return nil, false
		}
	}

	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			adj[i][j] = g.HasEdge(i, j)
		}
	}

	removed := make([]bool, n)
	remaining := n

	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if f[v] == 1 {
			queue = append(queue, v)
		}
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if removed[v] {
			continue
		}
		if f[v] != 1 {
			continue // was raised off the queue by a subsequent update, no longer eligible
		}

		for u := 0; u < n; u++ {
			if u == v || removed[u] || !adj[v][u] {
				continue
			}
			adj[v][u] = false
			adj[u][v] = false
			f[u]--
			if f[u] == 0 {
				return nil, false
			}
			if f[u] == 1 {
				queue = append(queue, u)
			}
		}

		f[v] = 0
		removed[v] = true
		remaining--
	}

	if remaining <= 1 {
		return nil, false
	}

	keep := make([]int, 0, remaining)
	for v := 0; v < n; v++ {
		if !removed[v] {
			keep = append(keep, v)
		}
	}

	newIndex := make(map[int]int, len(keep))
	for i, v := range keep {
		newIndex[v] = i
	}

	newF := make([]int, len(keep))
	var edges [][2]int
	for i, v := range keep {
		newF[i] = f[v]
		for j := i + 1; j < len(keep); j++ {
			u := keep[j]
			if adj[v][u] {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	pruned, err := New(len(keep), newF, edges)
	if err != nil {
		return nil, false
	}
	return pruned, true
}
