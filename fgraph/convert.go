package fgraph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sghartke/fchoosability/core"
)

// ErrFMissing is returned by FromCore when the f-vector does not cover
// every vertex core.Graph reports.
var ErrFMissing = errors.New("fgraph: f-vector missing entry for vertex")

// FromCore converts a dynamic core.Graph into a dense fgraph.Graph, given a
// per-vertex f map keyed by the core.Graph's string vertex IDs. Vertex IDs
// are assigned dense indices [0, n) in sorted order, so the mapping is
// deterministic for a given vertex ID set.
//
// This is the bridge that lets builder-constructed fixtures (Complete,
// CompleteBipartite, Cycle, Path, RandomSparse) and fgraph6-decoded graphs
// share the same search.Driver input representation.
func FromCore(g *core.Graph, f map[string]int) (*Graph, error) {
	ids := g.Vertices()
	sort.Strings(ids)

	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	fVec := make([]int, n)
	for i, id := range ids {
		fv, ok := f[id]
		if !ok {
			return nil, fmt.Errorf("fgraph.FromCore: vertex %q: %w", id, ErrFMissing)
		}
		fVec[i] = fv
	}

	seen := make(map[[2]int]bool)
	var edges [][2]int
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		if u == v {
			continue // self-loops have no meaning for list-coloring search
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if seen[key] {
			continue // collapse parallel edges: adjacency is Boolean here
		}
		seen[key] = true
		edges = append(edges, key)
	}

	return New(n, fVec, edges)
}

// UniformF returns an f map assigning the same value k to every vertex of
// g, a convenience for the common case of testing f ≡ k against spec.md's
// end-to-end scenarios.
func UniformF(g *core.Graph, k int) map[string]int {
	ids := g.Vertices()
	f := make(map[string]int, len(ids))
	for _, id := range ids {
		f[id] = k
	}
	return f
}
