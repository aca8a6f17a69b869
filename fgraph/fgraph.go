// Package fgraph holds the data model the search engine runs on: a finite
// simple graph paired with a per-vertex list-size function f, represented
// densely as bit-packed neighbor sets.
package fgraph

import (
	"errors"
	"fmt"

	"github.com/sghartke/fchoosability/bitset"
)

// ErrTooManyVertices is returned when a graph would need more than
// bitset.MaxVertices vertices.
var ErrTooManyVertices = errors.New("fgraph: vertex count exceeds MaxVertices")

// ErrInvalidF is returned when some f[v] is not strictly positive.
var ErrInvalidF = errors.New("fgraph: f-vector entries must be positive")

// ErrVertexRange is returned when an edge endpoint falls outside [0, n).
var ErrVertexRange = errors.New("fgraph: edge endpoint out of range")

// ErrSelfLoop is returned when an edge connects a vertex to itself.
var ErrSelfLoop = errors.New("fgraph: self-loops are not permitted")

// Graph is an immutable, dense representation of a simple graph plus its
// f-vector. It is the type search.Driver operates on.
type Graph struct {
	N             int
	F             []int
	Neighbors     []bitset.Set
	PrevNeighbors []bitset.Set
}

// New builds a Graph over n vertices with the given f-vector and edge list.
// Edges are undirected pairs (u, v) with u != v. f must have length n and
// every entry must be >= 1.
func New(n int, f []int, edges [][2]int) (*Graph, error) {
	if n < 0 || n > bitset.MaxVertices {
		return nil, fmt.Errorf("fgraph.New: n=%d: %w", n, ErrTooManyVertices)
	}
	if len(f) != n {
		return nil, fmt.Errorf("fgraph.New: len(f)=%d, want %d: %w", len(f), n, ErrInvalidF)
	}
	for v, fv := range f {
		if fv <= 0 {
			return nil, fmt.Errorf("fgraph.New: f[%d]=%d: %w", v, fv, ErrInvalidF)
		}
	}

	neighbors := make([]bitset.Set, n)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("fgraph.New: edge (%d,%d): %w", u, v, ErrVertexRange)
		}
		if u == v {
			return nil, fmt.Errorf("fgraph.New: vertex %d: %w", u, ErrSelfLoop)
		}
		neighbors[u] = neighbors[u].With(v)
		neighbors[v] = neighbors[v].With(u)
	}

	g := &Graph{
		N:             n,
		F:             append([]int(nil), f...),
		Neighbors:     neighbors,
		PrevNeighbors: make([]bitset.Set, n),
	}
	g.computePrevNeighbors()
	return g, nil
}

// computePrevNeighbors fills PrevNeighbors[v] = Neighbors[v] restricted to
// indices strictly less than v, per spec.md's data model.
func (g *Graph) computePrevNeighbors() {
	for v := 0; v < g.N; v++ {
		mask := bitset.Set(1)<<uint(v) - 1
		g.PrevNeighbors[v] = g.Neighbors[v] & mask
	}
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	return g.Neighbors[u].Has(v)
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	return &Graph{
		N:             g.N,
		F:             append([]int(nil), g.F...),
		Neighbors:     append([]bitset.Set(nil), g.Neighbors...),
		PrevNeighbors: append([]bitset.Set(nil), g.PrevNeighbors...),
	}
}
