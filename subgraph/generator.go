// Package subgraph implements the connected-induced-subgraph iterator the
// search engine uses to enumerate candidate colorability classes.
package subgraph

import "github.com/sghartke/fchoosability/bitset"

// layerFrame holds one layer of the layered BFS-like decomposition: the
// candidate vertices on this layer, the currently-chosen subset thereof,
// and their running unions through this layer.
type layerFrame struct {
	layerUniverse bitset.Set
	layerSubset   bitset.Set
	unionUniverse bitset.Set
	unionSubset   bitset.Set
}

// Generator enumerates, in decreasing lexicographic order, the connected
// induced subgraphs of a graph that contain a fixed root vertex and lie
// entirely within a caller-controlled eligible vertex set, excluding the
// singleton {root}.
type Generator struct {
	neighbors []bitset.Set
	root      int
	eligible  bitset.Set
	layers    []layerFrame
	curLayer  int
}

// New returns a Generator sharing the given (read-only) neighbor table. The
// neighbor table determines the maximum graph size the Generator can be
// Initialize'd against.
func New(neighbors []bitset.Set) *Generator {
	return &Generator{
		neighbors: neighbors,
		layers:    make([]layerFrame, len(neighbors)),
	}
}

// Initialize resets the Generator to enumerate subgraphs rooted at root,
// restricted to eligible. The first call to Next afterward produces the
// largest subgraph: the entire connected component containing root within
// eligible.
func (gen *Generator) Initialize(root int, eligible bitset.Set) {
	gen.root = root
	gen.eligible = eligible
	gen.curLayer = 0

	rootSet := bitset.Set(1) << uint(root)
	gen.layers[0] = layerFrame{
		layerUniverse: rootSet,
		unionUniverse: rootSet,
		unionSubset:   rootSet,
	}
	gen.layers[0].layerSubset = bitset.PredecessorOfFirstSubset(gen.layers[0].layerUniverse)
}

// CopyFrom overwrites gen's state with a copy of src's. Both must share the
// same neighbor table and have been allocated with the same capacity (via
// New against equal-length neighbor slices).
func (gen *Generator) CopyFrom(src *Generator) {
	gen.root = src.root
	gen.eligible = src.eligible
	gen.curLayer = src.curLayer
	copy(gen.layers[:gen.curLayer+1], src.layers[:src.curLayer+1])
}

// Next advances to the next connected subgraph in decreasing order,
// intersecting the eligible set with additionalConstraints first (the
// eligible set only ever shrinks across the Generator's lifetime). It
// returns false once no further subgraph exists — including when root
// itself has become ineligible, or when the only remaining candidate is
// the singleton {root}.
func (gen *Generator) Next(additionalConstraints bitset.Set) bool {
	gen.eligible &= additionalConstraints

	i := 0
	for i < gen.curLayer && gen.layers[i].layerSubset.SubsetOf(gen.eligible) {
		i++
	}
	gen.curLayer = i

	for {
		cur := &gen.layers[gen.curLayer]
		next, ok := bitset.NextSubset(cur.layerSubset, cur.layerUniverse&gen.eligible)
		cur.layerSubset = next
		if ok {
			break
		}
		gen.curLayer--
		if gen.curLayer < 0 {
			return false
		}
	}

	if gen.curLayer == 1 && gen.layers[1].layerSubset.Empty() {
		return false
	}

	if gen.curLayer > 0 {
		gen.layers[gen.curLayer].unionSubset =
			gen.layers[gen.curLayer-1].unionSubset | gen.layers[gen.curLayer].layerSubset
	}

	for {
		cur := gen.layers[gen.curLayer]

		var universe bitset.Set
		for v := 0; v < len(gen.neighbors); v++ {
			if cur.layerSubset.Has(v) {
				universe |= gen.neighbors[v] &^ cur.unionUniverse & gen.eligible
			}
		}

		first, ok := bitset.FirstSubset(universe)
		if !ok {
			break
		}

		gen.curLayer++
		gen.layers[gen.curLayer] = layerFrame{
			layerUniverse: universe,
			layerSubset:   first,
			unionUniverse: cur.unionUniverse | universe,
			unionSubset:   cur.unionSubset | first,
		}
	}

	return gen.curLayer > 0
}

// Subgraph returns the connected induced subgraph currently represented by
// the Generator's state: the union of the chosen subsets through the
// deepest active layer.
func (gen *Generator) Subgraph() bitset.Set {
	return gen.layers[gen.curLayer].unionSubset
}
