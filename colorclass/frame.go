// Package colorclass implements the per-color search state: the candidate
// colorability class for one color, the per-vertex list-fill counters that
// derive from it, and the subgraph generators used to advance it.
package colorclass

import (
	"github.com/sghartke/fchoosability/bitset"
	"github.com/sghartke/fchoosability/subgraph"
)

// Frame holds the state for one color in the search stack.
type Frame struct {
	n int

	// ColorabilityClass is the connected subgraph currently chosen for this
	// color.
	ColorabilityClass bitset.Set

	// L[v] is the number of earlier colors already assigned to v's list,
	// not counting this color.
	L []int

	// EligibleVertices has bit v set iff L[v] < f[v], i.e. v's list can
	// still grow.
	EligibleVertices bitset.Set

	// Generators holds one connected-subgraph generator per vertex, rooted
	// at that vertex.
	Generators []*subgraph.Generator

	// EligibleGenerators is a subset of EligibleVertices; bit v clear means
	// generator v has been exhausted for this frame.
	EligibleGenerators bitset.Set
}

// New allocates a zeroed Frame for a graph with the given neighbor table,
// with one subgraph.Generator per vertex sharing that table.
func New(neighbors []bitset.Set) *Frame {
	n := len(neighbors)
	gens := make([]*subgraph.Generator, n)
	for v := range gens {
		gens[v] = subgraph.New(neighbors)
	}
	return &Frame{
		n:          n,
		L:          make([]int, n),
		Generators: gens,
	}
}

// GenerateSubgraph produces the next colorability-class candidate into
// ColorabilityClass. The generator chosen to advance is, among
// EligibleGenerators, the vertex v with minimum L[v], ties broken by
// largest index. Returns false once EligibleGenerators is exhausted.
func (fr *Frame) GenerateSubgraph() bool {
	for {
		minL := fr.n
		minV := -1
		for v := fr.n - 1; v >= 0; v-- {
			if !fr.EligibleGenerators.Has(v) {
				continue
			}
			if fr.L[v] < minL {
				minL = fr.L[v]
				minV = v
			}
		}
		if minV < 0 {
			return false
		}

		if fr.Generators[minV].Next(fr.EligibleVertices) {
			fr.ColorabilityClass = fr.Generators[minV].Subgraph()
			return true
		}
		fr.EligibleGenerators = fr.EligibleGenerators.Without(minV)
	}
}

// SetupNextFrom initializes fr as the successor of prev, under the
// assumption that prev.ColorabilityClass will be committed as prev's color.
func (fr *Frame) SetupNextFrom(prev *Frame, f []int) {
	fr.EligibleVertices = prev.EligibleVertices
	for v := 0; v < fr.n; v++ {
		if prev.ColorabilityClass.Has(v) {
			fr.L[v] = prev.L[v] + 1
			if fr.L[v] >= f[v] {
				fr.EligibleVertices = fr.EligibleVertices.Without(v)
			}
		} else {
			fr.L[v] = prev.L[v]
		}
	}

	for v := range fr.Generators {
		fr.Generators[v].CopyFrom(prev.Generators[v])
	}

	fr.EligibleGenerators = prev.EligibleGenerators & fr.EligibleVertices
	fr.ColorabilityClass = prev.ColorabilityClass
}

// InitializeRoot sets up fr as color 0's initial frame for an n-vertex graph
// with f-vector f: L all zero, EligibleVertices = {v : f[v] > 0}, each
// generator rooted at its vertex and restricted to eligible vertices with
// index <= its root.
func (fr *Frame) InitializeRoot(f []int) {
	fr.EligibleVertices = 0
	for v := 0; v < fr.n; v++ {
		fr.L[v] = 0
		if f[v] > 0 {
			fr.EligibleVertices = fr.EligibleVertices.With(v)
		}
	}
	fr.EligibleGenerators = fr.EligibleVertices

	lowMask := bitset.Set(0)
	for v := 0; v < fr.n; v++ {
		lowMask = lowMask.With(v)
		fr.Generators[v].Initialize(v, fr.EligibleVertices&lowMask)
	}
}
