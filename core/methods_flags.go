// Package core: graph-mode flag getters.
//
// These expose the construction-time flags (directed/weighted/loops/multi/mixed)
// set via GraphOption so callers and other packages (builder, view) can branch
// on mode without reaching into unexported fields.

package core

// Weighted reports whether the graph treats edge weights as meaningful.
func (g *Graph) Weighted() bool {
	return g.weighted
}

// Directed reports whether new edges default to directed.
func (g *Graph) Directed() bool {
	return g.directed
}

// Looped reports whether the graph allows self-loops.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// Multigraph reports whether the graph allows parallel edges.
func (g *Graph) Multigraph() bool {
	return g.allowMulti
}

// MixedEdges reports whether per-edge directedness overrides are allowed.
func (g *Graph) MixedEdges() bool {
	return g.allowMixed
}
