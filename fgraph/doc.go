// Package fgraph models a finite simple graph together with an f-vector,
// the fgraph6 text codec for reading it, and the remove_vertices_with_f_1
// pruning optimization. See DESIGN.md for the grounding of each piece.
package fgraph
