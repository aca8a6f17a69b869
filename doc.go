// Package graph documents the fchoosability module: a combinatorial search
// engine that decides whether a graph G, together with a per-vertex list-size
// function f, is f-choosable.
//
// A graph is f-choosable if, no matter how an adversary assigns each vertex
// v a list of f(v) candidate colors, a proper coloring exists that picks one
// color per vertex from its own list. Deciding this requires searching over
// all "bad" list assignments an adversary could construct and showing none
// of them blocks every coloring — an exhaustive backtracking search over a
// space that itself has useful combinatorial structure (colorability
// classes are connected induced subgraphs).
//
// Everything is organized under focused subpackages:
//
//	core/          — the mutable, thread-safe Graph/Vertex/Edge primitives
//	builder/       — constructors (Complete, Cycle, Path, RandomSparse, ...)
//	bfs/           — connectivity verification used by generated fixtures
//	bitset/        — fixed-width vertex sets and reverse-lexicographic subset
//	                 enumeration over a shrinking universe
//	fgraph/        — the dense (n, f-vector, adjacency) search representation,
//	                 its fgraph6 text codec, and f==1 pruning
//	subgraph/      — the connected-induced-subgraph generator
//	colorclass/    — per-color search frames built on top of subgraph
//	search/        — the feasible-coloring checker and the outer bad-list-
//	                 assignment search driver
//	nullstellensatz/ — interface only, for an external exact-cover collaborator
//	cmd/fchoosability/ — a CLI reading fgraph6 graphs from stdin
//
//	go get github.com/sghartke/fchoosability
package graph
