// Package builder provides reusable "functional-options"-style building blocks
// for constructing core.Graph fixtures. It centralizes common configuration,
// ID schemes, and edge-weight distributions, keeping constructors DRY and
// deterministic.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID-scheme, weight function, partition prefixes.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//   - Edge-weight distribution:
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//   - Topology constructors (impl_*.go): Complete, CompleteBipartite, Cycle,
//     Path, RandomSparse.
//
// Guarantees:
//
//   - Re-running the same constructor on g does not duplicate vertices
//     (AddVertex is idempotent). Edges are not de-duplicated: on a graph without
//     multi-edges the re-run fails with core.ErrMultiEdgeNotAllowed, and on a
//     multigraph it adds parallel edges.
//   - Option constructors never panic; nil inputs are ignored.
//   - Sentinel errors (errors.go) for invalid build parameters; callers branch
//     with errors.Is.
//   - Documented algorithmic complexity (O(n), O(n²), O(V+E), etc.) per constructor.
package builder
