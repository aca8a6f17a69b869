package search

import "errors"

// ErrInvalidGraph indicates the *fgraph.Graph passed to NewDriver is
// unusable for search (e.g. n == 0).
var ErrInvalidGraph = errors.New("search: invalid graph")

// ErrInternalInvariant indicates a detected invariant breach in the search
// state machine (e.g. a generator yielding a subgraph not contained in its
// eligible set, or L[v] exceeding f[v]). Per spec.md's error taxonomy this
// is fatal: it indicates a bug in this package, not a malformed input.
var ErrInternalInvariant = errors.New("search: internal invariant violated")
