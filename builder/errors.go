// SPDX-License-Identifier: MIT
// Package: fchoosability/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w at the call site.
//   • Algorithms MUST NOT panic at runtime.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, n1, n2, ...) is
// smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1]. Covers RandomSparse(p).
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates BuildGraph could not apply a constructor
// (e.g. a nil Constructor was passed in cons).
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix construction order */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
