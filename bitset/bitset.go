// Package bitset provides the fixed-width vertex-set primitive the search
// engine builds on: a single machine word used as a set of up to MaxVertices
// vertices, plus reverse-lexicographic subset enumeration over a universe
// that may shrink between calls.
package bitset

import "math/bits"

// Set is a bitset over vertex indices [0, MaxVertices). Bit i corresponds to
// vertex i.
type Set uint64

// MaxVertices is the largest vertex count this representation supports,
// bounded by fgraph6's single-byte encoding of n (n <= 63).
const MaxVertices = 63

// Has reports whether vertex v is a member of s.
func (s Set) Has(v int) bool {
	return s&(1<<uint(v)) != 0
}

// With returns s with vertex v added.
func (s Set) With(v int) Set {
	return s | (1 << uint(v))
}

// Without returns s with vertex v removed.
func (s Set) Without(v int) Set {
	return s &^ (1 << uint(v))
}

// Len returns the number of members of s.
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Empty reports whether s has no members.
func (s Set) Empty() bool {
	return s == 0
}

// SubsetOf reports whether every member of s is also a member of of.
func (s Set) SubsetOf(of Set) bool {
	return s&^of == 0
}

// FirstSubset sets x to the first subset in reverse-lex order of universe,
// which is universe itself. It returns false iff universe is empty.
func FirstSubset(universe Set) (Set, bool) {
	return universe, universe != 0
}

// PredecessorOfFirstSubset returns the value that, passed as x to
// NextSubset along with universe, yields the first subset (universe
// itself) on the following call.
func PredecessorOfFirstSubset(universe Set) Set {
	return universe + 1
}

// NextSubset returns the subset of universe immediately following x in
// reverse-lex order, and a bool reporting whether x and universe were both
// nonempty beforehand (i.e. whether a next subset was meaningfully
// defined). The empty set is a valid subset and is returned as the last
// one before exhaustion.
//
// This is stable under a universe that has shrunk since x was computed:
// it does not assume x & ^universe == 0. A naive (x-1) & universe breaks
// in that case; this instead finds the highest bit of x-1 outside the
// (possibly narrower) universe and fills all lower bits before masking.
func NextSubset(x, universe Set) (Set, bool) {
	ok := x != 0 && universe != 0

	x--

	y := x &^ universe
	y |= y >> 1
	y |= y >> 2
	y |= y >> 4
	y |= y >> 8
	y |= y >> 16
	y |= y >> 32

	x = (x | y) & universe

	return x, ok
}
