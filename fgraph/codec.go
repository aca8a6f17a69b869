package fgraph

import (
	"errors"
	"fmt"
)

// radix64Alphabet is the fgraph6 character set, index == encoded value.
// Carried over verbatim from the upstream C++ "mapping" table.
const radix64Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz@#"

var radix64Inverse [256]int8

func init() {
	for i := range radix64Inverse {
		radix64Inverse[i] = -1
	}
	for i := 0; i < len(radix64Alphabet); i++ {
		radix64Inverse[radix64Alphabet[i]] = int8(i)
	}
}

// ErrMalformedInput is returned for any fgraph6 decoding failure (spec.md's
// MalformedInput error class): truncated records, invalid characters,
// out-of-range n.
var ErrMalformedInput = errors.New("fgraph: malformed fgraph6 record")

func encode6Bits(x int) byte {
	return radix64Alphabet[x]
}

func decode6Bits(c byte) (int, error) {
	v := radix64Inverse[c]
	if v < 0 {
		return 0, fmt.Errorf("fgraph: invalid fgraph6 character %q: %w", c, ErrMalformedInput)
	}
	return int(v), nil
}

// Encode renders g as a single fgraph6 record, per spec.md §6: one byte for
// n, a separator byte, n bytes for f[0..n), a separator byte, then the
// upper-triangular adjacency bit-packed in colex order (pairs (i,j), i<j,
// ordered by j then i), MSB-first within each 6-bit group.
func Encode(g *Graph) (string, error) {
	if g.N > 63 {
		return "", fmt.Errorf("fgraph.Encode: n=%d: %w", g.N, ErrTooManyVertices)
	}

	buf := make([]byte, 0, 2+g.N+1+((g.N*(g.N-1)/2)+5)/6)
	buf = append(buf, encode6Bits(g.N), '_')

	for v := 0; v < g.N; v++ {
		if g.F[v] > 63 {
			return "", fmt.Errorf("fgraph.Encode: f[%d]=%d exceeds 63: %w", v, g.F[v], ErrMalformedInput)
		}
		buf = append(buf, encode6Bits(g.F[v]))
	}
	buf = append(buf, '_')

	var val, mask int
	mask = 0
	for j := 0; j < g.N; j++ {
		for i := 0; i < j; i++ {
			val <<= 1
			if g.HasEdge(i, j) {
				val |= 1
			}
			mask++
			if mask == 6 {
				buf = append(buf, encode6Bits(val))
				val, mask = 0, 0
			}
		}
	}
	if mask > 0 {
		val <<= uint(6 - mask)
		buf = append(buf, encode6Bits(val))
	}

	return string(buf), nil
}

// Decode parses a single fgraph6 record into a Graph.
func Decode(record string) (*Graph, error) {
	if len(record) < 4 {
		return nil, fmt.Errorf("fgraph.Decode: record too short: %w", ErrMalformedInput)
	}

	cur := 0
	n, err := decode6Bits(record[cur])
	if err != nil {
		return nil, err
	}
	if n > 63 {
		return nil, fmt.Errorf("fgraph.Decode: n=%d: %w", n, ErrTooManyVertices)
	}
	cur += 2 // skip n byte and separator

	if len(record) < cur+n+1 {
		return nil, fmt.Errorf("fgraph.Decode: truncated f-vector: %w", ErrMalformedInput)
	}

	f := make([]int, n)
	for i := 0; i < n; i++ {
		fv, err := decode6Bits(record[cur])
		if err != nil {
			return nil, err
		}
		f[i] = fv
		cur++
	}
	cur++ // skip separator

	var edges [][2]int
	numPairs := n * (n - 1) / 2
	if numPairs > 0 {
		var val, mask int

		for j := 0; j < n; j++ {
			for i := 0; i < j; i++ {
				if mask == 0 {
					if cur >= len(record) {
						return nil, fmt.Errorf("fgraph.Decode: truncated adjacency: %w", ErrMalformedInput)
					}
					val, err = decode6Bits(record[cur])
					if err != nil {
						return nil, err
					}
					cur++
					mask = 1 << 5
				}

				if val&mask != 0 {
					edges = append(edges, [2]int{i, j})
				}
				mask >>= 1
			}
		}
	}

	return New(n, f, edges)
}
