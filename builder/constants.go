// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults across topology constructors.
package builder

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight int64 = 1
