// Package builder provides internal configuration types and functional options
// for graph constructors. It centralizes common settings such as random number
// generator, vertex ID scheme, and edge weight distribution to keep builder
// implementations DRY and consistent.
//
// The key type is BuilderOption, a function that mutates a builderConfig.
// builderConfig holds five fields:
//   - rng:     *rand.Rand source for randomness (nil → deterministic).
//   - idFn:    IDFn to produce vertex identifiers from integer indices.
//   - weightFn: WeightFn to produce edge weights given an RNG.
//   - leftPrefix, rightPrefix: vertex ID prefixes for bipartite partitions.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of BuilderOption in order. Later options override earlier ones.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra space.
package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a graph constructor.
// It mutates the builderConfig before graph construction begins.
//
// As a rule, option constructors never panic at runtime, and ignore nil inputs.
type BuilderOption func(cfg *builderConfig)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// defaultLeftPrefix and defaultRightPrefix name the two sides of a bipartite
// partition when WithPartitionPrefix is not supplied or supplied with an
// empty string.
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// builderConfig holds the configurable parameters for graph builders:
//   - rng:       source of randomness (nil means deterministic).
//   - idFn:      function mapping index→vertex ID (IDFn).
//   - weightFn:  function mapping rng→edge weight (WeightFn).
//   - leftPrefix/rightPrefix: partition label prefixes for CompleteBipartite.
//
// builderConfig is not safe for concurrent mutation; each builder invocation
// should create its own config via newBuilderConfig.
type builderConfig struct {
	rng         *rand.Rand // optional RNG; nil means deterministic behavior
	idFn        IDFn       // function to generate vertex IDs from indices
	weightFn    WeightFn   // function to generate edge weights
	leftPrefix  string     // left partition prefix (CompleteBipartite)
	rightPrefix string     // right partition prefix (CompleteBipartite)
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. If opts is empty, returns
// defaults: nil RNG, DefaultIDFn, DefaultWeightFn, "L"/"R" partition prefixes.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	// Initialize defaults
	cfg := &builderConfig{
		rng:         nil,             // no RNG → deterministic ID and weight functions
		idFn:        DefaultIDFn,     // decimal IDs "0","1",…
		weightFn:    DefaultWeightFn, // constant DefaultEdgeWeight
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}

	// Apply each option in order; later options override earlier ones
	var opt BuilderOption
	for _, opt = range opts {
		opt(cfg)
	}

	return cfg
}

// WithPartitionPrefix sets the left/right partition label prefixes used by
// CompleteBipartite. Empty values fall back to the defaults "L"/"R".
// Complexity: O(1) time, O(1) space.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(cfg *builderConfig) {
		if left != "" {
			cfg.leftPrefix = left
		}
		if right != "" {
			cfg.rightPrefix = right
		}
	}
}

// WithIDScheme injects a custom IDFn into the builderConfig.
// If idFn is nil, this option is a no-op.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(idFn IDFn) BuilderOption {
	return func(cfg *builderConfig) {
		if idFn != nil {
			cfg.idFn = idFn
		}
	}
}

// WithWeightFn injects a custom WeightFn into the builderConfig.
// If wfn is nil, this option is a no-op.
// Complexity: O(1) time, O(1) space.
func WithWeightFn(wfn WeightFn) BuilderOption {
	return func(cfg *builderConfig) {
		if wfn != nil {
			cfg.weightFn = wfn
		}
	}
}

// WithRand sets an explicit *rand.Rand source for randomness.
// If rng is nil, this option is a no-op and leaves the original RNG.
// Complexity: O(1) time, O(1) space.
func WithRand(rng *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and
// assigns it as the RNG source. Use this for reproducible randomness.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
