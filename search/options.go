package search

import "github.com/rs/zerolog"

// Option configures a Driver before it runs. Mirrors the builder package's
// functional-options convention.
type Option func(*config)

type config struct {
	residue    int
	modulus    int
	splitlevel int
	logger     zerolog.Logger
	metrics    *Metrics
}

// WithSharding sets the parallel-sharding parameters: this worker explores
// only search-tree branches at depth splitlevel whose modular odometer
// equals residue, out of modulus total shards. Pass modulus <= 0 to disable
// sharding (the default): every branch is explored.
func WithSharding(residue, modulus, splitlevel int) Option {
	return func(c *config) {
		c.residue = residue
		c.modulus = modulus
		c.splitlevel = splitlevel
	}
}

// WithLogger sets the logger the Driver emits progress and witness events
// to. The default is a disabled logger (zerolog.Nop()).
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMetrics attaches prometheus counters to the Driver. A nil Metrics (the
// default) disables instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}

func newConfig(opts ...Option) *config {
	c := &config{
		residue:    -1,
		modulus:    -1,
		splitlevel: -1,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
