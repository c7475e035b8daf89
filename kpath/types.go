package kpath

import "time"

// Option configures Run.
type Option func(*config)

type config struct {
	seed    int64
	workers int
}

func newConfig(opts ...Option) config {
	cfg := config{seed: 0, workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	return cfg
}

// WithSeed fixes the base RNG seed. Seed 0 (the default) maps to a
// fixed internal default rather than a clock read.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithWorkers sets the number of goroutines across which walks are
// partitioned. A value < 1 is treated as 1 (sequential).
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// RunStats reports the wall-clock duration and the number of walks
// actually run (T) for a completed estimation.
type RunStats struct {
	Elapsed time.Duration
	Walks   int
}
