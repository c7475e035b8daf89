package brandes

import "time"

// Option configures a driver in this package.
type Option func(*config)

type config struct {
	workers int
}

func newConfig(opts ...Option) config {
	cfg := config{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	return cfg
}

// WithWorkers sets the number of goroutines across which source vertices
// are partitioned (spec §5's embarrassingly-parallel source dimension).
// A value < 1 is treated as 1 (sequential).
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// RunStats reports the wall-clock duration of a completed driver run,
// the Go translation of the original tool's coarse time_dif seconds
// field (spec §9: "expose monotonic high-resolution durations").
type RunStats struct {
	Elapsed time.Duration
}
