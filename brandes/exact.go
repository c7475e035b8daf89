package brandes

import (
	"time"

	"github.com/arwald/centra/graph"
	"github.com/arwald/centra/sssp"
	"golang.org/x/sync/errgroup"
)

// Exact computes exact betweenness centrality over every vertex as a
// source (spec §4.E), returning one score per vertex and the elapsed
// wall-clock time. With WithWorkers(k > 1), sources are partitioned
// across k goroutines, each owning a private sssp.Kernel and delta
// scratch; partial vectors are summed into the result in worker order.
func Exact(g *graph.Graph, opts ...Option) ([]float64, RunStats, error) {
	cfg := newConfig(opts...)
	start := time.Now()

	n := g.N()
	c := make([]float64, n)

	if cfg.workers <= 1 || n <= 1 {
		k := sssp.NewKernel(g)
		delta := make([]float64, n)
		for s := 0; s < n; s++ {
			res, err := k.Run(int32(s))
			if err != nil {
				return nil, RunStats{}, err
			}
			Accumulate(res, c, delta)
		}
		return c, RunStats{Elapsed: time.Since(start)}, nil
	}

	partials, err := parallelSources(g, n, cfg.workers, func(k *sssp.Kernel, delta []float64, partial []float64, s int32) error {
		res, err := k.Run(s)
		if err != nil {
			return err
		}
		Accumulate(res, partial, delta)
		return nil
	})
	if err != nil {
		return nil, RunStats{}, err
	}
	for _, partial := range partials {
		for v, val := range partial {
			c[v] += val
		}
	}
	return c, RunStats{Elapsed: time.Since(start)}, nil
}

// parallelSources partitions sources [0,n) into workers contiguous
// chunks, runs fn over each source on a private kernel/delta/partial
// triple per worker, and returns the per-worker partial vectors in
// worker order (index 0 .. workers-1) once every worker has finished.
func parallelSources(g *graph.Graph, n, workers int, fn func(k *sssp.Kernel, delta, partial []float64, s int32) error) ([][]float64, error) {
	partials := make([][]float64, workers)
	var eg errgroup.Group

	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			partials[w] = make([]float64, n)
			continue
		}
		eg.Go(func() error {
			k := sssp.NewKernel(g)
			delta := make([]float64, n)
			partial := make([]float64, n)
			for s := lo; s < hi; s++ {
				if err := fn(k, delta, partial, int32(s)); err != nil {
					return err
				}
			}
			partials[w] = partial
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return partials, nil
}
