package sampling

import (
	"math"
	"math/rand"
	"time"

	"github.com/arwald/centra/brandes"
	"github.com/arwald/centra/graph"
	"github.com/arwald/centra/internal/rng"
	"github.com/arwald/centra/sssp"
	"golang.org/x/sync/errgroup"
)

// Randomized computes approximate betweenness centrality by sampling
// K = floor(2 ln n / ε²) sources uniformly with replacement (spec
// §4.F), accumulating each via brandes.Accumulate, then scaling the
// result by n/K.
func Randomized(g *graph.Graph, epsilon float64, opts ...Option) ([]float64, RunStats, error) {
	if epsilon <= 0 || epsilon > 1 {
		return nil, RunStats{}, ErrInvalidEpsilon
	}
	cfg := newConfig(opts...)
	start := time.Now()

	n := g.N()
	k := int(math.Floor(2 * math.Log(float64(n)) / (epsilon * epsilon)))
	if k < 1 {
		k = 1
	}

	sources := drawSources(rng.NewStreams(cfg.seed).Base(), n, k)
	r, err := accumulateSources(g, sources, cfg.workers)
	if err != nil {
		return nil, RunStats{}, err
	}

	scale := float64(n) / float64(k)
	for v := range r {
		r[v] *= scale
	}
	return r, RunStats{Elapsed: time.Since(start), Samples: k}, nil
}

// drawSources returns exactly k uniformly random source ids in [0, n),
// drawn with replacement. The slice is built with a zero-length, full
// capacity allocation followed by exactly k appends, never a sized
// constructor extended afterward.
func drawSources(r *rand.Rand, n, k int) []int32 {
	sources := make([]int32, 0, k)
	for i := 0; i < k; i++ {
		sources = append(sources, int32(r.Intn(n)))
	}
	return sources
}

// accumulateSources runs (C)+(D) for every source in sources, summing
// into one centrality vector of length g.N(). When workers > 1 the
// sources are partitioned into contiguous chunks, each handled by a
// private kernel/delta/partial triple, and the partials are summed in
// worker-index order. A kernel error (e.g. a wrapped pqueue invariant
// violation) aborts the run and is returned, never silently dropped.
func accumulateSources(g *graph.Graph, sources []int32, workers int) ([]float64, error) {
	n := g.N()
	c := make([]float64, n)

	if workers <= 1 || len(sources) <= 1 {
		k := sssp.NewKernel(g)
		delta := make([]float64, n)
		for _, s := range sources {
			res, err := k.Run(s)
			if err != nil {
				return nil, err
			}
			brandes.Accumulate(res, c, delta)
		}
		return c, nil
	}

	partials := make([][]float64, workers)
	var eg errgroup.Group
	chunk := (len(sources) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if hi > len(sources) {
			hi = len(sources)
		}
		if lo >= hi {
			partials[w] = make([]float64, n)
			continue
		}
		eg.Go(func() error {
			k := sssp.NewKernel(g)
			delta := make([]float64, n)
			partial := make([]float64, n)
			for _, s := range sources[lo:hi] {
				res, err := k.Run(s)
				if err != nil {
					return err
				}
				brandes.Accumulate(res, partial, delta)
			}
			partials[w] = partial
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, partial := range partials {
		for v, val := range partial {
			c[v] += val
		}
	}
	return c, nil
}
