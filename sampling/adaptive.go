package sampling

import (
	"time"

	"github.com/arwald/centra/graph"
	"github.com/arwald/centra/internal/rng"
	"github.com/arwald/centra/sssp"
	"golang.org/x/sync/errgroup"
)

// Adaptive computes approximate betweenness centrality with per-vertex
// early freezing (spec §4.G). It draws K = max(1, floor(n/sup))
// sources uniformly with replacement, maintaining a running estimate
// A[v] and a frozen set: once A[v] crosses c_thr·n it is rescaled by
// the current sample count t and frozen, skipping all further updates.
// Unfrozen vertices are scaled by n/K once every sample has run.
//
// With WithWorkers(k > 1), the K samples are sharded across k workers;
// each worker runs a complete, independent adaptive estimation over its
// own shard (its own local t counter and frozen set), and the k
// independent estimates are averaged into the final result. This
// preserves the freeze semantics within each worker's run — freezing
// is inherently sequential over the samples that feed it — rather than
// attempting to share one global frozen set across goroutines.
func Adaptive(g *graph.Graph, cThr float64, sup int, opts ...Option) ([]float64, RunStats, error) {
	if cThr < 2 {
		return nil, RunStats{}, ErrInvalidThreshold
	}
	if sup < 20 {
		return nil, RunStats{}, ErrInvalidSup
	}
	cfg := newConfig(opts...)
	start := time.Now()

	n := g.N()
	k := n / sup
	if k < 1 {
		k = 1
	}

	streams := rng.NewStreams(cfg.seed)

	if cfg.workers <= 1 {
		sources := drawSources(streams.Base(), n, k)
		r, err := adaptiveRun(g, sources, cThr)
		if err != nil {
			return nil, RunStats{}, err
		}
		return r, RunStats{Elapsed: time.Since(start), Samples: k}, nil
	}

	workers := cfg.workers
	shard := (k + workers - 1) / workers
	estimates := make([][]float64, workers)
	active := 0
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo := w * shard
		hi := lo + shard
		if hi > k {
			hi = k
		}
		if lo >= hi {
			continue
		}
		active++
		workerRNG := streams.Worker(w)
		eg.Go(func() error {
			sources := drawSources(workerRNG, n, hi-lo)
			est, err := adaptiveRun(g, sources, cThr)
			if err != nil {
				return err
			}
			estimates[w] = est
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, RunStats{}, err
	}

	r := make([]float64, n)
	if active == 0 {
		active = 1
	}
	for _, est := range estimates {
		if est == nil {
			continue
		}
		for v, val := range est {
			r[v] += val
		}
	}
	for v := range r {
		r[v] /= float64(active)
	}
	return r, RunStats{Elapsed: time.Since(start), Samples: k}, nil
}

// adaptiveRun performs one complete sequential adaptive-sampling pass
// over sources, returning the resulting centrality estimate. A kernel
// error (e.g. a wrapped pqueue invariant violation) aborts the pass and
// is returned, never silently dropped.
func adaptiveRun(g *graph.Graph, sources []int32, cThr float64) ([]float64, error) {
	n := g.N()
	a := make([]float64, n)
	frozen := make([]bool, n)
	delta := make([]float64, n)
	k := sssp.NewKernel(g)

	threshold := cThr * float64(n)
	var t int
	for _, s := range sources {
		res, err := k.Run(s)
		if err != nil {
			return nil, err
		}
		t++
		adaptiveAccumulate(res, a, delta, frozen, threshold, float64(t))
	}

	scale := float64(n) / float64(len(sources))
	for v := range a {
		if !frozen[v] {
			a[v] *= scale
		}
	}
	return a, nil
}

// adaptiveAccumulate runs the reverse-discovery-order back-propagation
// for one source, updating a and frozen in place per spec §4.G: frozen
// vertices are skipped entirely; unfrozen vertices accumulate delta and
// freeze (rescaled by n·a[v]/t) the first time they cross threshold.
func adaptiveAccumulate(res *sssp.Result, a, delta []float64, frozen []bool, threshold, t float64) {
	n := float64(len(a))
	for _, v := range res.Order {
		delta[v] = 0
	}

	for i := len(res.Order) - 1; i >= 0; i-- {
		u := res.Order[i]
		sigmaU := float64(res.Sigma[u])
		coeff := 1 + delta[u]
		for _, p := range res.Pred[u] {
			delta[p] += (float64(res.Sigma[p]) / sigmaU) * coeff
		}
		if u == res.Source || frozen[u] {
			continue
		}
		a[u] += delta[u]
		if a[u] > threshold {
			a[u] = n * a[u] / t
			frozen[u] = true
		}
	}
}
