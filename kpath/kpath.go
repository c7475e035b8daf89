package kpath

import (
	"math"
	"time"

	"github.com/arwald/centra/graph"
	"github.com/arwald/centra/internal/rng"
	"golang.org/x/sync/errgroup"
)

// Run estimates k-path centrality (spec §4.H) via T bounded random
// walks, T = floor(2·length²·n^(1-2·alpha)·ln n) + 1, each walk of a
// uniformly drawn length in [1, length] starting from a uniformly
// chosen vertex with positive degree. Weighted graphs select the next
// step with probability inversely proportional to edge weight among
// unexplored neighbors; unweighted graphs select uniformly among them.
func Run(g *graph.Graph, alpha float64, length int, opts ...Option) ([]float64, RunStats, error) {
	if alpha < -0.5 || alpha > 0.5 {
		return nil, RunStats{}, ErrInvalidAlpha
	}
	n := int(g.N())
	if length < 1 || length > n {
		return nil, RunStats{}, ErrInvalidLength
	}
	if !hasPositiveDegree(g) {
		return nil, RunStats{}, ErrNoEdges
	}
	cfg := newConfig(opts...)
	start := time.Now()

	nf := float64(n)
	t := int(math.Floor(2*float64(length)*float64(length)*math.Pow(nf, 1-2*alpha)*math.Log(nf))) + 1

	visits := runWalks(g, t, length, cfg)

	nov := make([]float64, n)
	scale := float64(length) * nf / float64(t)
	for v, count := range visits {
		nov[v] = float64(count) * scale
	}
	return nov, RunStats{Elapsed: time.Since(start), Walks: t}, nil
}

func hasPositiveDegree(g *graph.Graph) bool {
	n := int(g.N())
	for v := 0; v < n; v++ {
		if g.Degree(v) > 0 {
			return true
		}
	}
	return false
}

// runWalks runs t total walks, sequentially on one walker when
// cfg.workers <= 1, or sharded across cfg.workers goroutines (each
// with its own walker and derived RNG stream) otherwise, and returns
// the summed per-vertex visit counts.
func runWalks(g *graph.Graph, t, length int, cfg config) []int64 {
	n := int(g.N())
	visits := make([]int64, n)

	streams := rng.NewStreams(cfg.seed)

	if cfg.workers <= 1 {
		w := newWalker(g, streams.Base())
		for i := 0; i < t; i++ {
			w.run(length)
		}
		return w.visits
	}

	workers := cfg.workers
	chunk := (t + workers - 1) / workers
	partials := make([][]int64, workers)
	var eg errgroup.Group
	for wi := 0; wi < workers; wi++ {
		wi := wi
		lo := wi * chunk
		hi := lo + chunk
		if hi > t {
			hi = t
		}
		if lo >= hi {
			continue
		}
		workerRNG := streams.Worker(wi)
		eg.Go(func() error {
			w := newWalker(g, workerRNG)
			for i := lo; i < hi; i++ {
				w.run(length)
			}
			partials[wi] = w.visits
			return nil
		})
	}
	_ = eg.Wait()

	for _, partial := range partials {
		for v, val := range partial {
			visits[v] += val
		}
	}
	return visits
}
