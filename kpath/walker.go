package kpath

import (
	"math/rand"

	"github.com/arwald/centra/graph"
)

// walker owns one goroutine's private random-walk scratch: the
// explored marks, the running visit counts, and the walk stack. It is
// never shared across goroutines.
type walker struct {
	g        *graph.Graph
	weighted bool
	rng      *rand.Rand

	explored []bool
	visits   []int64
	stack    []int32
}

func newWalker(g *graph.Graph, rng *rand.Rand) *walker {
	n := int(g.N())
	return &walker{
		g:        g,
		weighted: !g.Unweighted(),
		rng:      rng,
		explored: make([]bool, n),
		visits:   make([]int64, n),
		stack:    make([]int32, 0, n),
	}
}

// pickStart returns a uniformly random vertex with positive degree,
// retrying until one is found. Callers must have already verified at
// least one such vertex exists.
func (w *walker) pickStart() int32 {
	n := int(w.g.N())
	for {
		x := int32(w.rng.Intn(n))
		if w.g.Degree(int(x)) > 0 {
			return x
		}
	}
}

// run performs one bounded random walk of drawn length up to length,
// updating w.visits in place per spec §4.H's rollback discipline.
func (w *walker) run(length int) {
	x := w.pickStart()
	w.explored[x] = true
	w.stack = append(w.stack, x)

	l := w.rng.Intn(length) + 1

	j := 0
	for ; j < l; j++ {
		next, ok := w.step(x)
		if !ok {
			break
		}
		x = next
		w.explored[x] = true
		w.visits[x]++
		w.stack = append(w.stack, x)
	}

	truncated := j < l
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.explored[top] = false
		if truncated {
			w.visits[top]--
		}
	}
}

// step picks the next vertex from x among its unexplored neighbors,
// weighted inversely by edge weight on weighted graphs or uniformly on
// unweighted graphs. ok is false when no unexplored neighbor exists
// (the walk must truncate).
func (w *walker) step(x int32) (next int32, ok bool) {
	neighbors := w.g.Neighbors(int(x))

	if w.weighted {
		var total float64
		for _, e := range neighbors {
			if w.explored[e.To] || e.Weight == 0 {
				continue
			}
			total += 1 / e.Weight
		}
		if total == 0 {
			return 0, false
		}
		r := w.rng.Float64() * total
		var running float64
		for _, e := range neighbors {
			if w.explored[e.To] || e.Weight == 0 {
				continue
			}
			running += 1 / e.Weight
			if running > r {
				return e.To, true
			}
		}
		// Floating-point edge case: fall back to the last unexplored
		// candidate if rounding left the cumulative sum short of r.
		for i := len(neighbors) - 1; i >= 0; i-- {
			e := neighbors[i]
			if !w.explored[e.To] && e.Weight != 0 {
				return e.To, true
			}
		}
		return 0, false
	}

	count := 0
	for _, e := range neighbors {
		if !w.explored[e.To] {
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	randCount := w.rng.Intn(count)
	seen := 0
	for _, e := range neighbors {
		if w.explored[e.To] {
			continue
		}
		seen++
		if seen > randCount {
			return e.To, true
		}
	}
	return 0, false
}
