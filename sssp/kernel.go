package sssp

import (
	"fmt"
	"math"

	"github.com/arwald/centra/graph"
	"github.com/arwald/centra/pqueue"
)

// Kernel runs single-source shortest-path computations over one shared
// graph, reusing one scratch arena across sources. A Kernel is not safe
// for concurrent use; parallel drivers (package brandes/sampling) give
// each worker its own Kernel over the same *graph.Graph.
type Kernel struct {
	g *graph.Graph

	dist      []float64
	sigma     []uint64
	saturated []bool
	pred      [][]int32
	order     []int32

	heap *pqueue.FibHeap // non-nil only when g is weighted
	bfsQ []int32         // reused BFS queue, unweighted phase

	strictOverflow bool
	forceWeighted  bool

	res Result // reused view over the arrays above
}

// isWeighted reports whether this Run should execute the Dijkstra phase.
func (k *Kernel) isWeighted() bool {
	return k.forceWeighted || !k.g.Unweighted()
}

// NewKernel allocates a Kernel's scratch arena once for a graph with
// g.N() vertices and applies any Options.
func NewKernel(g *graph.Graph, opts ...Option) *Kernel {
	n := g.N()
	k := &Kernel{
		g:         g,
		dist:      make([]float64, n),
		sigma:     make([]uint64, n),
		saturated: make([]bool, n),
		pred:      make([][]int32, n),
		order:     make([]int32, 0, n),
		bfsQ:      make([]int32, 0, n),
	}
	for i := range k.dist {
		k.dist[i] = math.Inf(1)
	}
	for _, opt := range opts {
		opt(k)
	}
	if k.isWeighted() {
		k.heap = pqueue.New(n)
	}
	return k
}

// Run computes the shortest-path tree from source and returns a *Result
// aliasing the Kernel's scratch arrays (see package doc for the lifetime
// contract). Run resets the arena touched by the previous call before
// computing the new source.
func (k *Kernel) Run(source int32) (*Result, error) {
	n := int32(k.g.N())
	if source < 0 || source >= n {
		return nil, ErrSourceOutOfRange
	}

	k.resetTouched()

	k.dist[source] = 0
	k.sigma[source] = 1

	var err error
	if k.isWeighted() {
		err = k.runDijkstra(source)
	} else {
		err = k.runBFS(source)
	}
	if err != nil {
		return nil, err
	}

	k.res = Result{
		Source:    source,
		Dist:      k.dist,
		Sigma:     k.sigma,
		Saturated: k.saturated,
		Pred:      k.pred,
		Order:     k.order,
	}
	return &k.res, nil
}

// resetTouched restores the arena entries named by the previous run's
// Order to their initial state, in O(|prior Order|) rather than O(N).
// Every vertex a run writes to is reached and so appears in its Order.
func (k *Kernel) resetTouched() {
	for _, v := range k.order {
		k.dist[v] = math.Inf(1)
		k.sigma[v] = 0
		k.saturated[v] = false
		k.pred[v] = k.pred[v][:0]
	}
	if k.heap != nil {
		k.heap.ResetTouched(k.order)
	}
	k.order = k.order[:0]
	k.bfsQ = k.bfsQ[:0]
}

// runDijkstra is the weighted phase: Dijkstra with multi-predecessor
// tracking over an index-based Fibonacci heap, per spec §4.C.
func (k *Kernel) runDijkstra(source int32) error {
	k.heap.Insert(source, 0)

	for !k.heap.Empty() {
		u, err := k.heap.ExtractMin()
		if err != nil {
			return fmt.Errorf("sssp: %w", err)
		}
		k.order = append(k.order, u)

		du := k.dist[u]
		for _, e := range k.g.Neighbors(int(u)) {
			v := e.To
			alt := du + e.Weight

			if math.IsInf(k.dist[v], 1) {
				k.dist[v] = alt
				k.heap.Insert(v, alt)
			}

			switch {
			case alt == k.dist[v]:
				sum, sat := addSigma(k.sigma[v], k.sigma[u])
				k.sigma[v] = sum
				if sat {
					k.saturated[v] = true
					if k.strictOverflow {
						return fmt.Errorf("%w: vertex %d", ErrSigmaOverflow, v)
					}
				}
				k.pred[v] = append(k.pred[v], u)
			case alt < k.dist[v]:
				k.dist[v] = alt
				k.sigma[v] = k.sigma[u]
				k.saturated[v] = false
				k.pred[v] = append(k.pred[v][:0], u)
				if err := k.heap.DecreaseKey(v, alt); err != nil {
					return fmt.Errorf("sssp: decrease-key on vertex %d: %w", v, err)
				}
			}
		}
	}
	return nil
}

// runBFS is the unweighted phase: breadth-first search with
// multi-predecessor tracking, per spec §4.C.
func (k *Kernel) runBFS(source int32) error {
	k.bfsQ = append(k.bfsQ, source)

	for head := 0; head < len(k.bfsQ); head++ {
		u := k.bfsQ[head]
		k.order = append(k.order, u)

		du := k.dist[u]
		for _, e := range k.g.Neighbors(int(u)) {
			v := e.To

			if math.IsInf(k.dist[v], 1) {
				k.dist[v] = du + 1
				k.bfsQ = append(k.bfsQ, v)
			}

			if k.dist[v] == du+1 {
				sum, sat := addSigma(k.sigma[v], k.sigma[u])
				k.sigma[v] = sum
				if sat {
					k.saturated[v] = true
					if k.strictOverflow {
						return fmt.Errorf("%w: vertex %d", ErrSigmaOverflow, v)
					}
				}
				k.pred[v] = append(k.pred[v], u)
			}
		}
	}
	return nil
}
