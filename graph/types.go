package graph

import "math"

// maxVertices bounds N so that int32 vertex indices never overflow and a
// dense adjacency slice of that size is not absurd to allocate.
const maxVertices = 1 << 30

// Edge is a single directed arc (target, weight) stored in a vertex's
// outgoing adjacency slice. For undirected graphs, Builder inserts one Edge
// per direction.
type Edge struct {
	To     int32
	Weight float64
}

// Graph is an immutable directed or undirected weighted adjacency store
// over the contiguous vertex range [0, N). Construct one with Builder; a
// *Graph is safe for concurrent read access by any number of goroutines
// once built, since nothing mutates it afterward.
type Graph struct {
	directed bool
	n        int32
	wMin     float64
	wMax     float64
	adj      [][]Edge
}

// N returns the number of vertices.
func (g *Graph) N() int { return int(g.n) }

// Directed reports whether the graph was built as directed.
func (g *Graph) Directed() bool { return g.directed }

// WMin returns the minimum edge weight observed across all edges, or
// +Inf if the graph has no edges.
func (g *Graph) WMin() float64 { return g.wMin }

// WMax returns the maximum edge weight observed across all edges, or
// -Inf if the graph has no edges.
func (g *Graph) WMax() float64 { return g.wMax }

// Unweighted reports whether every edge in the graph carries weight 1,
// the fast-path condition from spec §3/§6.1: WMin == WMax == 1.
func (g *Graph) Unweighted() bool {
	return g.wMin == 1 && g.wMax == 1
}

// Degree returns the out-degree of vertex u.
func (g *Graph) Degree(u int) int { return len(g.adj[u]) }

// Neighbor returns the j-th outgoing edge of vertex u, 0 <= j < Degree(u).
func (g *Graph) Neighbor(u, j int) Edge { return g.adj[u][j] }

// Neighbors returns the full outgoing adjacency slice of u. The returned
// slice must not be mutated by the caller; it is shared, read-only state.
func (g *Graph) Neighbors(u int) []Edge { return g.adj[u] }

// resetWeightBounds is called once by Builder.Build after all edges have
// been added, to establish the WMin/WMax invariant documented on Graph.
func (g *Graph) resetWeightBounds() {
	g.wMin = math.Inf(1)
	g.wMax = math.Inf(-1)
	for _, edges := range g.adj {
		for _, e := range edges {
			if e.Weight < g.wMin {
				g.wMin = e.Weight
			}
			if e.Weight > g.wMax {
				g.wMax = e.Weight
			}
		}
	}
}
