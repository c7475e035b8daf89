package graph

// Option configures a Builder before construction. Options are applied in
// the order passed to NewBuilder.
type Option func(*Builder)

// WithDirected sets the graph's directedness. Default: undirected.
func WithDirected(directed bool) Option {
	return func(b *Builder) { b.g.directed = directed }
}

// Builder accumulates vertices and edges and produces an immutable Graph.
// A Builder is not safe for concurrent use; build on one goroutine, then
// share the resulting *Graph freely.
type Builder struct {
	g *Graph
}

// NewBuilder creates a Builder for a graph with exactly n vertices,
// 0 <= i < n. n must fit in an int32 and within the package's supported
// range, or NewBuilder returns ErrTooManyVertices.
func NewBuilder(n int, opts ...Option) (*Builder, error) {
	if n < 0 || n > maxVertices {
		return nil, ErrTooManyVertices
	}
	b := &Builder{
		g: &Graph{
			n:   int32(n),
			adj: make([][]Edge, n),
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// AddEdge appends an edge from u to v with the given weight, preserving
// insertion order (which governs neighbor-iteration order and therefore
// predecessor tie-breaking in the Brandes accumulator). If the graph is
// undirected, the reciprocal edge v->u is appended to v's adjacency list
// as well, matching the GML-reader contract in spec §6.1.
//
// Self-loops and parallel edges are permitted and never rejected, per the
// data-model invariant in spec §3.
func (b *Builder) AddEdge(u, v int, weight float64) error {
	if u < 0 || u >= int(b.g.n) || v < 0 || v >= int(b.g.n) {
		return ErrVertexOutOfRange
	}
	if weight < 0 {
		return ErrNegativeWeight
	}
	b.g.adj[u] = append(b.g.adj[u], Edge{To: int32(v), Weight: weight})
	if !b.g.directed && u != v {
		b.g.adj[v] = append(b.g.adj[v], Edge{To: int32(u), Weight: weight})
	}
	return nil
}

// Build finalizes the graph, computing WMin/WMax across all edges, and
// returns the resulting immutable Graph. The Builder must not be reused
// after Build is called.
func (b *Builder) Build() *Graph {
	b.g.resetWeightBounds()
	return b.g
}
