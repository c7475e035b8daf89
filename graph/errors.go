package graph

import "errors"

// Sentinel errors for the graph package. Callers should use errors.Is to
// branch on semantics rather than comparing error strings.
var (
	// ErrNegativeWeight indicates a negative edge weight was supplied; the
	// data model requires weights be finite and non-negative (spec §3).
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")

	// ErrVertexOutOfRange indicates an edge endpoint or vertex index lies
	// outside [0, N).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrTooManyVertices indicates a requested vertex count would overflow
	// the int32 index space this package uses for compactness. This is the
	// idiomatic Go substitute for an allocation-failure error (spec §7iii):
	// Go has no recoverable "malloc failed" return, so we guard the one
	// input that could make a slice allocation unreasonably large.
	ErrTooManyVertices = errors.New("graph: vertex count exceeds supported range")
)
