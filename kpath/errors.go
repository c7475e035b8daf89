package kpath

import "errors"

var (
	// ErrInvalidAlpha is returned when alpha is outside [-0.5, 0.5].
	ErrInvalidAlpha = errors.New("kpath: alpha must be in [-0.5, 0.5]")
	// ErrInvalidLength is returned when the path-length cap is outside [1, n].
	ErrInvalidLength = errors.New("kpath: path length must be in [1, n]")
	// ErrNoEdges is returned when no vertex has positive degree, so no
	// walk can ever start.
	ErrNoEdges = errors.New("kpath: graph has no vertex with positive degree")
)
