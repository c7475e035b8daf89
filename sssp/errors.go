package sssp

import "errors"

// ErrSourceOutOfRange indicates Run was called with a source vertex
// outside [0, N).
var ErrSourceOutOfRange = errors.New("sssp: source vertex out of range")

// ErrSigmaOverflow indicates the shortest-path count sigma for some
// vertex would overflow uint64. With the default (non-strict) Kernel
// this is never returned — the count is saturated instead and flagged
// in Result.Saturated; WithStrictOverflow makes it fatal.
var ErrSigmaOverflow = errors.New("sssp: shortest-path count overflowed")
