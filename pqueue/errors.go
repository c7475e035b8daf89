package pqueue

import "errors"

// ErrKeyIncrease is returned by DecreaseKey when the requested key is not
// strictly smaller than the vertex's current key. This is a priority-queue
// invariant violation (spec §7iv): it signals a programming bug in the
// caller (the SSSP kernel only ever calls DecreaseKey with a strictly
// smaller distance), so callers should treat it as fatal rather than
// retry, but the queue itself never panics — it reports the violation and
// lets the caller decide.
var ErrKeyIncrease = errors.New("pqueue: decrease-key requires a strictly smaller key")

// ErrEmpty is returned by ExtractMin when the queue holds no elements.
var ErrEmpty = errors.New("pqueue: extract-min on empty queue")
