package sampling

import "errors"

var (
	// ErrInvalidEpsilon is returned when epsilon is outside (0, 1].
	ErrInvalidEpsilon = errors.New("sampling: epsilon must be in (0, 1]")
	// ErrInvalidThreshold is returned when c_thr < 2.
	ErrInvalidThreshold = errors.New("sampling: c_thr must be >= 2")
	// ErrInvalidSup is returned when sup < 20.
	ErrInvalidSup = errors.New("sampling: sup must be >= 20")
)
