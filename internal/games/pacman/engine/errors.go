package engine

import "errors"

var (
	// ErrConfiguration reports an invalid episode configuration or input:
	// bad grid size, populations that cannot fit, or an unknown direction.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrInvalidState reports a tick requested outside a running episode.
	ErrInvalidState = errors.New("invalid state")

	// ErrExhaustedSpace reports that the free-cell sampler ran out of cells.
	ErrExhaustedSpace = errors.New("no free cell left")
)
