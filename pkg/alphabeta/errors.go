package alphabeta

import "errors"

// Every failure of generation and search wraps one of these, so callers
// can match with errors.Is. All of them are unrecoverable at the point
// of detection, there is nothing transient to retry.
var (
	// Negative depth or non-positive branching factor
	ErrInvalidParam = errors.New("alphabeta: invalid parameter")

	// Supplied leaf-value sequence ran out before every leaf got a value
	ErrExhausted = errors.New("alphabeta: leaf values exhausted")

	// Internal node with no children reached during evaluation,
	// such a node has no defined minimax value
	ErrMalformedTree = errors.New("alphabeta: malformed tree")
)
