package dataset

import "errors"

// Sentinel errors shared by every pipeline stage. Callers match them with
// errors.Is; stage functions wrap them with record/column context.
var (
	// ErrInvalidInput marks a field that could not be parsed as its required
	// type and is not covered by a missing-value convention.
	ErrInvalidInput = errors.New("invalid input")
	// ErrMissingField marks a required column absent from the table.
	ErrMissingField = errors.New("missing field")
	// ErrDegenerateGroup marks a zero-count group, which would divide by zero.
	ErrDegenerateGroup = errors.New("degenerate group")
)
