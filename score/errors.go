package score

import "errors"

// Sentinel errors for the score package. Callers should compare with
// errors.Is, never string-match.
var (
	// ErrLengthMismatch indicates two vectors passed to a length-sensitive
	// kind (e.g. euclidean) do not have the same length.
	ErrLengthMismatch = errors.New("score: vector length mismatch")

	// ErrNotFlatVector indicates an operand passed to Compute does not
	// have the slice type its Kind expects ([]float64 for Euclidean,
	// []int for the pixel-intersection kinds). Sortedness and uniqueness
	// are not checked.
	ErrNotFlatVector = errors.New("score: input is not a flat vector")

	// ErrUnknownKind indicates an unrecognized Kind was passed to Compute.
	ErrUnknownKind = errors.New("score: unknown kind")
)
