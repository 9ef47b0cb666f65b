package lap

import "errors"

// Sentinel errors for the lap package. Algorithms never panic on
// user-triggered conditions; malformed input always surfaces as one of
// these, checkable with errors.Is.
var (
	// ErrNaN indicates the cost matrix contains a NaN entry.
	ErrNaN = errors.New("lap: cost matrix contains NaN")

	// ErrNegative indicates the cost matrix contains a negative entry.
	ErrNegative = errors.New("lap: cost matrix contains a negative entry")

	// ErrRaggedMatrix indicates the cost matrix's rows are not all the
	// same length.
	ErrRaggedMatrix = errors.New("lap: cost matrix rows have unequal length")

	// ErrEmptyMatrix indicates the cost matrix has zero rows or zero
	// columns.
	ErrEmptyMatrix = errors.New("lap: cost matrix is empty")

	// ErrInfeasible indicates the matrix's effective (non-infinite) shape
	// is empty: every row or every column is entirely +Inf, so there is
	// no solvable reduced problem left.
	ErrInfeasible = errors.New("lap: no feasible assignment (effective shape is empty)")

	// ErrUnknownAlgorithm indicates Options.Algorithm names a solver that
	// does not exist.
	ErrUnknownAlgorithm = errors.New("lap: unknown algorithm")
)
