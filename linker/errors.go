package linker

import "errors"

// Sentinel errors for the linker package, per spec.md §6's error surface
// (InvalidInput, MissingAttribute, InfeasibleAssignment, SolverRejected)
// mapped onto this package's own taxonomy plus re-exported causes from
// costmatrix and lap via errors.Is/errors.Unwrap.
var (
	// ErrNonPositiveFrame indicates AssignToFrame was called with a
	// frame index <= 0, or not strictly greater than the previous call's.
	ErrNonPositiveFrame = errors.New("linker: frame index must be positive and strictly increasing")

	// ErrNilDetection indicates a Detection with a nil Attrs map was
	// passed in the detections slice.
	ErrNilDetection = errors.New("linker: detection attrs must not be nil")
)
