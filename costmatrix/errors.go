package costmatrix

import "errors"

// Sentinel errors for the costmatrix package.
var (
	// ErrMissingAttribute indicates a detection or active track lacks the
	// named linking attribute the builder needs to score a block.
	ErrMissingAttribute = errors.New("costmatrix: detection is missing the linking attribute")
)
