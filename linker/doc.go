// Package linker drives one frame at a time: build the block cost
// matrix (costmatrix), solve it (lap), apply the resulting assignment to
// the active-track set, age and retire tracks that went unmatched, and
// either spawn a new track or perform a three-way mitosis edit for every
// unmatched detection.
//
// AssignToFrame is the whole step, and it is atomic: every store mutation
// is staged in a local edit list and applied only once the solver has
// returned successfully, so a failed frame leaves the store exactly as
// it was before the call.
//
// Grounded on the two-stage online-association loop in the corpus's
// ByteTrack-style matcher (build matrix, solve, reconcile, age/retire,
// spawn) and on the pizza-tracking module's run loop for the
// retire-then-spawn ordering.
package linker
