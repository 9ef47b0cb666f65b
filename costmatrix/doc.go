// Package costmatrix assembles the (n+m)x(n+m) block-structured cost
// matrix a frame's linker step hands to the LAP solver: active tracks
// against new detections (L), plus the "stop tracking"/"start new
// track" diagonal blocks (S, S') and the feasibility-preserving
// auxiliary block (L').
//
// Grounded on matrix/dense.go's row-major allocation discipline for the
// scratch buffer, and on the two-stage IoU-matrix construction idiom in
// the corpus's ByteTrack-style matcher (build one block, gate it, repeat).
package costmatrix
