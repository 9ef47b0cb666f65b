// Package tracklink links detections across successive frames of a
// time-lapse experiment into persistent object tracks, and detects
// mitosis events that split one parent track into two daughters.
//
// The module is organized as a small pipeline of leaf packages, each
// importable on its own:
//
//	score/      — pairwise scoring kernels (euclidean, pixel-set overlap)
//	lap/        — Jonker-Volgenant and Munkres linear assignment solvers
//	track/      — the append-mostly track store and its Detection records
//	costmatrix/ — assembles the block-structured frame-to-frame cost matrix
//	config/     — linker option and metadata file loading
//	linker/     — the frame-to-frame state machine tying it all together
//
// A caller drives one tracking session by constructing a track.Store and
// a linker.Linker over it, then calling Linker.AssignToFrame once per
// incoming frame of detections:
//
//	store := track.NewStore()
//	l := linker.NewLinker(store, config.DefaultLinkerOptions())
//	for i, detections := range frames {
//	    // Frame indices start at 1 and must strictly increase.
//	    if err := l.AssignToFrame(i+1, detections); err != nil {
//	        // handle
//	    }
//	}
//
// Each package's example_test.go holds a runnable Example; the linker
// package's tests walk through end-to-end scenarios, including mitosis
// detection via pixel-set overlap.
package tracklink
