package costmatrix

import "github.com/cellgraph/tracklink/track"

// ActiveTrack is the minimal view of an active track the builder needs:
// its stable ID (carried through so the caller can map assignment rows
// back to tracks) and its last-frame data record.
type ActiveTrack struct {
	TrackID  track.TrackID
	LastData track.Detection
}

// GateRange is an open scoring gate, exclusive at both ends: scores
// outside (Lo, Hi), Lo and Hi included, become +Inf before the matrix
// reaches the solver.
type GateRange struct {
	Lo, Hi float64
}

// Contains reports whether v falls within the gate.
func (g GateRange) Contains(v float64) bool {
	return v > g.Lo && v < g.Hi
}
