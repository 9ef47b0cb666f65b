// Package track_test demonstrates building a tiny two-frame track by hand.
package track_test

import (
	"fmt"

	"github.com/cellgraph/tracklink/track"
)

// ExampleStore demonstrates adding a track and appending a second frame.
func ExampleStore() {
	s := track.NewStore()
	id := s.AddTrack(1, track.Detection{Attrs: map[string]any{"centroid": []float64{0, 0}}})
	_ = s.AppendFrame(id, 2, track.Detection{Attrs: map[string]any{"centroid": []float64{1, 1}}})

	last, _ := s.GetLastData(id)
	v, _ := last.Vector("centroid")
	fmt.Println(v)
	// Output: [1 1]
}
