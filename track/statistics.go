package track

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Statistics summarizes one track's frame-to-frame displacement under a
// named vector attribute (typically the linking attribute). It is a
// read-only diagnostic over a snapshot; it does not participate in
// linking (spec.md §4.6: metadata and derived summaries never feed back
// into the linking algorithm).
//
// Grounded on banshee-data-velocity.report's use of gonum/v1/gonum/stat
// for summary statistics over a measurement series.
type Statistics struct {
	// Samples is the number of frame-to-frame displacements measured
	// (NumFrames-1 minus any null-record gaps).
	Samples int

	// MeanDisplacement and StdDevDisplacement are the Euclidean-norm
	// frame-to-frame displacement's mean and standard deviation.
	MeanDisplacement, StdDevDisplacement float64
}

// Statistics computes displacement statistics for track id under the
// named vector attribute.
func (s *Store) Statistics(id TrackID, attr string) (Statistics, error) {
	t, err := s.track(id)
	if err != nil {
		return Statistics{}, err
	}

	displacements := make([]float64, 0, len(t.Data))
	var prev []float64
	havePrev := false

	for _, d := range t.Data {
		v, ok := d.Vector(attr)
		if !ok {
			havePrev = false

			continue
		}
		if havePrev && len(prev) == len(v) {
			displacements = append(displacements, floats.Distance(prev, v, 2))
		}
		prev = v
		havePrev = true
	}

	if len(displacements) == 0 {
		return Statistics{}, nil
	}

	mean := stat.Mean(displacements, nil)
	std := stat.StdDev(displacements, nil)

	return Statistics{Samples: len(displacements), MeanDisplacement: mean, StdDevDisplacement: std}, nil
}
