package config

import (
	"github.com/cellgraph/tracklink/lap"
	"github.com/cellgraph/tracklink/score"
)

// valueKind tags which literal shape a parsed Value holds.
type valueKind int

const (
	vNumber valueKind = iota
	vBool
	vString
	vVector
)

// Value is one parsed "NAME = VALUE" right-hand side: exactly one of its
// fields is meaningful, selected by kind.
type Value struct {
	kind    valueKind
	number  float64
	boolean bool
	str     string
	vector  []float64
}

// ScoreRange is an (lo, hi) gating interval.
type ScoreRange struct {
	Lo, Hi float64
}

// LinkerOptions mirrors spec.md §4.4's options table exactly.
type LinkerOptions struct {
	LinkedBy          string
	LinkCalc          score.Kind
	LinkingScoreRange ScoreRange

	MaxTrackAge int

	TrackMitosis       bool
	MinAgeSinceMitosis int
	MitosisParam       string
	MitosisCalc        score.Kind
	MitosisScoreRange  ScoreRange
	MitosisLinkToFrame int

	LAPSolver lap.Algorithm
}

// DefaultLinkerOptions returns the baseline options a caller can override
// field-by-field or via LoadLinkerOptions.
func DefaultLinkerOptions() LinkerOptions {
	return LinkerOptions{
		LinkedBy:           "centroid",
		LinkCalc:           score.Euclidean,
		LinkingScoreRange:  ScoreRange{Lo: 0, Hi: 1e9},
		MaxTrackAge:        1,
		TrackMitosis:       false,
		MinAgeSinceMitosis: 0,
		MitosisLinkToFrame: 0,
		LAPSolver:          lap.JV,
	}
}
