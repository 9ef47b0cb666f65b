package costmatrix

import (
	"math"

	"github.com/cellgraph/tracklink/score"
	"github.com/cellgraph/tracklink/track"
)

// Build assembles the (n+m)x(n+m) block cost matrix for one frame step:
//
//	[ L   S  ]
//	[ S'  L' ]
//
// active has length n (current active tracks), detections has length m
// (this frame's new detections). linkAttr names the attribute both sides
// carry; linkCalc selects the scoring kind; gate forces out-of-range L
// entries to +Inf before the S/S'/L' blocks are derived from it.
//
// Returns ErrMissingAttribute if any detection or active track lacks
// linkAttr under linkCalc's expected shape.
func Build(active []ActiveTrack, detections []track.Detection, linkAttr string, linkCalc score.Kind, gate GateRange) ([][]float64, error) {
	n, m := len(active), len(detections)
	size := n + m

	cost := make([][]float64, size)
	for i := range cost {
		cost[i] = make([]float64, size)
	}

	// Every detection is checked for linkAttr, even with no active tracks.
	dVals := make([]any, m)
	for j, d := range detections {
		dVal, err := extractAttr(d, linkAttr, linkCalc)
		if err != nil {
			return nil, err
		}
		dVals[j] = dVal
	}

	// L block (top-left, n x m): rows 0..n-1, columns 0..m-1.
	minFiniteL, maxFiniteL := math.Inf(1), 0.0
	for i, a := range active {
		aVal, err := extractAttr(a.LastData, linkAttr, linkCalc)
		if err != nil {
			return nil, err
		}
		for j, dVal := range dVals {
			s, err := score.Compute(linkCalc, aVal, dVal)
			if err != nil {
				return nil, err
			}
			if !gate.Contains(s) {
				s = math.Inf(1)
			}
			cost[i][j] = s
			if !math.IsInf(s, 1) {
				if s < minFiniteL {
					minFiniteL = s
				}
				if s > maxFiniteL {
					maxFiniteL = s
				}
			}
		}
	}
	if math.IsInf(minFiniteL, 1) {
		minFiniteL = 0
	}

	// S block (top-right, n x n): "stop tracking" diagonal.
	stopCost := 1.05 * maxFiniteL
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				cost[i][m+j] = stopCost
			} else {
				cost[i][m+j] = math.Inf(1)
			}
		}
	}

	// S' block (bottom-left, m x m): "start new track" diagonal.
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i == j {
				cost[n+i][j] = stopCost
			} else {
				cost[n+i][j] = math.Inf(1)
			}
		}
	}

	// L' block (bottom-right, m x n): transpose of L with every finite
	// entry replaced by minFiniteL, keeping the problem feasible without
	// biasing the primary (L) assignment.
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v := cost[j][i] // L[j][i], the transpose source
			if math.IsInf(v, 1) {
				cost[n+i][m+j] = math.Inf(1)
			} else {
				cost[n+i][m+j] = minFiniteL
			}
		}
	}

	return cost, nil
}

// extractAttr reads the named attribute out of d in the shape linkCalc
// expects (a flat real vector for Euclidean, a sorted int set for the
// pixel-intersection kinds).
func extractAttr(d track.Detection, name string, kind score.Kind) (any, error) {
	switch kind {
	case score.Euclidean:
		v, ok := d.Vector(name)
		if !ok {
			return nil, ErrMissingAttribute
		}

		return v, nil
	case score.PxIntersect, score.PxIntersectUnique:
		v, ok := d.IntSet(name)
		if !ok {
			return nil, ErrMissingAttribute
		}

		return v, nil
	default:
		return nil, ErrMissingAttribute
	}
}
