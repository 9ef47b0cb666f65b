package linker

import (
	"math"
	"time"

	"github.com/cellgraph/tracklink/costmatrix"
	"github.com/cellgraph/tracklink/lap"
	"github.com/cellgraph/tracklink/track"
)

// AssignToFrame advances the linker by one frame: it links detections to
// the active-track set, ages and retires tracks that went unmatched,
// spawns a new track (or performs a mitosis edit) for every detection
// that wasn't linked, and returns. Frame indices must be positive and
// strictly increasing across calls.
//
// If noNewTracks is set true, unmatched detections are simply dropped
// instead of spawning new tracks — used by callers replaying a known
// closed population.
//
// Every store write happens after costmatrix.Build and lap.Solve have
// both already returned without error, so a rejected frame (bad
// attribute, infeasible matrix) leaves the store untouched.
func (l *Linker) AssignToFrame(frameIdx int, detections []track.Detection, noNewTracks ...bool) error {
	if frameIdx <= 0 || frameIdx <= l.lastFrame {
		return ErrNonPositiveFrame
	}
	for _, d := range detections {
		if d.Attrs == nil {
			return ErrNilDetection
		}
	}
	skipNewTracks := len(noNewTracks) > 0 && noNewTracks[0]

	if l.store.Len() == 0 {
		for _, d := range detections {
			id := l.store.AddTrack(frameIdx, d)
			l.active = append(l.active, activeEntry{trackID: id})
		}
		l.lastFrame = frameIdx

		return nil
	}

	active := make([]costmatrix.ActiveTrack, len(l.active))
	for i, e := range l.active {
		last, err := l.store.GetLastData(e.trackID)
		if err != nil {
			return err
		}
		active[i] = costmatrix.ActiveTrack{TrackID: e.trackID, LastData: last}
	}

	gate := costmatrix.GateRange{Lo: l.opts.LinkingScoreRange.Lo, Hi: l.opts.LinkingScoreRange.Hi}
	cost, err := costmatrix.Build(active, detections, l.opts.LinkedBy, l.opts.LinkCalc, gate)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := lap.Solve(cost, lap.Options{Algorithm: l.opts.LAPSolver})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	n, m := len(active), len(detections)

	// Apply row assignments: track continuations vs. ages.
	matchedDetection := make([]bool, m)
	nextActive := make([]activeEntry, 0, len(l.active))
	for i, e := range l.active {
		col := result.RowSol[i]
		if col >= 0 && col < m {
			if err := l.store.AppendFrame(e.trackID, frameIdx, detections[col]); err != nil {
				return err
			}
			matchedDetection[col] = true
			e.age = 0
			e.ageSinceDivision++
			nextActive = append(nextActive, e)

			continue
		}

		// Unmatched this frame (assigned to its own S-block slot, or
		// genuinely unassigned by the solver): age it.
		e.age++
		e.ageSinceDivision++
		if e.age < l.opts.MaxTrackAge {
			nextActive = append(nextActive, e)
		}
		// Otherwise retired: dropped from the active set, left in the
		// store exactly as recorded.
	}
	l.active = nextActive

	mitosisCount := 0
	if !skipNewTracks {
		for j := 0; j < m; j++ {
			if matchedDetection[j] {
				continue
			}

			spawned, err := l.spawnOrDivide(frameIdx, j, detections[j])
			if err != nil {
				return err
			}
			if spawned == mitosisSpawn {
				mitosisCount++
			}
		}
	}

	l.lastFrame = frameIdx

	if l.observer != nil {
		l.observer.OnFrame(FrameDiagnostics{
			FrameIdx:      frameIdx,
			MatrixRows:    n + m,
			MatrixCols:    n + m,
			SolveDuration: elapsed,
			MitosisCount:  mitosisCount,
		})
	}

	return nil
}

type spawnKind int

const (
	spawnNew spawnKind = iota
	mitosisSpawn
)

// spawnOrDivide handles one unmatched detection: either a mitosis edit
// against the best-scoring eligible parent, or a fresh standalone track.
func (l *Linker) spawnOrDivide(frameIdx, detIdx int, det track.Detection) (spawnKind, error) {
	if l.opts.TrackMitosis {
		parent, ok, err := l.bestMitosisParent(frameIdx, det)
		if err != nil {
			return spawnNew, err
		}
		if ok {
			if err := l.performMitosis(frameIdx, parent, det); err != nil {
				return spawnNew, err
			}

			return mitosisSpawn, nil
		}
	}

	id := l.store.AddTrack(frameIdx, det)
	l.active = append(l.active, activeEntry{trackID: id})

	return spawnNew, nil
}

// bestMitosisParent scores det against every still-active track eligible
// to be a mitosis parent and returns the minimum-scoring one within the
// configured gate.
func (l *Linker) bestMitosisParent(frameIdx int, det track.Detection) (activeEntry, bool, error) {
	gate := costmatrix.GateRange{Lo: l.opts.MitosisScoreRange.Lo, Hi: l.opts.MitosisScoreRange.Hi}

	detVal, err := extractMitosisAttr(det, l.opts.MitosisParam, l.opts.MitosisCalc)
	if err != nil {
		return activeEntry{}, false, err
	}

	bestScore := math.Inf(1)
	var best activeEntry
	found := false

	for _, e := range l.active {
		s, eligible, err := l.mitosisScore(frameIdx, e, detVal)
		if err != nil {
			return activeEntry{}, false, err
		}
		if !eligible || !gate.Contains(s) {
			continue
		}
		if s < bestScore {
			bestScore = s
			best = e
			found = true
		}
	}

	return best, found, nil
}

// mitosisScore implements spec.md §4.4's parent-eligibility gate: a track
// that was not updated this frame, or too young since its own division, or
// lacking a valid reference frame at the configured offset, scores +Inf
// (ineligible).
func (l *Linker) mitosisScore(frameIdx int, e activeEntry, detVal any) (float64, bool, error) {
	if e.age > 0 {
		return 0, false, nil
	}

	t, err := l.store.GetTrack(e.trackID)
	if err != nil {
		return 0, false, err
	}
	if t.HasMother() && frameIdx-t.FirstFrame < l.opts.MinAgeSinceMitosis {
		return 0, false, nil
	}
	if t.NumFrames()+l.opts.MitosisLinkToFrame < 1 {
		return 0, false, nil
	}

	ref, err := l.store.GetDataAtOffset(e.trackID, l.opts.MitosisLinkToFrame)
	if err != nil {
		return 0, false, nil
	}

	refVal, err := extractMitosisAttr(ref, l.opts.MitosisParam, l.opts.MitosisCalc)
	if err != nil {
		return 0, false, err
	}

	s, err := scoreMitosis(l.opts.MitosisCalc, detVal, refVal)
	if err != nil {
		return 0, false, err
	}

	return s, true, nil
}

// performMitosis executes the three-way edit: daughter1 takes over the
// data record that was just linked to parent this frame (parent.data[end]
// before retraction), daughter2 takes det itself, parent's last frame is
// retracted, and parent is replaced in the active set by both daughters.
func (l *Linker) performMitosis(frameIdx int, parent activeEntry, det track.Detection) error {
	parentLast, err := l.store.GetLastData(parent.trackID)
	if err != nil {
		return err
	}

	if err := l.store.DeleteLastFrame(parent.trackID); err != nil {
		return err
	}

	daughter1 := l.store.AddTrack(frameIdx, parentLast)
	daughter2 := l.store.AddTrack(frameIdx, det)

	if err := l.store.SetDaughters(parent.trackID, daughter1, daughter2); err != nil {
		return err
	}
	if err := l.store.SetMother(daughter1, parent.trackID); err != nil {
		return err
	}
	if err := l.store.SetMother(daughter2, parent.trackID); err != nil {
		return err
	}

	l.active = removeActive(l.active, parent.trackID)
	l.active = append(l.active,
		activeEntry{trackID: daughter1},
		activeEntry{trackID: daughter2},
	)

	return nil
}

func removeActive(active []activeEntry, id track.TrackID) []activeEntry {
	out := active[:0]
	for _, e := range active {
		if e.trackID != id {
			out = append(out, e)
		}
	}

	return out
}
