package linker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellgraph/tracklink/config"
	"github.com/cellgraph/tracklink/linker"
	"github.com/cellgraph/tracklink/score"
	"github.com/cellgraph/tracklink/track"
)

func centroid(x, y float64) track.Detection {
	return track.Detection{Attrs: map[string]any{"centroid": []float64{x, y}}}
}

func pixelSet(xs ...int) track.Detection {
	return track.Detection{Attrs: map[string]any{"pixels": score.SortedUnique(xs)}}
}

func baseOptions() config.LinkerOptions {
	opts := config.DefaultLinkerOptions()
	opts.LinkedBy = "centroid"
	opts.LinkCalc = score.Euclidean
	opts.LinkingScoreRange = config.ScoreRange{Lo: -1, Hi: 5}
	opts.MaxTrackAge = 1

	return opts
}

// S1: two objects translating in parallel link frame over frame with no
// ambiguity.
func TestAssignToFrame_PureTranslation(t *testing.T) {
	store := track.NewStore()
	l := linker.NewLinker(store, baseOptions())

	require.NoError(t, l.AssignToFrame(1, []track.Detection{centroid(0, 0), centroid(10, 10)}))
	assert.Equal(t, 2, store.Len())
	assert.Len(t, l.Active(), 2)

	require.NoError(t, l.AssignToFrame(2, []track.Detection{centroid(1, 1), centroid(11, 11)}))
	assert.Equal(t, 2, store.Len())

	for _, id := range store.IDs() {
		tr, err := store.GetTrack(id)
		require.NoError(t, err)
		assert.Equal(t, 2, tr.NumFrames())
	}
}

// S2: an object disappears; its track ages and then retires once its
// age reaches max_track_age.
func TestAssignToFrame_AgeAndRetire(t *testing.T) {
	store := track.NewStore()
	opts := baseOptions()
	opts.MaxTrackAge = 1
	l := linker.NewLinker(store, opts)

	require.NoError(t, l.AssignToFrame(1, []track.Detection{centroid(0, 0)}))
	require.Len(t, l.Active(), 1)

	// Frame 2: no detections at all — the one active track's age reaches
	// max_track_age (1) and it retires.
	require.NoError(t, l.AssignToFrame(2, nil))
	assert.Empty(t, l.Active())

	tr, err := store.GetTrack(store.IDs()[0])
	require.NoError(t, err)
	assert.Equal(t, 1, tr.NumFrames())
}

// S4: a detection far outside the gate never links, and instead spawns
// a new track.
func TestAssignToFrame_GatingDropsFarDetections(t *testing.T) {
	store := track.NewStore()
	opts := baseOptions()
	opts.LinkingScoreRange = config.ScoreRange{Lo: -1, Hi: 3}
	opts.MaxTrackAge = 2
	l := linker.NewLinker(store, opts)

	require.NoError(t, l.AssignToFrame(1, []track.Detection{centroid(0, 0)}))
	require.NoError(t, l.AssignToFrame(2, []track.Detection{centroid(100, 100)}))

	assert.Equal(t, 2, store.Len())
	assert.Len(t, l.Active(), 2)
}

// S3: a parent cell divides into two. Frame 1 and 2 carry the same
// undivided footprint ({1,2,3,4}), so the lone detection at frame 2 links
// normally. At frame 3 the footprint splits into two disjoint halves:
// one half still overlaps the parent's last frame well enough to win the
// primary link (so the parent's row assignment stays a normal
// continuation, age 0); the other half cannot link to anything (disjoint
// from every other detection) and falls through to mitosis evaluation,
// where it scores against the parent's *previous* frame
// (mitosis_link_to_frame = -1) — the still-undivided footprint — and
// overlaps well enough to fire.
func TestAssignToFrame_Mitosis(t *testing.T) {
	store := track.NewStore()
	opts := baseOptions()
	opts.LinkedBy = "pixels"
	opts.LinkCalc = score.PxIntersect
	opts.LinkingScoreRange = config.ScoreRange{Lo: 0, Hi: 10}
	opts.MaxTrackAge = 5
	opts.TrackMitosis = true
	opts.MitosisParam = "pixels"
	opts.MitosisCalc = score.PxIntersect
	opts.MitosisScoreRange = config.ScoreRange{Lo: 0, Hi: 10}
	opts.MitosisLinkToFrame = -1
	opts.MinAgeSinceMitosis = 0
	l := linker.NewLinker(store, opts)

	require.NoError(t, l.AssignToFrame(1, []track.Detection{pixelSet(1, 2, 3, 4)}))
	parentID := store.IDs()[0]

	require.NoError(t, l.AssignToFrame(2, []track.Detection{pixelSet(1, 2, 3, 4)}))

	require.NoError(t, l.AssignToFrame(3, []track.Detection{pixelSet(1, 2), pixelSet(3, 4)}))

	parent, err := store.GetTrack(parentID)
	require.NoError(t, err)
	assert.True(t, parent.HasDaughters())
	assert.Equal(t, 2, parent.NumFrames())

	d1, err := store.GetTrack(parent.DaughterIDs[0])
	require.NoError(t, err)
	assert.Equal(t, parentID, d1.MotherID)
	assert.Equal(t, 3, d1.FirstFrame)

	d2, err := store.GetTrack(parent.DaughterIDs[1])
	require.NoError(t, err)
	assert.Equal(t, parentID, d2.MotherID)
	assert.Equal(t, 3, d2.FirstFrame)

	assert.Len(t, l.Active(), 2)
}

func TestAssignToFrame_ColdStart(t *testing.T) {
	store := track.NewStore()
	l := linker.NewLinker(store, baseOptions())

	require.NoError(t, l.AssignToFrame(1, []track.Detection{centroid(0, 0), centroid(5, 5)}))
	assert.Equal(t, 2, store.Len())
	assert.Len(t, l.Active(), 2)
}

func TestAssignToFrame_NonPositiveOrNonIncreasingFrame(t *testing.T) {
	store := track.NewStore()
	l := linker.NewLinker(store, baseOptions())

	assert.ErrorIs(t, l.AssignToFrame(0, nil), linker.ErrNonPositiveFrame)

	require.NoError(t, l.AssignToFrame(1, []track.Detection{centroid(0, 0)}))
	assert.ErrorIs(t, l.AssignToFrame(1, nil), linker.ErrNonPositiveFrame)
}

func TestAssignToFrame_NilDetection(t *testing.T) {
	store := track.NewStore()
	l := linker.NewLinker(store, baseOptions())

	err := l.AssignToFrame(1, []track.Detection{{}})
	assert.ErrorIs(t, err, linker.ErrNilDetection)
	assert.Equal(t, 0, store.Len())
}

func TestAssignToFrame_NoNewTracksDropsUnmatched(t *testing.T) {
	store := track.NewStore()
	l := linker.NewLinker(store, baseOptions())

	require.NoError(t, l.AssignToFrame(1, []track.Detection{centroid(0, 0)}))
	require.NoError(t, l.AssignToFrame(2, []track.Detection{centroid(0, 0), centroid(50, 50)}, true))

	assert.Equal(t, 1, store.Len())
}

type recordingObserver struct {
	frames []linker.FrameDiagnostics
}

func (r *recordingObserver) OnFrame(d linker.FrameDiagnostics) {
	r.frames = append(r.frames, d)
}

func TestWithObserver(t *testing.T) {
	store := track.NewStore()
	obs := &recordingObserver{}
	l := linker.NewLinker(store, baseOptions(), linker.WithObserver(obs))

	require.NoError(t, l.AssignToFrame(1, []track.Detection{centroid(0, 0)}))
	require.NoError(t, l.AssignToFrame(2, []track.Detection{centroid(1, 1)}))

	require.Len(t, obs.frames, 1)
	assert.Equal(t, 2, obs.frames[0].FrameIdx)
}

func TestWithObserver_NilPanics(t *testing.T) {
	assert.Panics(t, func() { linker.WithObserver(nil) })
}

func TestMetadataPassthrough(t *testing.T) {
	store := track.NewStore()
	l := linker.NewLinker(store, baseOptions())

	l.SetFilename("sample.tracks")
	l.SetPixelSize(0.65, "um")
	l.SetImageSize(512, 512)
	l.SetTimestampInfo([]float64{0, 1.5, 3.0}, "s")

	assert.Equal(t, "sample.tracks", store.Meta.Filename)
	assert.Equal(t, 0.65, store.Meta.PixelSize)
	assert.Equal(t, 512, store.Meta.ImageHeight)
	assert.Equal(t, []float64{0, 1.5, 3.0}, store.Meta.Timestamps)
}
