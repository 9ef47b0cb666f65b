package track_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellgraph/tracklink/track"
)

func vecDetection(name string, v ...float64) track.Detection {
	return track.Detection{Attrs: map[string]any{name: v}}
}

func TestAddTrack(t *testing.T) {
	s := track.NewStore()
	id := s.AddTrack(1, vecDetection("centroid", 0, 0))
	assert.EqualValues(t, 1, id)
	assert.Equal(t, 1, s.Len())

	last, err := s.GetLastData(id)
	require.NoError(t, err)
	v, ok := last.Vector("centroid")
	require.True(t, ok)
	assert.Equal(t, []float64{0, 0}, v)
}

func TestAddTrack_IDsNeverReused(t *testing.T) {
	s := track.NewStore()
	id1 := s.AddTrack(1, vecDetection("centroid", 0, 0))
	id2 := s.AddTrack(1, vecDetection("centroid", 1, 1))
	assert.NotEqual(t, id1, id2)
	assert.Less(t, id1, id2)
}

func TestAppendFrame_Contiguous(t *testing.T) {
	s := track.NewStore()
	id := s.AddTrack(1, vecDetection("centroid", 0, 0))
	require.NoError(t, s.AppendFrame(id, 2, vecDetection("centroid", 1, 1)))

	tr, err := s.GetTrack(id)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.FirstFrame)
	assert.Equal(t, 2, tr.LastFrame)
	assert.Len(t, tr.Data, 2)
}

func TestAppendFrame_PadsGap(t *testing.T) {
	s := track.NewStore()
	id := s.AddTrack(1, vecDetection("centroid", 0, 0))
	require.NoError(t, s.AppendFrame(id, 4, vecDetection("centroid", 3, 3)))

	tr, err := s.GetTrack(id)
	require.NoError(t, err)
	require.Len(t, tr.Data, 4)
	assert.True(t, tr.Data[1].IsNull())
	assert.True(t, tr.Data[2].IsNull())
	assert.False(t, tr.Data[3].IsNull())
}

func TestAppendFrame_NotMonotonic(t *testing.T) {
	s := track.NewStore()
	id := s.AddTrack(3, vecDetection("centroid", 0, 0))
	err := s.AppendFrame(id, 3, vecDetection("centroid", 1, 1))
	assert.ErrorIs(t, err, track.ErrFrameNotMonotonic)
}

func TestAppendFrame_UnknownTrack(t *testing.T) {
	s := track.NewStore()
	err := s.AppendFrame(99, 1, vecDetection("centroid", 0, 0))
	assert.ErrorIs(t, err, track.ErrUnknownTrack)
}

func TestDeleteLastFrame(t *testing.T) {
	s := track.NewStore()
	id := s.AddTrack(1, vecDetection("centroid", 0, 0))
	require.NoError(t, s.AppendFrame(id, 2, vecDetection("centroid", 1, 1)))
	require.NoError(t, s.DeleteLastFrame(id))

	tr, err := s.GetTrack(id)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.LastFrame)
	assert.Len(t, tr.Data, 1)
}

func TestDeleteLastFrame_TrimsTrailingNulls(t *testing.T) {
	s := track.NewStore()
	id := s.AddTrack(1, vecDetection("centroid", 0, 0))
	require.NoError(t, s.AppendFrame(id, 3, vecDetection("centroid", 2, 2)))
	// Data is now [frame1, null(frame2), frame3]; deleting frame3 should
	// also trim the dangling null at frame2.
	require.NoError(t, s.DeleteLastFrame(id))

	tr, err := s.GetTrack(id)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.LastFrame)
	assert.Len(t, tr.Data, 1)
}

func TestDeleteLastFrame_Empty(t *testing.T) {
	s := track.NewStore()
	id := s.AddTrack(1, vecDetection("centroid", 0, 0))
	require.NoError(t, s.DeleteLastFrame(id))
	err := s.DeleteLastFrame(id)
	assert.ErrorIs(t, err, track.ErrEmptyTrack)
}

func TestSetMotherAndDaughters(t *testing.T) {
	s := track.NewStore()
	parent := s.AddTrack(1, vecDetection("centroid", 0, 0))
	d1 := s.AddTrack(2, vecDetection("centroid", 1, 1))
	d2 := s.AddTrack(2, vecDetection("centroid", 1, 2))

	require.NoError(t, s.SetMother(d1, parent))
	require.NoError(t, s.SetMother(d2, parent))
	require.NoError(t, s.SetDaughters(parent, d1, d2))

	err := s.SetMother(d1, parent)
	assert.ErrorIs(t, err, track.ErrMotherAlreadySet)

	err = s.SetDaughters(parent, d1, d2)
	assert.ErrorIs(t, err, track.ErrDaughtersAlreadySet)
}

func TestGetDataAtOffset(t *testing.T) {
	s := track.NewStore()
	id := s.AddTrack(1, vecDetection("centroid", 0, 0))
	require.NoError(t, s.AppendFrame(id, 2, vecDetection("centroid", 1, 1)))
	require.NoError(t, s.AppendFrame(id, 3, vecDetection("centroid", 2, 2)))

	last, err := s.GetDataAtOffset(id, 0)
	require.NoError(t, err)
	v, _ := last.Vector("centroid")
	assert.Equal(t, []float64{2, 2}, v)

	prev, err := s.GetDataAtOffset(id, -1)
	require.NoError(t, err)
	v, _ = prev.Vector("centroid")
	assert.Equal(t, []float64{1, 1}, v)

	_, err = s.GetDataAtOffset(id, -5)
	assert.ErrorIs(t, err, track.ErrOffsetOutOfRange)
}

func TestMetadataPassthrough(t *testing.T) {
	s := track.NewStore()
	s.SetFilename("experiment-1.tif")
	s.SetPixelSize(0.65, "um")
	s.SetImageSize(512, 512)
	s.SetTimestampInfo([]float64{0, 30, 60}, "s")

	assert.Equal(t, "experiment-1.tif", s.Meta.Filename)
	assert.Equal(t, 0.65, s.Meta.PixelSize)
	assert.Equal(t, "um", s.Meta.PixelUnits)
	assert.Equal(t, 512, s.Meta.ImageHeight)
	assert.Equal(t, []float64{0, 30, 60}, s.Meta.Timestamps)
}
