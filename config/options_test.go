package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellgraph/tracklink/config"
	"github.com/cellgraph/tracklink/lap"
	"github.com/cellgraph/tracklink/score"
)

const sampleOptions = `
# comment line, ignored
linked_by = 'centroid'
link_calc = 'euclidean'   % trailing comment
linking_score_range = [0 50]
max_track_age = 2
track_mitosis = true
min_age_since_mitosis = 3
mitosis_param = 'pixels'
mitosis_calc = 'pxintersect'
mitosis_score_range = [0 10]
mitosis_link_to_frame = -1
lap_solver = 'munkres'

unknown_key = 'ignored please'
`

func TestLoadLinkerOptions(t *testing.T) {
	opts, err := config.LoadLinkerOptions(strings.NewReader(sampleOptions))
	require.NoError(t, err)

	assert.Equal(t, "centroid", opts.LinkedBy)
	assert.Equal(t, score.Euclidean, opts.LinkCalc)
	assert.Equal(t, config.ScoreRange{Lo: 0, Hi: 50}, opts.LinkingScoreRange)
	assert.Equal(t, 2, opts.MaxTrackAge)
	assert.True(t, opts.TrackMitosis)
	assert.Equal(t, 3, opts.MinAgeSinceMitosis)
	assert.Equal(t, "pixels", opts.MitosisParam)
	assert.Equal(t, score.PxIntersect, opts.MitosisCalc)
	assert.Equal(t, config.ScoreRange{Lo: 0, Hi: 10}, opts.MitosisScoreRange)
	assert.Equal(t, -1, opts.MitosisLinkToFrame)
	assert.Equal(t, lap.Munkres, opts.LAPSolver)
}

func TestLoadLinkerOptions_NonPositiveMaxAge(t *testing.T) {
	_, err := config.LoadLinkerOptions(strings.NewReader("max_track_age = 0\n"))
	assert.ErrorIs(t, err, config.ErrNonPositiveMaxAge)
}

func TestLoadLinkerOptions_UnknownScoreKind(t *testing.T) {
	_, err := config.LoadLinkerOptions(strings.NewReader("link_calc = 'bogus'\n"))
	assert.ErrorIs(t, err, score.ErrUnknownKind)
}

func TestLoadLinkerOptions_MalformedLine(t *testing.T) {
	_, err := config.LoadLinkerOptions(strings.NewReader("this is not key value\n"))
	assert.ErrorIs(t, err, config.ErrMalformedLine)
}

func TestWriteOptions_RoundTrips(t *testing.T) {
	opts := config.DefaultLinkerOptions()
	opts.MaxTrackAge = 5
	opts.TrackMitosis = true

	var buf strings.Builder
	require.NoError(t, config.WriteOptions(&buf, opts))

	reloaded, err := config.LoadLinkerOptions(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, opts.MaxTrackAge, reloaded.MaxTrackAge)
	assert.Equal(t, opts.TrackMitosis, reloaded.TrackMitosis)
	assert.Equal(t, opts.LinkedBy, reloaded.LinkedBy)
}
