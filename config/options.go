package config

import (
	"fmt"
	"io"

	"github.com/cellgraph/tracklink/lap"
	"github.com/cellgraph/tracklink/score"
)

// LoadLinkerOptions parses r as a NAME = VALUE options file and overlays
// every recognized key onto DefaultLinkerOptions. Unknown keys are
// silently ignored; a recognized key with the wrong value shape fails
// with ErrWrongValueType.
func LoadLinkerOptions(r io.Reader) (LinkerOptions, error) {
	raw, err := parse(r)
	if err != nil {
		return LinkerOptions{}, err
	}

	opts := DefaultLinkerOptions()

	if v, ok := raw["linked_by"]; ok {
		s, err := v.asString()
		if err != nil {
			return LinkerOptions{}, wrapKey("linked_by", err)
		}
		opts.LinkedBy = s
	}
	if v, ok := raw["link_calc"]; ok {
		s, err := v.asString()
		if err != nil {
			return LinkerOptions{}, wrapKey("link_calc", err)
		}
		k, err := score.ParseKind(s)
		if err != nil {
			return LinkerOptions{}, wrapKey("link_calc", err)
		}
		opts.LinkCalc = k
	}
	if v, ok := raw["linking_score_range"]; ok {
		rng, err := v.asRange()
		if err != nil {
			return LinkerOptions{}, wrapKey("linking_score_range", err)
		}
		opts.LinkingScoreRange = rng
	}
	if v, ok := raw["max_track_age"]; ok {
		n, err := v.asInt()
		if err != nil {
			return LinkerOptions{}, wrapKey("max_track_age", err)
		}
		if n <= 0 {
			return LinkerOptions{}, ErrNonPositiveMaxAge
		}
		opts.MaxTrackAge = n
	}
	if v, ok := raw["track_mitosis"]; ok {
		b, err := v.asBool()
		if err != nil {
			return LinkerOptions{}, wrapKey("track_mitosis", err)
		}
		opts.TrackMitosis = b
	}
	if v, ok := raw["min_age_since_mitosis"]; ok {
		n, err := v.asInt()
		if err != nil {
			return LinkerOptions{}, wrapKey("min_age_since_mitosis", err)
		}
		opts.MinAgeSinceMitosis = n
	}
	if v, ok := raw["mitosis_param"]; ok {
		s, err := v.asString()
		if err != nil {
			return LinkerOptions{}, wrapKey("mitosis_param", err)
		}
		opts.MitosisParam = s
	}
	if v, ok := raw["mitosis_calc"]; ok {
		s, err := v.asString()
		if err != nil {
			return LinkerOptions{}, wrapKey("mitosis_calc", err)
		}
		k, err := score.ParseKind(s)
		if err != nil {
			return LinkerOptions{}, wrapKey("mitosis_calc", err)
		}
		opts.MitosisCalc = k
	}
	if v, ok := raw["mitosis_score_range"]; ok {
		rng, err := v.asRange()
		if err != nil {
			return LinkerOptions{}, wrapKey("mitosis_score_range", err)
		}
		opts.MitosisScoreRange = rng
	}
	if v, ok := raw["mitosis_link_to_frame"]; ok {
		n, err := v.asInt()
		if err != nil {
			return LinkerOptions{}, wrapKey("mitosis_link_to_frame", err)
		}
		opts.MitosisLinkToFrame = n
	}
	if v, ok := raw["lap_solver"]; ok {
		s, err := v.asString()
		if err != nil {
			return LinkerOptions{}, wrapKey("lap_solver", err)
		}
		a, err := lap.ParseAlgorithm(s)
		if err != nil {
			return LinkerOptions{}, wrapKey("lap_solver", err)
		}
		opts.LAPSolver = a
	}

	return opts, nil
}

// WriteOptions exports opts in the same NAME = VALUE format
// LoadLinkerOptions reads, so a written file round-trips.
func WriteOptions(w io.Writer, opts LinkerOptions) error {
	_, err := fmt.Fprintf(w,
		"linked_by = '%s'\n"+
			"link_calc = '%s'\n"+
			"linking_score_range = [%g %g]\n"+
			"max_track_age = %d\n"+
			"track_mitosis = %t\n"+
			"min_age_since_mitosis = %d\n"+
			"mitosis_param = '%s'\n"+
			"mitosis_calc = '%s'\n"+
			"mitosis_score_range = [%g %g]\n"+
			"mitosis_link_to_frame = %d\n"+
			"lap_solver = '%s'\n",
		opts.LinkedBy, opts.LinkCalc,
		opts.LinkingScoreRange.Lo, opts.LinkingScoreRange.Hi,
		opts.MaxTrackAge, opts.TrackMitosis, opts.MinAgeSinceMitosis,
		opts.MitosisParam, opts.MitosisCalc,
		opts.MitosisScoreRange.Lo, opts.MitosisScoreRange.Hi,
		opts.MitosisLinkToFrame, opts.LAPSolver,
	)

	return err
}

func wrapKey(key string, err error) error {
	return fmt.Errorf("config: key %q: %w", key, err)
}

func (v Value) asString() (string, error) {
	if v.kind != vString {
		return "", ErrWrongValueType
	}

	return v.str, nil
}

func (v Value) asBool() (bool, error) {
	if v.kind != vBool {
		return false, ErrWrongValueType
	}

	return v.boolean, nil
}

func (v Value) asInt() (int, error) {
	if v.kind != vNumber {
		return 0, ErrWrongValueType
	}

	return int(v.number), nil
}

func (v Value) asFloat() (float64, error) {
	if v.kind != vNumber {
		return 0, ErrWrongValueType
	}

	return v.number, nil
}

func (v Value) asRange() (ScoreRange, error) {
	if v.kind != vVector || len(v.vector) != 2 {
		return ScoreRange{}, ErrWrongValueType
	}

	return ScoreRange{Lo: v.vector[0], Hi: v.vector[1]}, nil
}
