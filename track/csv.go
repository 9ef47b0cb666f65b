package track

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV exports every track's frame series to w in the format
// spec.md §6 defines: header row trackID, seriesID, motherTrackID,
// daughterTrackIDs, Frame, <attr1>, <attr2>, ...; one row per (track,
// frame) pair, with track-identifying columns left empty on continuation
// rows (every row after a track's first). attrNames fixes the column
// order and set of attributes read out of each Detection.
//
// No third-party CSV library in the corpus improves on the standard
// library's encoding/csv writer for this one-shot tabular dump — see
// DESIGN.md.
func (s *Store) WriteCSV(w io.Writer, attrNames []string) error {
	cw := csv.NewWriter(w)

	header := append([]string{"trackID", "seriesID", "motherTrackID", "daughterTrackIDs", "Frame"}, attrNames...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, id := range s.IDs() {
		t := s.tracks[id]
		for offset, d := range t.Data {
			row := make([]string, 0, len(header))
			if offset == 0 {
				row = append(row,
					strconv.FormatUint(uint64(t.ID), 10),
					strconv.FormatUint(uint64(t.ID), 10),
					motherCell(t.MotherID),
					daughterCell(t.DaughterIDs),
				)
			} else {
				row = append(row, "", "", "", "")
			}
			row = append(row, strconv.Itoa(t.FirstFrame+offset))

			for _, name := range attrNames {
				row = append(row, attrCell(d, name))
			}

			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()

	return cw.Error()
}

func motherCell(id TrackID) string {
	if id == 0 {
		return ""
	}

	return strconv.FormatUint(uint64(id), 10)
}

func daughterCell(ids [2]TrackID) string {
	if ids[0] == 0 {
		return ""
	}

	return fmt.Sprintf("[%d %d]", ids[0], ids[1])
}

// attrCell renders one Detection attribute as a CSV cell: scalars print
// bare, multi-element values print bracketed and space-separated, per
// spec.md §6.
func attrCell(d Detection, name string) string {
	if d.Attrs == nil {
		return ""
	}
	raw, ok := d.Attrs[name]
	if !ok {
		return ""
	}

	switch v := raw.(type) {
	case []float64:
		return fmt.Sprintf("[%s]", joinFloats(v))
	case []int:
		return fmt.Sprintf("[%s]", joinInts(v))
	default:
		return fmt.Sprint(v)
	}
}

func joinFloats(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}

	return joinStrings(parts)
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}

	return joinStrings(parts)
}

func joinStrings(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}

	return out
}
