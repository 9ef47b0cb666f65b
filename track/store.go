package track

import (
	"sync"
	"sync/atomic"
)

// Store is an append-mostly collection of Track records keyed by stable
// TrackID. The store carries a single exported lock, Mu, where the
// teacher's core.Graph splits "configuration" from "storage" across two;
// no Store method takes Mu, and nextID is advanced atomically.
//
// The linker owns a Store for the duration of one tracking session and
// is its sole writer (spec's single-threaded, step-synchronous model);
// Mu is exported read-only access for callers that want to take a
// snapshot read lock between AssignToFrame calls.
type Store struct {
	nextID uint64 // atomic TrackID generator

	// Mu is available to callers that coordinate access among
	// themselves. Neither the Store methods nor the linker's
	// AssignToFrame (the sole writer by contract) take it, so holding
	// Mu.RLock does not exclude a concurrent linker step.
	Mu sync.RWMutex

	tracks map[TrackID]*Track

	Meta Metadata
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{tracks: make(map[TrackID]*Track)}
}

// Len returns the number of tracks held (retired tracks included).
func (s *Store) Len() int {
	return len(s.tracks)
}

// track returns a pointer to the live track record, or ErrUnknownTrack.
// It is used within this package; other packages use the read-only
// accessors below.
func (s *Store) track(id TrackID) (*Track, error) {
	t, ok := s.tracks[id]
	if !ok {
		return nil, ErrUnknownTrack
	}

	return t, nil
}

// AddTrack allocates the next TrackID, stores data as its first frame,
// and returns the new ID.
func (s *Store) AddTrack(frameIdx int, data Detection) TrackID {
	id := TrackID(atomic.AddUint64(&s.nextID, 1))
	s.tracks[id] = &Track{
		ID:         id,
		FirstFrame: frameIdx,
		LastFrame:  frameIdx,
		Data:       []Detection{data},
	}

	return id
}

// AppendFrame adds data at frameIdx, padding intermediate frames with
// null records if frameIdx > last_frame+1. frameIdx must exceed the
// track's current last_frame.
func (s *Store) AppendFrame(id TrackID, frameIdx int, data Detection) error {
	t, err := s.track(id)
	if err != nil {
		return err
	}
	if t.FirstFrame == noFrame {
		t.FirstFrame = frameIdx
		t.LastFrame = frameIdx
		t.Data = []Detection{data}

		return nil
	}
	if frameIdx <= t.LastFrame {
		return ErrFrameNotMonotonic
	}

	for gap := t.LastFrame + 1; gap < frameIdx; gap++ {
		t.Data = append(t.Data, Detection{})
	}
	t.Data = append(t.Data, data)
	t.LastFrame = frameIdx

	return nil
}

// DeleteLastFrame truncates one element from the end of the track's data
// series. Per spec.md §9's adopted front-deletion rule, it also trims any
// trailing null records left dangling by the truncation (the store only
// ever truncates from the end, so front- and middle-deletion coincide
// here: see SPEC_FULL.md §9).
func (s *Store) DeleteLastFrame(id TrackID) error {
	t, err := s.track(id)
	if err != nil {
		return err
	}
	if t.NumFrames() == 0 {
		return ErrEmptyTrack
	}

	t.Data = t.Data[:len(t.Data)-1]
	t.LastFrame--

	for len(t.Data) > 0 && t.Data[len(t.Data)-1].IsNull() {
		t.Data = t.Data[:len(t.Data)-1]
		t.LastFrame--
	}

	if len(t.Data) == 0 {
		t.FirstFrame, t.LastFrame = noFrame, noFrame
	}

	return nil
}

// SetMother sets t's mother_id. Fails if already set.
func (s *Store) SetMother(id, motherID TrackID) error {
	t, err := s.track(id)
	if err != nil {
		return err
	}
	if t.HasMother() {
		return ErrMotherAlreadySet
	}
	t.MotherID = motherID

	return nil
}

// SetDaughters sets t's daughter_ids. Fails if already set.
func (s *Store) SetDaughters(id, d1, d2 TrackID) error {
	t, err := s.track(id)
	if err != nil {
		return err
	}
	if t.HasDaughters() {
		return ErrDaughtersAlreadySet
	}
	t.DaughterIDs = [2]TrackID{d1, d2}

	return nil
}

// GetLastData returns the data record at the track's last_frame.
func (s *Store) GetLastData(id TrackID) (Detection, error) {
	t, err := s.track(id)
	if err != nil {
		return Detection{}, err
	}
	if t.NumFrames() == 0 {
		return Detection{}, ErrEmptyTrack
	}

	return t.Data[len(t.Data)-1], nil
}

// GetDataAtOffset returns the data record negOffset frames before
// last_frame (negOffset must be <= 0; 0 means last_frame itself).
func (s *Store) GetDataAtOffset(id TrackID, negOffset int) (Detection, error) {
	t, err := s.track(id)
	if err != nil {
		return Detection{}, err
	}
	idx := len(t.Data) - 1 + negOffset
	if idx < 0 || idx >= len(t.Data) {
		return Detection{}, ErrOffsetOutOfRange
	}

	return t.Data[idx], nil
}

// GetTrack returns a copy of the track record for read-only inspection
// (e.g. CSV export, snapshot consumers). The Data slice is shared, not
// copied — callers must not mutate it.
func (s *Store) GetTrack(id TrackID) (Track, error) {
	t, err := s.track(id)
	if err != nil {
		return Track{}, err
	}

	return *t, nil
}

// IDs returns every TrackID in the store, ascending.
func (s *Store) IDs() []TrackID {
	ids := make([]TrackID, 0, len(s.tracks))
	for id := range s.tracks {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}

	return ids
}

// SetFilename, SetDescription, SetPixelSize, SetImageSize, and
// SetTimestampInfo are the metadata pass-through operations spec.md §6
// attaches to the linker; the linker forwards them here since Metadata
// is held on the store (spec.md §4.6).

func (s *Store) SetFilename(name string) { s.Meta.Filename = name }

func (s *Store) SetDescription(desc string) { s.Meta.Description = desc }

func (s *Store) SetPixelSize(size float64, units string) {
	s.Meta.PixelSize = size
	s.Meta.PixelUnits = units
}

func (s *Store) SetImageSize(h, w int) {
	s.Meta.ImageHeight = h
	s.Meta.ImageWidth = w
}

func (s *Store) SetTimestampInfo(times []float64, units string) {
	s.Meta.Timestamps = times
	s.Meta.TimestampUnits = units
}
