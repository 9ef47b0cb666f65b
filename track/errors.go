package track

import "errors"

// Sentinel errors for the track package.
var (
	// ErrUnknownTrack indicates a TrackID has no record in the store.
	ErrUnknownTrack = errors.New("track: unknown track ID")

	// ErrEmptyTrack indicates an operation that needs at least one frame
	// (GetLastData, DeleteLastFrame) was called on a track with no frames.
	ErrEmptyTrack = errors.New("track: track has no frames")

	// ErrFrameNotMonotonic indicates AppendFrame was called with a frame
	// index not strictly greater than the track's current last_frame.
	ErrFrameNotMonotonic = errors.New("track: frame index must exceed the track's last frame")

	// ErrOffsetOutOfRange indicates GetDataAtOffset's negative offset
	// reaches before the track's first frame.
	ErrOffsetOutOfRange = errors.New("track: offset precedes the track's first frame")

	// ErrMotherAlreadySet indicates SetMother was called on a track that
	// already has a mother_id.
	ErrMotherAlreadySet = errors.New("track: mother already set")

	// ErrDaughtersAlreadySet indicates SetDaughters was called on a track
	// that already has daughter_ids.
	ErrDaughtersAlreadySet = errors.New("track: daughters already set")
)
