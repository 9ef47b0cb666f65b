// Package track is the minimal append-mostly store the linker builds on:
// one stable-ID track per tracked object, each holding a dense per-frame
// data series plus mother/daughter links.
//
// Store exposes the operations a frame-to-frame linker needs —
// AddTrack, AppendFrame, DeleteLastFrame, SetMother, SetDaughters,
// GetLastData, GetDataAtOffset, Len — plus read-only accessors (GetTrack,
// IDs), metadata setters, CSV export and displacement statistics. It guarantees O(1)
// amortized append and O(1) access to the last record of a track.
//
// A Detection is an opaque attribute bag: the store and the linker never
// interpret attribute values, only pass them to the scoring kernel by
// name. Entries at frames a track was not updated at carry a null
// Detection (IsNull reports true).
package track
