package linker

import (
	"time"

	"github.com/cellgraph/tracklink/config"
	"github.com/cellgraph/tracklink/track"
)

// activeEntry is one (track_id, age, age_since_division) row of the
// active-track set spec.md §3 defines.
type activeEntry struct {
	trackID          track.TrackID
	age              int
	ageSinceDivision int
}

// FrameDiagnostics is the out-of-band, per-frame debug record spec.md §7
// calls out: matrix dimensions, solver wall time, mitosis count. It never
// affects correctness; Observer is purely informational.
type FrameDiagnostics struct {
	FrameIdx      int
	MatrixRows    int
	MatrixCols    int
	SolveDuration time.Duration
	MitosisCount  int
}

// Observer receives one FrameDiagnostics record per AssignToFrame call
// that reaches the solve step (cold-start frames, which never build a
// matrix, do not emit one). A host application wires this to its own
// log/slog/zerolog of choice; the linker carries no logging dependency
// of its own.
type Observer interface {
	OnFrame(FrameDiagnostics)
}

// Linker is the frame-to-frame track linker state machine (spec.md §4.4).
// It owns no detections between calls; all persistent state lives in its
// Store.
type Linker struct {
	store *track.Store
	opts  config.LinkerOptions

	active    []activeEntry
	lastFrame int

	observer Observer
}

// Option customizes a Linker at construction, following the teacher's
// functional-option idiom (builder.BuilderOption): option constructors
// validate and panic on meaningless input, since a nil argument here is
// a programmer error, not a runtime condition.
type Option func(*Linker)

// WithObserver attaches an Observer that receives one FrameDiagnostics
// record per frame. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("linker: WithObserver(nil)")
	}

	return func(l *Linker) {
		l.observer = o
	}
}

// NewLinker returns a Linker over store, configured by opts.
func NewLinker(store *track.Store, opts config.LinkerOptions, options ...Option) *Linker {
	l := &Linker{store: store, opts: opts}
	for _, opt := range options {
		opt(l)
	}

	return l
}

// Snapshot hands off the linker's track store. The linker remains usable
// afterward (the store is shared, not copied). AssignToFrame does not
// take store.Mu, so holding store.Mu.RLock does not keep a linker step
// from writing to the store.
func (l *Linker) Snapshot() *track.Store {
	return l.store
}

// Active returns the current active-track set's track IDs, for
// diagnostics and testing.
func (l *Linker) Active() []track.TrackID {
	ids := make([]track.TrackID, len(l.active))
	for i, e := range l.active {
		ids[i] = e.trackID
	}

	return ids
}

// Metadata pass-through operations (spec.md §6): the linker forwards
// these to the store it owns, since Metadata is held on the store
// (spec.md §4.6).

func (l *Linker) SetFilename(name string) { l.store.SetFilename(name) }

func (l *Linker) SetPixelSize(size float64, units string) { l.store.SetPixelSize(size, units) }

func (l *Linker) SetImageSize(h, w int) { l.store.SetImageSize(h, w) }

func (l *Linker) SetTimestampInfo(times []float64, units string) {
	l.store.SetTimestampInfo(times, units)
}
