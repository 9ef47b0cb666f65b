package score

// Kind selects which pairwise scoring function Compute dispatches to. Kind
// is a closed Go enum: adding a new scoring function means adding a new
// constant here and a new case in Compute's switch, never a runtime string
// lookup.
type Kind int

const (
	// Euclidean computes the L2 distance between two same-length real
	// vectors (e.g. centroid positions).
	Euclidean Kind = iota

	// PxIntersect computes the reciprocal Jaccard index (|A∩B|/|A∪B|) of
	// two sorted integer vectors (e.g. pixel-index sets), returning 1/iou.
	PxIntersect

	// PxIntersectUnique computes |{x ∈ A : x ∈ B}| / |unique(A ∪ B)|,
	// returning its reciprocal. Unlike PxIntersect, the numerator counts
	// A's elements with multiplicity rather than as a deduplicated set.
	PxIntersectUnique
)

// String returns a human-readable name for kind, mainly for error messages
// and diagnostic records; it is not used for dispatch.
func (k Kind) String() string {
	switch k {
	case Euclidean:
		return "euclidean"
	case PxIntersect:
		return "pxintersect"
	case PxIntersectUnique:
		return "pxintersect_unique"
	default:
		return "unknown"
	}
}

// ParseKind is String's inverse, for callers reading a kind name out of an
// external source (e.g. an options file). It returns ErrUnknownKind for
// any name other than the three recognized here.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "euclidean":
		return Euclidean, nil
	case "pxintersect":
		return PxIntersect, nil
	case "pxintersect_unique":
		return PxIntersectUnique, nil
	default:
		return 0, ErrUnknownKind
	}
}
