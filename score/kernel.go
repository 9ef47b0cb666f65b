package score

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Compute dispatches to the pairwise scoring function named by kind. a and b
// must both be []float64 for Euclidean, or []int for PxIntersect and
// PxIntersectUnique; any other dynamic type returns ErrNotFlatVector. This
// is the boundary where a Detection's opaque attribute value is validated
// against the Kind the caller asked for — the scoring functions themselves
// take concretely-typed slices and never see the attribute bag.
//
// Complexity: O(len(a)+len(b)), matching whichever underlying kernel is
// selected.
func Compute(kind Kind, a, b any) (float64, error) {
	switch kind {
	case Euclidean:
		av, ok := a.([]float64)
		if !ok {
			return 0, ErrNotFlatVector
		}
		bv, ok := b.([]float64)
		if !ok {
			return 0, ErrNotFlatVector
		}
		return EuclideanScore(av, bv)
	case PxIntersect:
		av, ok := a.([]int)
		if !ok {
			return 0, ErrNotFlatVector
		}
		bv, ok := b.([]int)
		if !ok {
			return 0, ErrNotFlatVector
		}
		return PxIntersectScore(av, bv)
	case PxIntersectUnique:
		av, ok := a.([]int)
		if !ok {
			return 0, ErrNotFlatVector
		}
		bv, ok := b.([]int)
		if !ok {
			return 0, ErrNotFlatVector
		}
		return PxIntersectUniqueScore(av, bv)
	default:
		return 0, ErrUnknownKind
	}
}

// EuclideanScore returns the L2 distance between a and b. Both vectors must
// have the same length, or ErrLengthMismatch is returned.
//
// Implemented on top of gonum's floats.Distance (L=2), rather than a
// hand-rolled sum-of-squares loop: it is the one general-purpose numeric
// vector routine the example corpus pulls in for this kind of work.
func EuclideanScore(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	return floats.Distance(a, b, 2), nil
}

// PxIntersectScore treats a and b as sorted, deduplicated integer sets (e.g.
// pixel indices) and returns 1/iou, where iou = |A∩B|/|A∪B|. A perfect
// overlap therefore scores 1 (lowest == best); a disjoint pair scores
// +Inf. If b is empty, there is no history to score against and the result
// is always +Inf, regardless of a.
func PxIntersectScore(a, b []int) (float64, error) {
	if len(b) == 0 {
		return math.Inf(1), nil
	}

	inter, union := sortedSetIntersectUnion(a, b)
	if union == 0 || inter == 0 {
		return math.Inf(1), nil
	}

	iou := float64(inter) / float64(union)

	return 1 / iou, nil
}

// PxIntersectUniqueScore returns the reciprocal of
// |{x ∈ a : x ∈ b}| / |unique(a ∪ b)|. Unlike PxIntersectScore, a's
// elements are counted with multiplicity in the numerator (a need not be
// deduplicated), while the denominator always dedups both inputs. b need
// not be sorted for this variant; a plain set membership test is used.
func PxIntersectUniqueScore(a, b []int) (float64, error) {
	if len(b) == 0 {
		return math.Inf(1), nil
	}

	bSet := make(map[int]struct{}, len(b))
	for _, x := range b {
		bSet[x] = struct{}{}
	}

	var numerator int
	unionSet := make(map[int]struct{}, len(a)+len(b))
	for _, x := range a {
		unionSet[x] = struct{}{}
		if _, ok := bSet[x]; ok {
			numerator++
		}
	}
	for x := range bSet {
		unionSet[x] = struct{}{}
	}

	unionSize := len(unionSet)
	if unionSize == 0 || numerator == 0 {
		return math.Inf(1), nil
	}

	iou := float64(numerator) / float64(unionSize)

	return 1 / iou, nil
}

// sortedSetIntersectUnion walks two ascending, deduplicated integer slices
// with a merge-style two-pointer scan and returns the cardinalities of
// their intersection and union. a and b are assumed sorted ascending by
// the caller (the Detection's mitosis attribute is maintained sorted); an
// unsorted input yields an undefined but not panicking result, matching
// the "caller contract" nature of the spec's sorted-vector assumption.
func sortedSetIntersectUnion(a, b []int) (inter, union int) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			inter++
			union++
			i++
			j++
		case a[i] < b[j]:
			union++
			i++
		default:
			union++
			j++
		}
	}
	union += (len(a) - i) + (len(b) - j)

	return inter, union
}

// sortedUnique is a small helper retained for callers that need to
// normalize a pixel-index slice before storing it in a track.Detection,
// so that PxIntersectScore's sortedness assumption holds.
func sortedUnique(xs []int) []int {
	if len(xs) == 0 {
		return xs
	}
	sorted := make([]int, len(xs))
	copy(sorted, xs)
	sort.Ints(sorted)

	out := sorted[:1]
	for _, x := range sorted[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}

	return out
}

// SortedUnique normalizes xs into an ascending, deduplicated copy. It is
// exported so callers building a track.Detection (and tests) can prepare
// pixel-index attributes that satisfy PxIntersectScore's sorted-set
// contract.
func SortedUnique(xs []int) []int {
	return sortedUnique(xs)
}
