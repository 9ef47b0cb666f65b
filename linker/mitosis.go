package linker

import (
	"github.com/cellgraph/tracklink/costmatrix"
	"github.com/cellgraph/tracklink/score"
	"github.com/cellgraph/tracklink/track"
)

// extractMitosisAttr mirrors costmatrix's own attribute extraction but
// operates on the mitosis attribute name/kind rather than the linking
// one; kept separate since a store may use different attributes (and
// different score.Kind values) for linking versus mitosis detection.
func extractMitosisAttr(d track.Detection, name string, kind score.Kind) (any, error) {
	switch kind {
	case score.Euclidean:
		v, ok := d.Vector(name)
		if !ok {
			return nil, costmatrix.ErrMissingAttribute
		}

		return v, nil
	case score.PxIntersect, score.PxIntersectUnique:
		v, ok := d.IntSet(name)
		if !ok {
			return nil, costmatrix.ErrMissingAttribute
		}

		return v, nil
	default:
		return nil, costmatrix.ErrMissingAttribute
	}
}

// scoreMitosis computes the mitosis score between a candidate detection
// and a parent's reference-frame attribute.
func scoreMitosis(kind score.Kind, detVal, refVal any) (float64, error) {
	return score.Compute(kind, detVal, refVal)
}
