package lap

// Unassigned marks a row (or column) with no counterpart in a Result.
const Unassigned = -1

// Algorithm selects which solver Solve uses.
type Algorithm int

const (
	// JV is the dual-update shortest-augmenting-path solver (primary).
	JV Algorithm = iota

	// Munkres is the classical Hungarian algorithm (fallback).
	Munkres
)

// String returns a human-readable algorithm name, mainly for diagnostics.
func (a Algorithm) String() string {
	switch a {
	case JV:
		return "jv"
	case Munkres:
		return "munkres"
	default:
		return "unknown"
	}
}

// ParseAlgorithm is String's inverse, for callers reading an algorithm
// name out of an external source (e.g. an options file).
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "jv":
		return JV, nil
	case "munkres":
		return Munkres, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

// Options configures Solve.
type Options struct {
	// Algorithm picks JV (default, zero value) or Munkres.
	Algorithm Algorithm

	// Resolution is JV's numeric-tolerance parameter epsilon, guarding
	// against pathological slow convergence on real-valued costs. Zero
	// means "use the default": the machine epsilon of the matrix's
	// largest finite entry. Munkres ignores Resolution.
	Resolution float64
}

// Result is the outcome of a Solve call.
type Result struct {
	// RowSol has one entry per input row: RowSol[i] is the assigned
	// column index, or Unassigned.
	RowSol []int

	// Cost is the sum of C[i, RowSol[i]] over assigned rows.
	Cost float64

	// UnassignedCols lists column indices with no assigned row, in
	// ascending order.
	UnassignedCols []int
}
