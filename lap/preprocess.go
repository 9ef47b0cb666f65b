package lap

import "math"

// validate checks the structural preconditions shared by both algorithms:
// rectangular shape, no NaN, no negative entries. It does not check for
// infeasibility — that is preprocess's job, since it requires reducing the
// matrix first.
func validate(cost [][]float64) (rows, cols int, err error) {
	rows = len(cost)
	if rows == 0 {
		return 0, 0, ErrEmptyMatrix
	}
	cols = len(cost[0])
	if cols == 0 {
		return 0, 0, ErrEmptyMatrix
	}
	for _, row := range cost {
		if len(row) != cols {
			return 0, 0, ErrRaggedMatrix
		}
		for _, v := range row {
			if math.IsNaN(v) {
				return 0, 0, ErrNaN
			}
			if v < 0 {
				return 0, 0, ErrNegative
			}
		}
	}

	return rows, cols, nil
}

// reduced is the outcome of excluding all-infinite rows/columns and padding
// what remains to a square, sentinel-substituted matrix ready for a solver.
type reduced struct {
	keptRows []int // index into the original (rows<=cols) matrix
	keptCols []int
	n        int         // padded square side, n = max(len(keptRows), len(keptCols))
	matrix   [][]float64 // n x n, fully finite
}

// preprocess excludes rows/columns that are entirely +Inf, pads the
// remainder to a square matrix using fillerFn, and replaces any remaining
// +Inf cells with sentinelFn's result. cost must already have rows<=cols
// (the caller is responsible for transposing first if not) and must have
// passed validate.
func preprocess(cost [][]float64, rows, cols int, fillerFn func(minFinite, maxFinite float64, n int) float64, sentinelFn func(maxFinite float64, n int) float64) (reduced, error) {
	keptRows := make([]int, 0, rows)
	for i := 0; i < rows; i++ {
		if !rowAllInf(cost[i], cols) {
			keptRows = append(keptRows, i)
		}
	}
	keptCols := make([]int, 0, cols)
	for j := 0; j < cols; j++ {
		if !colAllInf(cost, keptRows, j) {
			keptCols = append(keptCols, j)
		}
	}

	if len(keptRows) == 0 || len(keptCols) == 0 {
		return reduced{}, ErrInfeasible
	}

	minFinite, maxFinite, anyFinite := finiteRange(cost, keptRows, keptCols)
	if !anyFinite {
		minFinite, maxFinite = 0, 0
	}

	n := len(keptRows)
	if len(keptCols) > n {
		n = len(keptCols)
	}

	filler := fillerFn(minFinite, maxFinite, n)

	matrix := make([][]float64, n)
	for i := 0; i < n; i++ {
		matrix[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			switch {
			case i < len(keptRows) && j < len(keptCols):
				matrix[i][j] = cost[keptRows[i]][keptCols[j]]
			default:
				matrix[i][j] = filler
			}
		}
	}

	// maxFinite over the padded matrix (filler included) feeds the
	// sentinel so it never collides with a real cost.
	paddedMax := maxFinite
	if filler > paddedMax {
		paddedMax = filler
	}
	sentinel := sentinelFn(paddedMax, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if math.IsInf(matrix[i][j], 1) {
				matrix[i][j] = sentinel
			}
		}
	}

	return reduced{keptRows: keptRows, keptCols: keptCols, n: n, matrix: matrix}, nil
}

func rowAllInf(row []float64, cols int) bool {
	for j := 0; j < cols; j++ {
		if !math.IsInf(row[j], 1) {
			return false
		}
	}

	return true
}

func colAllInf(cost [][]float64, keptRows []int, col int) bool {
	for _, i := range keptRows {
		if !math.IsInf(cost[i][col], 1) {
			return false
		}
	}

	return true
}

func finiteRange(cost [][]float64, keptRows, keptCols []int) (min, max float64, any bool) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, i := range keptRows {
		for _, j := range keptCols {
			v := cost[i][j]
			if math.IsInf(v, 1) {
				continue
			}
			any = true
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}

	return min, max, any
}

// jvFiller implements spec.md §4.2's JV padding rule: 2·min(C).
func jvFiller(minFinite, _ float64, _ int) float64 {
	return 2 * minFinite
}

// jvSentinel implements spec.md §4.2's JV sentinel rule: max_finite·N + 1.
func jvSentinel(maxFinite float64, n int) float64 {
	return maxFinite*float64(n) + 1
}

// munkresFiller implements spec.md §4.2's Munkres padding rule: 10·max(finite(C)).
func munkresFiller(_, maxFinite float64, _ int) float64 {
	return 10 * maxFinite
}

// munkresSentinel implements spec.md §4.2's Munkres sentinel rule: realmax.
func munkresSentinel(_ float64, _ int) float64 {
	return math.MaxFloat64
}
