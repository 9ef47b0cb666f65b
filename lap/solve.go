package lap

import "math"

// Solve assigns rows to columns of cost so as to minimize total assigned
// cost, using the algorithm named by opts.Algorithm. cost may be
// rectangular and may contain +Inf entries marking forbidden pairs (see
// package doc); it must not contain NaN or negative values.
//
// When rows > cols, Solve transposes internally (both solvers require
// rows <= cols) and inverts the resulting column-to-row mapping back to a
// row-indexed Result.
func Solve(cost [][]float64, opts Options) (Result, error) {
	rows, cols, err := validate(cost)
	if err != nil {
		return Result{}, err
	}

	if opts.Algorithm != JV && opts.Algorithm != Munkres {
		return Result{}, ErrUnknownAlgorithm
	}

	if rows > cols {
		transposed := make([][]float64, cols)
		for j := 0; j < cols; j++ {
			transposed[j] = make([]float64, rows)
			for i := 0; i < rows; i++ {
				transposed[j][i] = cost[i][j]
			}
		}

		colResult, err := solveReduced(transposed, cols, rows, opts)
		if err != nil {
			return Result{}, err
		}

		// colResult.RowSol is indexed by original column, valued by
		// original row. Invert it into a row-indexed assignment.
		rowSol := make([]int, rows)
		for i := range rowSol {
			rowSol[i] = Unassigned
		}
		for j, i := range colResult.RowSol {
			if i != Unassigned {
				rowSol[i] = j
			}
		}

		// colResult.RowSol is indexed by original column; a column left
		// Unassigned there is genuinely unassigned in the original problem.
		unassignedCols := make([]int, 0)
		for j, i := range colResult.RowSol {
			if i == Unassigned {
				unassignedCols = append(unassignedCols, j)
			}
		}

		return Result{RowSol: rowSol, Cost: colResult.Cost, UnassignedCols: unassignedCols}, nil
	}

	return solveReduced(cost, rows, cols, opts)
}

// solveReduced runs the shared preprocess/dispatch/map-back pipeline on a
// matrix already known to have rows<=cols.
func solveReduced(cost [][]float64, rows, cols int, opts Options) (Result, error) {
	var fillerFn func(minFinite, maxFinite float64, n int) float64
	var sentinelFn func(maxFinite float64, n int) float64
	if opts.Algorithm == Munkres {
		fillerFn, sentinelFn = munkresFiller, munkresSentinel
	} else {
		fillerFn, sentinelFn = jvFiller, jvSentinel
	}

	red, err := preprocess(cost, rows, cols, fillerFn, sentinelFn)
	if err != nil {
		return Result{}, err
	}

	var paddedSol []int
	switch opts.Algorithm {
	case Munkres:
		paddedSol = solveMunkres(red.matrix)
	default:
		eps := opts.Resolution
		if eps == 0 {
			_, maxFinite, _ := finiteRange(cost, red.keptRows, red.keptCols)
			eps = defaultResolution(maxFinite)
		}
		paddedSol = solveJV(red.matrix, eps)
	}

	rowSol := make([]int, rows)
	for i := range rowSol {
		rowSol[i] = Unassigned
	}
	assignedCols := make([]bool, cols)
	cost2 := 0.0

	for pi, pj := range paddedSol {
		if pi >= len(red.keptRows) || pj >= len(red.keptCols) {
			// Padded row/column with no counterpart in the original matrix.
			continue
		}
		i, j := red.keptRows[pi], red.keptCols[pj]
		if math.IsInf(cost[i][j], 1) {
			// Sentinel-substituted cell: the solver had no real choice
			// here, so this pairing is not a genuine assignment.
			continue
		}
		rowSol[i] = j
		assignedCols[j] = true
		cost2 += cost[i][j]
	}

	unassignedCols := make([]int, 0)
	for j := 0; j < cols; j++ {
		if !assignedCols[j] {
			unassignedCols = append(unassignedCols, j)
		}
	}

	return Result{RowSol: rowSol, Cost: cost2, UnassignedCols: unassignedCols}, nil
}
