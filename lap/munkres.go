package lap

import "math"

// munkresState holds the working arrays for one run of the classical
// Hungarian algorithm (Kuhn-Munkres, label/slack formulation): row/column
// labels, a greedy starting match, and the committed-row/committed-column
// bookkeeping used while growing an equality subgraph one augmenting path
// at a time.
//
// Grounded on the cehbz-munkres port of Kevin Stern's Java
// HungarianAlgorithm, adapted from workers/jobs terminology to rows/cols
// and specialized to the square, fully finite matrix preprocess already
// produces (the original's irregular-shape and infinite-cost rejection is
// redundant here, since lap.preprocess has already padded and
// sentinel-substituted the matrix).
type munkresState struct {
	cost [][]float64
	n    int

	labelByRow, labelByCol     []float64
	minSlackRowByCol           []int
	minSlackValueByCol         []float64
	matchColByRow, matchRowByCol []int
	parentRowByCommittedCol    []int
	committedRows              []bool
}

// solveMunkres solves a fully finite, square cost matrix and returns the
// row-to-column assignment. Runtime is O(n^3).
func solveMunkres(cost [][]float64) []int {
	n := len(cost)
	s := &munkresState{
		cost:                    cost,
		n:                       n,
		labelByRow:              make([]float64, n),
		labelByCol:              make([]float64, n),
		minSlackRowByCol:        make([]int, n),
		minSlackValueByCol:      make([]float64, n),
		matchColByRow:           make([]int, n),
		matchRowByCol:           make([]int, n),
		parentRowByCommittedCol: make([]int, n),
		committedRows:           make([]bool, n),
	}
	for i := 0; i < n; i++ {
		s.matchColByRow[i] = -1
		s.matchRowByCol[i] = -1
	}

	s.computeInitialLabels()
	s.greedyMatch()

	for row := s.firstUnmatchedRow(); row < n; row = s.firstUnmatchedRow() {
		s.initializePhase(row)
		s.runPhase()
	}

	return s.matchColByRow
}

// computeInitialLabels assigns zero labels to rows and, to each column, the
// minimum cost among its incident edges — a feasible starting dual.
func (s *munkresState) computeInitialLabels() {
	for j := range s.labelByCol {
		s.labelByCol[j] = math.Inf(1)
	}
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			if s.cost[i][j] < s.labelByCol[j] {
				s.labelByCol[j] = s.cost[i][j]
			}
		}
	}
}

// greedyMatch jump-starts the augmentation phase with any zero-slack
// matches the initial labeling already provides for free.
func (s *munkresState) greedyMatch() {
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			if s.matchColByRow[i] == -1 && s.matchRowByCol[j] == -1 &&
				s.cost[i][j]-s.labelByRow[i]-s.labelByCol[j] == 0 {
				s.match(i, j)
			}
		}
	}
}

func (s *munkresState) firstUnmatchedRow() int {
	for i, j := range s.matchColByRow {
		if j == -1 {
			return i
		}
	}

	return s.n
}

// initializePhase clears the committed sets and seeds the min-slack array
// from the root row.
func (s *munkresState) initializePhase(row int) {
	for i := range s.committedRows {
		s.committedRows[i] = false
	}
	for j := range s.parentRowByCommittedCol {
		s.parentRowByCommittedCol[j] = -1
	}
	s.committedRows[row] = true
	for j := 0; j < s.n; j++ {
		s.minSlackValueByCol[j] = s.cost[row][j] - s.labelByRow[row] - s.labelByCol[j]
		s.minSlackRowByCol[j] = row
	}
}

// runPhase grows the equality subgraph from the root row, one augmentation
// (or one label update) at a time, until the matching has grown by one.
func (s *munkresState) runPhase() {
	for {
		col := -1
		row := -1
		minVal := math.Inf(1)
		for j := 0; j < s.n; j++ {
			if s.parentRowByCommittedCol[j] == -1 && s.minSlackValueByCol[j] < minVal {
				minVal = s.minSlackValueByCol[j]
				row = s.minSlackRowByCol[j]
				col = j
			}
		}
		if minVal > 0 {
			s.updateLabels(minVal)
		}
		s.parentRowByCommittedCol[col] = row

		if s.matchRowByCol[col] == -1 {
			// Augmenting path found: flip it.
			committedCol := col
			parentRow := s.parentRowByCommittedCol[committedCol]
			for {
				prevCol := s.matchColByRow[parentRow]
				s.match(parentRow, committedCol)
				committedCol = prevCol
				if committedCol == -1 {
					break
				}
				parentRow = s.parentRowByCommittedCol[committedCol]
			}

			return
		}

		// Extend the committed-row set and refresh slacks against it.
		newRow := s.matchRowByCol[col]
		s.committedRows[newRow] = true
		for j := 0; j < s.n; j++ {
			if s.parentRowByCommittedCol[j] == -1 {
				slack := s.cost[newRow][j] - s.labelByRow[newRow] - s.labelByCol[j]
				if s.minSlackValueByCol[j] > slack {
					s.minSlackValueByCol[j] = slack
					s.minSlackRowByCol[j] = newRow
				}
			}
		}
	}
}

func (s *munkresState) match(row, col int) {
	s.matchColByRow[row] = col
	s.matchRowByCol[col] = row
}

// updateLabels raises committed-row labels and lowers committed-column
// labels by slack, creating at least one new zero-slack edge.
func (s *munkresState) updateLabels(slack float64) {
	for i := 0; i < s.n; i++ {
		if s.committedRows[i] {
			s.labelByRow[i] += slack
		}
	}
	for j := 0; j < s.n; j++ {
		if s.parentRowByCommittedCol[j] != -1 {
			s.labelByCol[j] -= slack
		} else {
			s.minSlackValueByCol[j] -= slack
		}
	}
}
