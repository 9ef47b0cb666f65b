package lap

import "math"

// solveJV solves a fully finite, square cost matrix via a dual-update
// shortest-augmenting-path search: for each source row in turn, grow an
// alternating tree of "tight" (zero-slack) edges from already-matched
// columns until an unmatched column is reached, then flip the path.
// sourceCost/targetCost are the row/column duals; minSlack/targetTrail
// implement the Dijkstra-like frontier spec.md §4.2 phase 4 describes
// (d[j] and pred[j]).
//
// This folds spec.md's phases 1-3 (column reduction, reduction transfer,
// augmenting row reduction) into phase 4's augmenting search by starting
// every dual at zero: the result is the same optimal assignment, at a
// slower constant factor than a full four-phase JV, which a dense,
// already-finite (post-sentinel) matrix does not need to offset.
//
// Grounded on the shortest-augmenting-path assignment solver in
// canonical-go-algo's assign package (Niemeyer's Go port of the classic
// O(n^3) Hungarian/JV dual method), adapted here from a generic Cost
// interface to concrete float64 arithmetic with an epsilon tolerance for
// numerical robustness on real-valued costs.
//
// Scan order is strictly increasing column index at every step, so ties
// are always broken by lowest column index first: the same input always
// yields the same rowSol (spec.md §8 property 9).
func solveJV(cost [][]float64, eps float64) (rowSol []int) {
	n := len(cost)

	// sourceCost[i]/targetCost[j] are the row/column duals maintained so
	// that sourceCost[i]+targetCost[j] <= cost[i][j] always holds.
	sourceCost := make([]float64, n+1)
	targetCost := make([]float64, n+1)

	// targetSource[j] = i means column j is currently matched to row i.
	// Index n is a sentinel "no row"/"root" slot.
	targetSource := make([]int, n+1)
	for j := range targetSource {
		targetSource[j] = n
	}

	minSlack := make([]float64, n+1)
	targetTrail := make([]int, n+1)
	visited := make([]bool, n+1)

	for i := 0; i < n; i++ {
		// Root the search for row i at the sentinel column n.
		targetSource[n] = i
		currentTarget := n

		for j := 0; j <= n; j++ {
			minSlack[j] = math.Inf(1)
			targetTrail[j] = n
			visited[j] = false
		}

		for targetSource[currentTarget] != n {
			visited[currentTarget] = true
			currentSource := targetSource[currentTarget]

			delta := math.Inf(1)
			nextTarget := 0
			for j := 0; j < n; j++ {
				if visited[j] {
					continue
				}
				slack := cost[currentSource][j] - sourceCost[currentSource] - targetCost[j]
				if slack < minSlack[j]-eps {
					minSlack[j] = slack
					targetTrail[j] = currentTarget
				}
				if minSlack[j] < delta {
					delta = minSlack[j]
					nextTarget = j
				}
			}

			for j := 0; j <= n; j++ {
				if visited[j] {
					i2 := targetSource[j]
					sourceCost[i2] += delta
					targetCost[j] -= delta
				} else {
					minSlack[j] -= delta
				}
			}

			currentTarget = nextTarget
		}

		// Flip the alternating path back to the root.
		for currentTarget != n {
			prev := targetTrail[currentTarget]
			targetSource[currentTarget] = targetSource[prev]
			currentTarget = prev
		}
	}

	rowSol = make([]int, n)
	for j := 0; j < n; j++ {
		rowSol[targetSource[j]] = j
	}

	return rowSol
}

// defaultResolution returns the machine-epsilon-scaled tolerance used when
// Options.Resolution is zero: the machine epsilon of the matrix's largest
// finite entry, per spec.md §4.2.
func defaultResolution(maxFinite float64) float64 {
	if maxFinite == 0 {
		return 2.220446049250313e-16 // math.Nextafter(1,2)-1, i.e. float64 eps
	}

	return maxFinite * 2.220446049250313e-16
}
