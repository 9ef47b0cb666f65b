// Package lap solves the rectangular Linear Assignment Problem on a dense
// real cost matrix: given C[0..r, 0..c] with entries in [0, +Inf], find a
// row-to-column assignment minimizing the sum of assigned costs.
//
// Two algorithms are provided behind one Solve entry point:
//
//   - JV (default): a dual-update shortest-augmenting-path solver in the
//     style of Jonker & Volgenant (1987).
//   - Munkres (fallback): the classical Hungarian algorithm, label/slack
//     formulation. Produces the same minimum cost as JV, but may differ
//     from it on tie-breaks.
//
// Both algorithms share the same preprocessing (validate, exclude
// all-infinite rows/columns, pad to square, substitute a finite sentinel
// for +Inf) and postprocessing (map the padded assignment back through the
// kept-row/kept-column index vectors). See preprocess.go.
//
// Costs must be non-negative and free of NaN; +Inf marks a forbidden pair.
// Solve never panics on malformed input — it returns one of the sentinel
// errors in errors.go.
package lap
