// Package symmat provides matrices whose entries are exact symbolic
// rational expressions (rational.Expr).
//
// Two implementations back the Matrix interface:
//
//   - Dense: flat row-major storage, the working representation for the
//     column-operation elimination in package solve.
//   - Sparse: map-backed storage defaulting to the additive identity, for
//     matrices that are mostly zero (selector right-hand sides, I-Q
//     assembly).
//
// Dense additionally carries the three column operations elimination is
// built from: ScaleCol, AddCol, SwapCols. AddCol is a contractual no-op
// when the factor is zero - callers rely on the skipped simplification
// pass, not just on the saved work.
package symmat
