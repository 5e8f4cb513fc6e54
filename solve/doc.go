// Package solve implements exact Gaussian elimination by column
// operations over the symbolic rational field, solving X*A = B.
//
// The elimination makes A lower-triangular one column at a time. At each
// step the pivot is the nonzero candidate in the current row whose
// numerator has the lowest total degree - a heuristic that keeps
// intermediate expressions from growing combinatorially; any nonzero
// candidate would be mathematically valid. Ties break to the lowest column
// index.
//
// Reduce reports its result as a sum type (Outcome): either Solved, with
// the full solution, or Singular, with the failing row and the partially
// triangularized coefficient matrix. NullVector post-processes the
// Singular variant into a nonzero v with v*A = 0; Solve turns it into
// ErrSingular; InverseEntries computes selected entries of the inverse via
// selector right-hand sides.
//
// Inputs are cloned internally: unlike the classic in-place formulation,
// callers keep ownership of their matrices.
//
// Progress is reported through the Sink interface (Forward, Backward,
// Done). Events are display-only and carry no control-flow significance.
package solve
