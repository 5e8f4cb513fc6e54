package solve

import (
	"fmt"

	"github.com/katalvlaran/arw/symmat"
)

// Reduce runs the column-operation elimination on working copies of a and
// b, returning the Outcome sum type. a must be square with as many columns
// as b; a singular a is not an error at this level - it is the Singular
// variant.
//
// Forward phase, for each column i: pick the lowest-degree nonzero pivot
// in row i among columns >= i, swap it to position i, scale column i so
// the diagonal becomes one, then eliminate row i from every column to the
// right. Swap, scale and add are applied to A and X in lockstep. The back
// substitution then clears X only, walking columns right to left.
func Reduce(a, b symmat.Matrix, opts ...Option) (Outcome, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if a == nil || b == nil {
		return Outcome{}, symmat.ErrNilMatrix
	}
	if a.Rows() != a.Cols() {
		return Outcome{}, fmt.Errorf("coefficient matrix %dx%d: %w", a.Rows(), a.Cols(), symmat.ErrNonSquare)
	}
	if b.Cols() != a.Cols() {
		return Outcome{}, fmt.Errorf("rhs has %d columns, want %d: %w", b.Cols(), a.Cols(), symmat.ErrDimensionMismatch)
	}
	if a.Field() != b.Field() {
		return Outcome{}, symmat.ErrFieldMismatch
	}

	// Work on copies; the caller keeps ownership of its matrices.
	A, err := symmat.ToDense(a)
	if err != nil {
		return Outcome{}, err
	}
	X, err := symmat.ToDense(b)
	if err != nil {
		return Outcome{}, err
	}

	n := A.Cols()
	pivots := make([]int, 0, n)

	// Forward phase: make A lower-triangular.
	for i := 0; i < n; i++ {
		// Pivot search: minimal numerator degree, strict < so ties keep
		// the first (lowest) column index.
		ip, best := -1, 0
		for j := i; j < n; j++ {
			v, _ := A.At(i, j)
			if v.IsZero() {
				continue
			}
			if d := v.NumerDegree(); ip < 0 || d < best {
				ip, best = j, d
			}
		}
		if ip < 0 {
			// Row i has no nonzero entry at or right of the diagonal:
			// a is singular, and this is the only way that shows up.
			o.sink.Done(i)

			return Outcome{X: X, A: A, Singular: true, Row: i, Pivots: pivots}, nil
		}
		pivots = append(pivots, ip)

		_ = A.SwapCols(i, ip)
		_ = X.SwapCols(i, ip)

		piv, _ := A.At(i, i)
		inv, err := piv.Inv()
		if err != nil {
			return Outcome{}, fmt.Errorf("column %d: %w", i, ErrDivisionByZero)
		}
		_ = A.ScaleCol(i, inv)
		_ = X.ScaleCol(i, inv)

		for j := i + 1; j < n; j++ {
			v, _ := A.At(i, j)
			factor := v.Neg()
			_ = A.AddCol(i, j, factor)
			_ = X.AddCol(i, j, factor)
		}
		o.sink.Forward(i, best)
	}

	// Back substitution: A is lower-triangular with unit diagonal; clear
	// X's columns right to left. A is not touched in this phase.
	for i := n - 1; i >= 0; i-- {
		for j := 0; j < i; j++ {
			v, _ := A.At(i, j)
			_ = X.AddCol(i, j, v.Neg())
		}
		o.sink.Backward(i)
	}
	o.sink.Done(-1)

	return Outcome{X: X, A: A, Singular: false, Row: -1, Pivots: pivots}, nil
}

// Solve solves X*A = B exactly. A singular A is an error here: ErrSingular
// wrapped with the failing row index and the row's (partially reduced)
// entries. Use Reduce or NullVector when singularity is an expected outcome.
func Solve(a, b symmat.Matrix, opts ...Option) (*symmat.Dense, error) {
	out, err := Reduce(a, b, opts...)
	if err != nil {
		return nil, err
	}
	if out.Singular {
		row, _ := out.A.Row(out.Row)

		return nil, fmt.Errorf("no pivot in row %d, entries %v: %w", out.Row, row, ErrSingular)
	}

	return out.X, nil
}
