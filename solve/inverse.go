package solve

import (
	"fmt"

	"github.com/katalvlaran/arw/symmat"
)

// InverseEntries computes the selected block A^{-1}[rows, cols] without
// forming the full inverse: one selector row per requested row index is
// solved against A, then the solution is projected onto the requested
// columns. The caller's matrix is left untouched.
//
// A singular A is an error here; there is no recovery path.
func InverseEntries(a symmat.Matrix, rows, cols []int, opts ...Option) (*symmat.Dense, error) {
	if a == nil {
		return nil, symmat.ErrNilMatrix
	}
	if a.Rows() != a.Cols() {
		return nil, fmt.Errorf("matrix %dx%d: %w", a.Rows(), a.Cols(), symmat.ErrNonSquare)
	}
	n := a.Rows()
	if len(rows) == 0 || len(cols) == 0 {
		return nil, fmt.Errorf("empty row or column selection: %w", symmat.ErrBadShape)
	}
	for _, r := range rows {
		if r < 0 || r >= n {
			return nil, fmt.Errorf("row index %d: %w", r, symmat.ErrOutOfRange)
		}
	}
	for _, c := range cols {
		if c < 0 || c >= n {
			return nil, fmt.Errorf("column index %d: %w", c, symmat.ErrOutOfRange)
		}
	}

	f := a.Field()
	// Selector right-hand side: row r of B picks out unit coordinate rows[r].
	b, err := symmat.NewSparse(f, len(rows), n)
	if err != nil {
		return nil, err
	}
	one := f.One()
	for r, idx := range rows {
		if err = b.Set(r, idx, one); err != nil {
			return nil, err
		}
	}

	x, err := Solve(a, b, opts...)
	if err != nil {
		return nil, err
	}

	// Project onto the requested columns.
	t, err := symmat.NewDense(f, len(rows), len(cols))
	if err != nil {
		return nil, err
	}
	for i := range rows {
		for j, cj := range cols {
			v, _ := x.At(i, cj)
			_ = t.Set(i, j, v)
		}
	}

	return t, nil
}
