package solve

import (
	"fmt"

	"github.com/katalvlaran/arw/rational"
	"github.com/katalvlaran/arw/symmat"
)

// NullVector returns a nonzero row vector v (length n) with v*A = 0 when A
// is singular, or nil when A turns out to be invertible. Column operations
// right-multiply A by an invertible matrix, so a left null vector of the
// reduced matrix is one of the original.
//
// The vector is recovered from the Singular outcome of Reduce: with the
// leading block already triangularized, back-solve coefficients c[j] for
// j < i (with c[i] = 1) so that the combination of rows 0..i vanishes on
// columns 0..i; all later columns of those rows are already zero.
func NullVector(a symmat.Matrix, opts ...Option) ([]rational.Expr, error) {
	if a == nil {
		return nil, symmat.ErrNilMatrix
	}
	n := a.Rows()
	f := a.Field()

	// The right-hand side is irrelevant here; a single zero row rides
	// along through the column operations at negligible cost.
	zero, err := symmat.NewDense(f, 1, n)
	if err != nil {
		return nil, err
	}
	out, err := Reduce(a, zero, opts...)
	if err != nil {
		return nil, err
	}
	if !out.Singular {
		return nil, nil
	}

	i := out.Row
	A := out.A
	c := make([]rational.Expr, n)
	for j := range c {
		c[j] = f.Zero()
	}
	c[i] = f.One()
	for j := i - 1; j >= 0; j-- {
		aij, _ := A.At(i, j)
		ajj, _ := A.At(j, j)
		q, err := aij.Div(ajj)
		if err != nil {
			// Diagonal entries of the reduced block are pivots, hence nonzero.
			return nil, fmt.Errorf("null vector at row %d: %w", j, ErrDivisionByZero)
		}
		c[j] = q.Neg()
		// Fold c[j] * row j into row i so later steps see the running sum.
		for l := 0; l <= j; l++ {
			ail, _ := A.At(i, l)
			ajl, _ := A.At(j, l)
			_ = A.Set(i, l, ail.Add(ajl.Mul(c[j])))
		}
	}

	return c, nil
}
