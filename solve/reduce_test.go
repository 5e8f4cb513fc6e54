package solve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arw/rational"
	"github.com/katalvlaran/arw/solve"
	"github.com/katalvlaran/arw/symmat"
)

// denseOf builds a Dense matrix from a row-major grid.
func denseOf(t *testing.T, f *rational.Field, rows [][]rational.Expr) *symmat.Dense {
	t.Helper()
	m, err := symmat.NewDense(f, len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// mulRight computes X*A for dense operands.
func mulRight(t *testing.T, x, a *symmat.Dense) *symmat.Dense {
	t.Helper()
	f := x.Field()
	out, err := symmat.NewDense(f, x.Rows(), a.Cols())
	require.NoError(t, err)
	for i := 0; i < x.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			sum := f.Zero()
			for k := 0; k < a.Rows(); k++ {
				xv, err := x.At(i, k)
				require.NoError(t, err)
				av, err := a.At(k, j)
				require.NoError(t, err)
				sum = sum.Add(xv.Mul(av))
			}
			require.NoError(t, out.Set(i, j, sum))
		}
	}

	return out
}

// requireEqualMat asserts entry-wise equality.
func requireEqualMat(t *testing.T, got, want *symmat.Dense) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			g, err := got.At(i, j)
			require.NoError(t, err)
			w, err := want.At(i, j)
			require.NoError(t, err)
			require.Truef(t, g.Equal(w), "entry (%d,%d): got %s, want %s", i, j, g, w)
		}
	}
}

// TestSolve_Symbolic checks X*A = B on a symbolic invertible system and
// that the caller's matrices come back untouched.
func TestSolve_Symbolic(t *testing.T) {
	f := rational.NewField("q")
	q, one := f.Param(0), f.One()

	a := denseOf(t, f, [][]rational.Expr{
		{one, q},
		{q.Neg(), one},
	})
	b := denseOf(t, f, [][]rational.Expr{
		{one, f.Zero()},
		{q, one.Sub(q)},
	})
	aCopy := denseOf(t, f, [][]rational.Expr{
		{one, q},
		{q.Neg(), one},
	})
	bCopy := denseOf(t, f, [][]rational.Expr{
		{one, f.Zero()},
		{q, one.Sub(q)},
	})

	x, err := solve.Solve(a, b)
	require.NoError(t, err)

	requireEqualMat(t, mulRight(t, x, aCopy), bCopy)
	// Inputs are cloned internally.
	requireEqualMat(t, a, aCopy)
	requireEqualMat(t, b, bCopy)
}

// TestReduce_PivotDegree checks that the lowest-degree candidate wins and
// that a tie keeps the lowest column index.
func TestReduce_PivotDegree(t *testing.T) {
	f := rational.NewField("q")
	q, one := f.Param(0), f.One()

	// Row 0 holds q (degree 1) and 1 (degree 0): column 1 must be chosen.
	a := denseOf(t, f, [][]rational.Expr{
		{q, one},
		{one, f.Zero()},
	})
	id, err := symmat.Identity(f, 2)
	require.NoError(t, err)
	out, err := solve.Reduce(a, id)
	require.NoError(t, err)
	require.False(t, out.Singular)
	require.Equal(t, 1, out.Pivots[0])

	// Both candidates have degree 1: the tie keeps column 0.
	a = denseOf(t, f, [][]rational.Expr{
		{q, q},
		{one, f.Zero()},
	})
	out, err = solve.Reduce(a, id)
	require.NoError(t, err)
	require.False(t, out.Singular)
	require.Equal(t, 0, out.Pivots[0])
}

// TestReduce_SingularOutcome exercises the Singular variant.
func TestReduce_SingularOutcome(t *testing.T) {
	f := rational.NewField("q")
	two := f.FromInt(2)

	// Rank-one matrix: the second reduction step finds an empty row.
	a := denseOf(t, f, [][]rational.Expr{
		{f.One(), two},
		{two, f.FromInt(4)},
	})
	id, err := symmat.Identity(f, 2)
	require.NoError(t, err)

	out, err := solve.Reduce(a, id)
	require.NoError(t, err)
	require.True(t, out.Singular)
	require.Equal(t, 1, out.Row)

	// The same matrix is a hard error for Solve.
	_, err = solve.Solve(a, id)
	require.ErrorIs(t, err, solve.ErrSingular)
}

func TestReduce_Validation(t *testing.T) {
	f := rational.NewField("q")
	g := rational.NewField("q")

	rect, err := symmat.NewDense(f, 2, 3)
	require.NoError(t, err)
	sq, err := symmat.Identity(f, 3)
	require.NoError(t, err)
	sq2, err := symmat.Identity(f, 2)
	require.NoError(t, err)
	foreign, err := symmat.Identity(g, 3)
	require.NoError(t, err)

	_, err = solve.Reduce(rect, sq)
	require.ErrorIs(t, err, symmat.ErrNonSquare)
	_, err = solve.Reduce(sq, sq2)
	require.ErrorIs(t, err, symmat.ErrDimensionMismatch)
	_, err = solve.Reduce(nil, sq)
	require.ErrorIs(t, err, symmat.ErrNilMatrix)
	_, err = solve.Reduce(sq, foreign)
	require.ErrorIs(t, err, symmat.ErrFieldMismatch)
}

// eventSink records the elimination's progress calls in order.
type eventSink struct {
	forward  []int
	backward []int
	done     []int
}

func (s *eventSink) Forward(col, _ int) { s.forward = append(s.forward, col) }
func (s *eventSink) Backward(col int)   { s.backward = append(s.backward, col) }
func (s *eventSink) Done(col int)       { s.done = append(s.done, col) }

func TestReduce_SinkOrdering(t *testing.T) {
	f := rational.NewField("q")
	q := f.Param(0)
	a := denseOf(t, f, [][]rational.Expr{
		{f.One(), q},
		{f.Zero(), f.One()},
	})
	id, err := symmat.Identity(f, 2)
	require.NoError(t, err)

	var s eventSink
	out, err := solve.Reduce(a, id, solve.WithSink(&s))
	require.NoError(t, err)
	require.False(t, out.Singular)
	require.Equal(t, []int{0, 1}, s.forward)
	require.Equal(t, []int{1, 0}, s.backward)
	require.Equal(t, []int{-1}, s.done)

	// Singular runs emit Done with the failing row, no Backward events.
	sing := denseOf(t, f, [][]rational.Expr{
		{f.One(), f.FromInt(2)},
		{f.FromInt(2), f.FromInt(4)},
	})
	s = eventSink{}
	out, err = solve.Reduce(sing, id, solve.WithSink(&s))
	require.NoError(t, err)
	require.True(t, out.Singular)
	require.Empty(t, s.backward)
	require.Equal(t, []int{1}, s.done)
}

// TestNullVector verifies v*A = 0 for numeric and symbolic singular inputs.
func TestNullVector(t *testing.T) {
	f := rational.NewField("q")
	q := f.Param(0)

	cases := []struct {
		name string
		a    *symmat.Dense
	}{
		{"numeric rank one", denseOf(t, f, [][]rational.Expr{
			{f.One(), f.FromInt(2)},
			{f.FromInt(2), f.FromInt(4)},
		})},
		{"symbolic rank one", denseOf(t, f, [][]rational.Expr{
			{f.One(), q},
			{q, q.Mul(q)},
		})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := solve.NullVector(tc.a)
			require.NoError(t, err)
			require.Len(t, v, 2)

			nonzero := false
			for _, c := range v {
				if !c.IsZero() {
					nonzero = true
				}
			}
			require.True(t, nonzero, "null vector must be nonzero")

			// v * A = 0 entry-wise.
			for j := 0; j < tc.a.Cols(); j++ {
				sum := f.Zero()
				for i, c := range v {
					av, err := tc.a.At(i, j)
					require.NoError(t, err)
					sum = sum.Add(c.Mul(av))
				}
				require.Truef(t, sum.IsZero(), "column %d: v*A = %s", j, sum)
			}
		})
	}
}

func TestNullVector_Invertible(t *testing.T) {
	f := rational.NewField("q")
	id, err := symmat.Identity(f, 3)
	require.NoError(t, err)

	v, err := solve.NullVector(id)
	require.NoError(t, err)
	require.Nil(t, v)
}

// TestInverseEntries checks selected entries against a hand-inverted matrix.
func TestInverseEntries(t *testing.T) {
	f := rational.NewField("q")

	// A = [[1,2],[3,4]], A^{-1} = [[-2,1],[3/2,-1/2]].
	a := denseOf(t, f, [][]rational.Expr{
		{f.One(), f.FromInt(2)},
		{f.FromInt(3), f.FromInt(4)},
	})

	got, err := solve.InverseEntries(a, []int{0}, []int{0, 1})
	require.NoError(t, err)
	want := denseOf(t, f, [][]rational.Expr{
		{f.FromInt(-2), f.One()},
	})
	requireEqualMat(t, got, want)

	// The full inverse through the same path.
	got, err = solve.InverseEntries(a, []int{0, 1}, []int{0, 1})
	require.NoError(t, err)
	requireEqualMat(t, mulRight(t, got, a), mustIdentity(t, f, 2))

	// Errors.
	_, err = solve.InverseEntries(a, []int{2}, []int{0})
	require.ErrorIs(t, err, symmat.ErrOutOfRange)
	_, err = solve.InverseEntries(a, nil, []int{0})
	require.ErrorIs(t, err, symmat.ErrBadShape)

	sing := denseOf(t, f, [][]rational.Expr{
		{f.One(), f.FromInt(2)},
		{f.FromInt(2), f.FromInt(4)},
	})
	_, err = solve.InverseEntries(sing, []int{0}, []int{0})
	require.ErrorIs(t, err, solve.ErrSingular)
}

func mustIdentity(t *testing.T, f *rational.Field, n int) *symmat.Dense {
	t.Helper()
	id, err := symmat.Identity(f, n)
	require.NoError(t, err)

	return id
}
