package symmat

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/arw/rational"
)

// Dense is a row-major matrix of rational.Expr values.
type Dense struct {
	r, c int
	f    *rational.Field
	data []rational.Expr // flat backing storage, length r*c
}

// NewDense creates an r x c Dense matrix with every entry the additive
// identity of f. Returns ErrBadShape for non-positive dimensions.
func NewDense(f *rational.Field, rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	data := make([]rational.Expr, rows*cols)
	zero := f.Zero()
	for i := range data {
		data[i] = zero
	}

	return &Dense{r: rows, c: cols, f: f, data: data}, nil
}

// Identity creates the n x n identity matrix over f.
func Identity(f *rational.Field, n int) (*Dense, error) {
	d, err := NewDense(f, n, n)
	if err != nil {
		return nil, err
	}
	one := f.One()
	for i := 0; i < n; i++ {
		d.data[i*n+i] = one
	}

	return d, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Field returns the field all entries belong to.
func (m *Dense) Field() *rational.Field { return m.f }

// index computes the flat offset for (row, col) or reports ErrOutOfRange.
func (m *Dense) index(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.r, m.c, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the entry at (row, col).
func (m *Dense) At(row, col int) (rational.Expr, error) {
	idx, err := m.index(row, col)
	if err != nil {
		return rational.Expr{}, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v rational.Expr) error {
	idx, err := m.index(row, col)
	if err != nil {
		return err
	}
	if v.Field() != m.f {
		return ErrFieldMismatch
	}
	m.data[idx] = v

	return nil
}

// clone returns a typed deep copy.
func (m *Dense) clone() *Dense {
	data := make([]rational.Expr, len(m.data))
	copy(data, m.data) // Expr values are immutable, so copying is sharing-safe

	return &Dense{r: m.r, c: m.c, f: m.f, data: data}
}

// Clone returns a deep, independent copy.
func (m *Dense) Clone() Matrix { return m.clone() }

// Row returns a copy of row i's entries.
func (m *Dense) Row(i int) ([]rational.Expr, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("row %d of %d: %w", i, m.r, ErrOutOfRange)
	}
	out := make([]rational.Expr, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.data[i*m.c+j].String())
		}
		b.WriteString("]\n")
	}

	return b.String()
}
