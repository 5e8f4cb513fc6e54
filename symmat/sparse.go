package symmat

import (
	"fmt"

	"github.com/katalvlaran/arw/rational"
)

// Sparse is a map-backed matrix whose absent entries read as the additive
// identity. Suited to selector right-hand sides and I-Q assembly, where
// almost every entry is zero.
type Sparse struct {
	r, c  int
	f     *rational.Field
	cells map[int]map[int]rational.Expr // row -> col -> value
}

// NewSparse creates an r x c Sparse matrix over f with all entries zero.
func NewSparse(f *rational.Field, rows, cols int) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}

	return &Sparse{r: rows, c: cols, f: f, cells: map[int]map[int]rational.Expr{}}, nil
}

// Rows returns the number of rows.
func (m *Sparse) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Sparse) Cols() int { return m.c }

// Field returns the field all entries belong to.
func (m *Sparse) Field() *rational.Field { return m.f }

func (m *Sparse) check(row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.r, m.c, ErrOutOfRange)
	}

	return nil
}

// At retrieves the entry at (row, col); absent cells are zero.
func (m *Sparse) At(row, col int) (rational.Expr, error) {
	if err := m.check(row, col); err != nil {
		return rational.Expr{}, err
	}
	if r, ok := m.cells[row]; ok {
		if v, ok := r[col]; ok {
			return v, nil
		}
	}

	return m.f.Zero(), nil
}

// Set assigns v at (row, col). Storing a zero removes the cell.
func (m *Sparse) Set(row, col int, v rational.Expr) error {
	if err := m.check(row, col); err != nil {
		return err
	}
	if v.Field() != m.f {
		return ErrFieldMismatch
	}
	if v.IsZero() {
		if r, ok := m.cells[row]; ok {
			delete(r, col)
			if len(r) == 0 {
				delete(m.cells, row)
			}
		}

		return nil
	}
	r, ok := m.cells[row]
	if !ok {
		r = map[int]rational.Expr{}
		m.cells[row] = r
	}
	r[col] = v

	return nil
}

// Clone returns a deep, independent copy.
func (m *Sparse) Clone() Matrix {
	cp := &Sparse{r: m.r, c: m.c, f: m.f, cells: map[int]map[int]rational.Expr{}}
	for i, row := range m.cells {
		nr := make(map[int]rational.Expr, len(row))
		for j, v := range row {
			nr[j] = v
		}
		cp.cells[i] = nr
	}

	return cp
}
