package symmat

import (
	"github.com/katalvlaran/arw/rational"
)

// Matrix is the minimal surface shared by Dense and Sparse. All entries of
// a matrix belong to a single rational.Field, available via Field().
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At retrieves the entry at (row, col), or ErrOutOfRange.
	At(row, col int) (rational.Expr, error)
	// Set assigns the entry at (row, col); ErrOutOfRange on bad indices,
	// ErrFieldMismatch when v belongs to another field.
	Set(row, col int, v rational.Expr) error
	// Clone returns a deep, independent copy.
	Clone() Matrix
	// Field returns the field all entries belong to.
	Field() *rational.Field
}

// ToDense materializes any Matrix as a Dense copy.
func ToDense(m Matrix) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}
	d, err := NewDense(m.Field(), m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
