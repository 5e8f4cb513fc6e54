package symmat

import (
	"fmt"

	"github.com/katalvlaran/arw/rational"
)

// Column operations, the alphabet of the column-reduction solver. The
// solver applies each of these to its coefficient and solution matrices in
// lockstep; the operations themselves know nothing about that pairing.
//
// Every entry produced here goes through rational's cancellation (Mul/Add
// canonicalize), which is what keeps expression size bounded across
// repeated elimination steps.

// ScaleCol multiplies column j by factor, entry-wise.
func (m *Dense) ScaleCol(j int, factor rational.Expr) error {
	if j < 0 || j >= m.c {
		return fmt.Errorf("ScaleCol(%d): %w", j, ErrOutOfRange)
	}
	if factor.Field() != m.f {
		return fmt.Errorf("ScaleCol(%d): %w", j, ErrFieldMismatch)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = m.data[i*m.c+j].Mul(factor)
	}

	return nil
}

// AddCol adds factor times column from into column to. A zero factor is a
// contractual no-op: the column is left byte-for-byte untouched, with no
// re-simplification pass.
func (m *Dense) AddCol(from, to int, factor rational.Expr) error {
	if from < 0 || from >= m.c || to < 0 || to >= m.c {
		return fmt.Errorf("AddCol(%d,%d): %w", from, to, ErrOutOfRange)
	}
	if factor.Field() != m.f {
		return fmt.Errorf("AddCol(%d,%d): %w", from, to, ErrFieldMismatch)
	}
	if factor.IsZero() {
		return nil
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+to] = m.data[i*m.c+to].Add(m.data[i*m.c+from].Mul(factor))
	}

	return nil
}

// SwapCols exchanges columns i and j; a no-op when i == j.
func (m *Dense) SwapCols(i, j int) error {
	if i < 0 || i >= m.c || j < 0 || j >= m.c {
		return fmt.Errorf("SwapCols(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	for r := 0; r < m.r; r++ {
		base := r * m.c
		m.data[base+i], m.data[base+j] = m.data[base+j], m.data[base+i]
	}

	return nil
}
