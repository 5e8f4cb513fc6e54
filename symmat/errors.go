package symmat

import "errors"

// Sentinel errors for the symmat package. Tests and callers match with
// errors.Is; wrap with fmt.Errorf("...: %w", ErrX) when context helps.
var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("symmat: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers return this, they do not panic.
	ErrOutOfRange = errors.New("symmat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("symmat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("symmat: matrix is not square")

	// ErrFieldMismatch signals entries or operands minted by a different
	// rational.Field than the matrix's own.
	ErrFieldMismatch = errors.New("symmat: mixed rational fields")

	// ErrNilMatrix indicates a nil Matrix receiver or argument.
	ErrNilMatrix = errors.New("symmat: nil matrix")
)
