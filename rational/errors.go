package rational

import "errors"

// Sentinel errors for the rational package. Callers match with errors.Is;
// context is added by wrapping with fmt.Errorf("...: %w", Err...) at the
// boundary that has it.
var (
	// ErrDivisionByZero is returned when a divisor (or a denominator after
	// substitution) simplifies to the additive identity.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrBadSubstitution is returned when a substitution supplies the wrong
	// number of values for the field's parameters.
	ErrBadSubstitution = errors.New("rational: substitution arity mismatch")

	// ErrBadTerm is returned when decoding terms with malformed coefficients
	// or exponent vectors of the wrong length.
	ErrBadTerm = errors.New("rational: malformed term")
)
