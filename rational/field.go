package rational

import (
	"fmt"
	"math/big"
)

// Field is a fixed set of named parameters together with the rational
// functions over them. All Expr values are minted by a Field; values from
// different Fields must not be mixed (mixing is a programmer error and
// panics rather than silently coercing).
type Field struct {
	names []string
}

// NewField creates a field over the given parameter names. A field with no
// parameters is the plain rationals.
func NewField(names ...string) *Field {
	cp := make([]string, len(names))
	copy(cp, names)

	return &Field{names: cp}
}

// Indexed creates a field with parameters prefix_0 .. prefix_{n-1}, the
// naming used for per-vertex sleep probabilities.
func Indexed(prefix string, n int) *Field {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s_%d", prefix, i)
	}

	return &Field{names: names}
}

// Arity returns the number of parameters.
func (f *Field) Arity() int { return len(f.names) }

// Names returns a copy of the parameter names.
func (f *Field) Names() []string {
	cp := make([]string, len(f.names))
	copy(cp, f.names)

	return cp
}

// Zero returns the additive identity.
func (f *Field) Zero() Expr {
	return Expr{f: f, num: newPoly(len(f.names)), den: polyConst(len(f.names), big.NewRat(1, 1))}
}

// One returns the multiplicative identity.
func (f *Field) One() Expr {
	one := polyConst(len(f.names), big.NewRat(1, 1))

	return Expr{f: f, num: one, den: one}
}

// Param returns the i-th parameter as an expression.
// Panics when i is out of range (programmer error, not an input error).
func (f *Field) Param(i int) Expr {
	if i < 0 || i >= len(f.names) {
		panic(fmt.Sprintf("rational: parameter index %d out of range [0,%d)", i, len(f.names)))
	}

	return Expr{f: f, num: polyVar(len(f.names), i), den: polyConst(len(f.names), big.NewRat(1, 1))}
}

// FromInt lifts an integer constant into the field.
func (f *Field) FromInt(v int64) Expr {
	return f.FromRat(new(big.Rat).SetInt64(v))
}

// FromRat lifts an exact rational constant into the field.
func (f *Field) FromRat(r *big.Rat) Expr {
	return Expr{
		f:   f,
		num: polyConst(len(f.names), r),
		den: polyConst(len(f.names), big.NewRat(1, 1)),
	}
}
