package rational

import (
	"fmt"
	"math/big"
)

// Expr is an immutable rational function num/den over its Field's
// parameters. Every Expr is kept in canonical form: gcd(num, den) = 1 and
// den is primitive with a positive lex-leading coefficient. The zero value
// of Expr is not usable; obtain values from a Field.
type Expr struct {
	f   *Field
	num poly
	den poly
}

// Field returns the field that minted e.
func (e Expr) Field() *Field { return e.f }

// sameField panics when two expressions come from different fields.
// Mixing fields is a programmer error, mirroring how mixing matrix shapes
// is; it is never a data-dependent condition.
func (e Expr) sameField(o Expr) {
	if e.f != o.f {
		panic("rational: mixed expressions from different fields")
	}
}

// cancel canonicalizes num/den: GCD cancellation plus denominator
// normalization. Applied by every arithmetic operation; without it the
// expressions produced by repeated elimination grow combinatorially.
func (e Expr) cancel() Expr {
	if e.num.isZero() {
		return e.f.Zero()
	}
	num, den := e.num, e.den
	if g := polyGCD(num, den); !g.isConst() {
		var ok bool
		if num, ok = num.divExact(g); !ok {
			panic("rational: gcd does not divide numerator")
		}
		if den, ok = den.divExact(g); !ok {
			panic("rational: gcd does not divide denominator")
		}
	}
	// Normalize the denominator to primitive with positive leading
	// coefficient; fold the scale into the numerator.
	c := den.content()
	inv := new(big.Rat).Inv(c)

	return Expr{f: e.f, num: num.scaleRat(inv), den: den.scaleRat(inv)}
}

// Add returns e + o.
func (e Expr) Add(o Expr) Expr {
	e.sameField(o)

	return Expr{
		f:   e.f,
		num: e.num.mul(o.den).add(o.num.mul(e.den)),
		den: e.den.mul(o.den),
	}.cancel()
}

// Sub returns e - o.
func (e Expr) Sub(o Expr) Expr { return e.Add(o.Neg()) }

// Neg returns -e.
func (e Expr) Neg() Expr {
	return Expr{f: e.f, num: e.num.neg(), den: e.den}
}

// Mul returns e * o.
func (e Expr) Mul(o Expr) Expr {
	e.sameField(o)

	return Expr{f: e.f, num: e.num.mul(o.num), den: e.den.mul(o.den)}.cancel()
}

// Div returns e / o, or ErrDivisionByZero when o simplifies to zero.
func (e Expr) Div(o Expr) (Expr, error) {
	e.sameField(o)
	if o.IsZero() {
		return Expr{}, ErrDivisionByZero
	}

	return Expr{f: e.f, num: e.num.mul(o.den), den: e.den.mul(o.num)}.cancel(), nil
}

// Inv returns 1/e, or ErrDivisionByZero when e is zero.
func (e Expr) Inv() (Expr, error) {
	return e.f.One().Div(e)
}

// IsZero reports exactly whether e simplifies to the additive identity.
func (e Expr) IsZero() bool { return e.num.isZero() }

// IsOne reports exactly whether e simplifies to the multiplicative identity.
func (e Expr) IsOne() bool { return e.num.sub(e.den).isZero() }

// Equal reports exact symbolic equality.
func (e Expr) Equal(o Expr) bool { return e.Sub(o).IsZero() }

// Cancel returns the canonical form of e. Constructors and arithmetic
// already canonicalize, so this is exposed for contract completeness.
func (e Expr) Cancel() Expr { return e.cancel() }

// NumerDegree is the total degree of the numerator polynomial. It exists
// purely as a pivot-selection heuristic; it is 0 for the zero expression.
func (e Expr) NumerDegree() int { return e.num.totalDegree() }

// Eval substitutes numeric values for every parameter.
// Returns ErrBadSubstitution on an arity mismatch and ErrDivisionByZero
// when the denominator vanishes at the given point.
func (e Expr) Eval(vals []*big.Rat) (*big.Rat, error) {
	if len(vals) != e.f.Arity() {
		return nil, fmt.Errorf("%w: got %d values for %d parameters", ErrBadSubstitution, len(vals), e.f.Arity())
	}
	d := e.den.eval(vals)
	if d.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return new(big.Rat).Quo(e.num.eval(vals), d), nil
}

// Rebind substitutes an expression of the target field for each parameter
// of e's field, producing an expression in the target field. This powers
// the "all sleep rates equal" collapse, where every q_i maps to a single q.
// Returns ErrBadSubstitution on an arity mismatch and ErrDivisionByZero
// when the substituted denominator vanishes identically.
func (e Expr) Rebind(target *Field, subs []Expr) (Expr, error) {
	if len(subs) != e.f.Arity() {
		return Expr{}, fmt.Errorf("%w: got %d substitutions for %d parameters", ErrBadSubstitution, len(subs), e.f.Arity())
	}
	num := e.num.evalExpr(target, subs)
	den := e.den.evalExpr(target, subs)

	return num.Div(den)
}

// evalExpr evaluates the polynomial at expression arguments.
func (p poly) evalExpr(target *Field, subs []Expr) Expr {
	acc := target.Zero()
	for _, t := range p.sortedTerms() {
		tv := target.FromRat(t.coef)
		for i, exp := range t.exp {
			for k := 0; k < exp; k++ {
				tv = tv.Mul(subs[i])
			}
		}
		acc = acc.Add(tv)
	}

	return acc
}

// String renders e as "num" or "(num)/(den)" using the field's names.
func (e Expr) String() string {
	if e.den.isConst() && e.den.sub(polyConst(e.den.n, big.NewRat(1, 1))).isZero() {
		return e.num.format(e.f.names)
	}

	return "(" + e.num.format(e.f.names) + ")/(" + e.den.format(e.f.names) + ")"
}

// NumerString renders the numerator alone (pretty printing prints the
// numerator over a fraction bar).
func (e Expr) NumerString() string { return e.num.format(e.f.names) }

// DenomString renders the denominator alone.
func (e Expr) DenomString() string { return e.den.format(e.f.names) }
