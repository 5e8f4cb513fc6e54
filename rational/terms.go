package rational

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Term is an exported monomial snapshot used for exact persistence:
// Coef * prod_i param_i^Exps[i]. Coef and Exps are copies.
type Term struct {
	Coef *big.Rat
	Exps []int
}

// exportTerms snapshots a polynomial in deterministic graded-lex order.
func (p poly) exportTerms() []Term {
	ts := p.sortedTerms()
	out := make([]Term, len(ts))
	for i, t := range ts {
		exps := make([]int, len(t.exp))
		copy(exps, t.exp)
		out[i] = Term{Coef: new(big.Rat).Set(t.coef), Exps: exps}
	}

	return out
}

// Numer returns the numerator's terms in deterministic order.
func (e Expr) Numer() []Term { return e.num.exportTerms() }

// Denom returns the denominator's terms in deterministic order.
func (e Expr) Denom() []Term { return e.den.exportTerms() }

// FromTerms reconstructs an expression of f from exported numerator and
// denominator terms. An empty denominator means 1. Returns ErrBadTerm for
// exponent vectors of the wrong length or nil coefficients, and
// ErrDivisionByZero when the denominator terms sum to zero.
func FromTerms(f *Field, num, den []Term) (Expr, error) {
	n := f.Arity()
	build := func(ts []Term) (poly, error) {
		p := newPoly(n)
		for _, t := range ts {
			if t.Coef == nil || len(t.Exps) != n {
				return poly{}, fmt.Errorf("%w: want %d exponents", ErrBadTerm, n)
			}
			p.addTerm(t.Exps, t.Coef)
		}

		return p, nil
	}
	np, err := build(num)
	if err != nil {
		return Expr{}, err
	}
	var dp poly
	if len(den) == 0 {
		dp = polyConst(n, big.NewRat(1, 1))
	} else if dp, err = build(den); err != nil {
		return Expr{}, err
	}
	if dp.isZero() {
		return Expr{}, ErrDivisionByZero
	}

	return Expr{f: f, num: np, den: dp}.cancel(), nil
}

// latex renders a polynomial as LaTeX source.
func (p poly) latex(names []string) string {
	if p.isZero() {
		return "0"
	}
	ratTeX := func(r *big.Rat) string {
		if r.IsInt() {
			return r.Num().String()
		}

		return "\\frac{" + r.Num().String() + "}{" + r.Denom().String() + "}"
	}
	var b strings.Builder
	one := big.NewRat(1, 1)
	for i, t := range p.sortedTerms() {
		negative := t.coef.Sign() < 0
		abs := new(big.Rat).Abs(t.coef)
		switch {
		case i == 0 && negative:
			b.WriteString("-")
		case i > 0 && negative:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		vars := make([]string, 0, len(t.exp))
		for v, e := range t.exp {
			switch {
			case e == 1:
				vars = append(vars, names[v])
			case e > 1:
				vars = append(vars, names[v]+"^{"+strconv.Itoa(e)+"}")
			}
		}
		if len(vars) == 0 {
			b.WriteString(ratTeX(abs))
		} else {
			if abs.Cmp(one) != 0 {
				b.WriteString(ratTeX(abs))
				b.WriteString(" ")
			}
			b.WriteString(strings.Join(vars, " "))
		}
	}

	return b.String()
}

// LaTeX renders e as LaTeX source, using \frac when the denominator is
// not the constant one.
func (e Expr) LaTeX() string {
	one := polyConst(e.den.n, big.NewRat(1, 1))
	if e.den.sub(one).isZero() {
		return e.num.latex(e.f.names)
	}

	return "\\frac{" + e.num.latex(e.f.names) + "}{" + e.den.latex(e.f.names) + "}"
}
