package rational

import (
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// poly is a multivariate polynomial with big.Rat coefficients over a fixed
// number of variables. The zero polynomial has an empty term map. Terms are
// keyed by their packed exponent vector; values are never stored with a
// zero coefficient.
//
// polys are treated as immutable: every operation returns a fresh value and
// never mutates its operands' term maps or coefficients.
type poly struct {
	n     int
	terms map[string]term
}

// term is a single monomial: coef * x_0^exp[0] * ... * x_{n-1}^exp[n-1].
type term struct {
	coef *big.Rat
	exp  []int
}

// expKey packs an exponent vector into a deterministic map key.
func expKey(exp []int) string {
	var b strings.Builder
	for i, e := range exp {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(e))
	}

	return b.String()
}

// newPoly returns the zero polynomial over n variables.
func newPoly(n int) poly {
	return poly{n: n, terms: map[string]term{}}
}

// polyConst returns the constant polynomial c.
func polyConst(n int, c *big.Rat) poly {
	p := newPoly(n)
	if c.Sign() != 0 {
		exp := make([]int, n)
		p.terms[expKey(exp)] = term{coef: new(big.Rat).Set(c), exp: exp}
	}

	return p
}

// polyVar returns the polynomial x_i.
func polyVar(n, i int) poly {
	p := newPoly(n)
	exp := make([]int, n)
	exp[i] = 1
	p.terms[expKey(exp)] = term{coef: big.NewRat(1, 1), exp: exp}

	return p
}

func (p poly) isZero() bool { return len(p.terms) == 0 }

// isConst reports whether p has no variable part (including the zero poly).
func (p poly) isConst() bool {
	for _, t := range p.terms {
		for _, e := range t.exp {
			if e != 0 {
				return false
			}
		}
	}

	return true
}

func (p poly) clone() poly {
	q := newPoly(p.n)
	for k, t := range p.terms {
		exp := make([]int, p.n)
		copy(exp, t.exp)
		q.terms[k] = term{coef: new(big.Rat).Set(t.coef), exp: exp}
	}

	return q
}

// addTerm folds coef*x^exp into p's term map, dropping cancelled terms.
// The caller must own p.terms; exp is copied.
func (p poly) addTerm(exp []int, coef *big.Rat) {
	if coef.Sign() == 0 {
		return
	}
	k := expKey(exp)
	if t, ok := p.terms[k]; ok {
		sum := new(big.Rat).Add(t.coef, coef)
		if sum.Sign() == 0 {
			delete(p.terms, k)
		} else {
			p.terms[k] = term{coef: sum, exp: t.exp}
		}

		return
	}
	cp := make([]int, len(exp))
	copy(cp, exp)
	p.terms[k] = term{coef: new(big.Rat).Set(coef), exp: cp}
}

func (p poly) add(q poly) poly {
	r := p.clone()
	for _, t := range q.terms {
		r.addTerm(t.exp, t.coef)
	}

	return r
}

func (p poly) neg() poly {
	r := p.clone()
	for k, t := range r.terms {
		r.terms[k] = term{coef: new(big.Rat).Neg(t.coef), exp: t.exp}
	}

	return r
}

func (p poly) sub(q poly) poly { return p.add(q.neg()) }

func (p poly) mul(q poly) poly {
	r := newPoly(p.n)
	exp := make([]int, p.n)
	c := new(big.Rat)
	for _, a := range p.terms {
		for _, b := range q.terms {
			for i := range exp {
				exp[i] = a.exp[i] + b.exp[i]
			}
			c.Mul(a.coef, b.coef)
			r.addTerm(exp, c)
		}
	}

	return r
}

// mulTerm multiplies p by a single monomial.
func (p poly) mulTerm(t term) poly {
	r := newPoly(p.n)
	exp := make([]int, p.n)
	c := new(big.Rat)
	for _, a := range p.terms {
		for i := range exp {
			exp[i] = a.exp[i] + t.exp[i]
		}
		c.Mul(a.coef, t.coef)
		r.addTerm(exp, c)
	}

	return r
}

// scaleRat multiplies every coefficient by c.
func (p poly) scaleRat(c *big.Rat) poly {
	if c.Sign() == 0 {
		return newPoly(p.n)
	}
	r := p.clone()
	for k, t := range r.terms {
		r.terms[k] = term{coef: new(big.Rat).Mul(t.coef, c), exp: t.exp}
	}

	return r
}

// mulVarPow multiplies p by x_v^k.
func (p poly) mulVarPow(v, k int) poly {
	if k == 0 {
		return p
	}
	r := newPoly(p.n)
	for _, t := range p.terms {
		exp := make([]int, p.n)
		copy(exp, t.exp)
		exp[v] += k
		r.addTerm(exp, t.coef)
	}

	return r
}

// totalDegree is the maximum term degree; 0 for the zero polynomial.
func (p poly) totalDegree() int {
	d := 0
	for _, t := range p.terms {
		s := 0
		for _, e := range t.exp {
			s += e
		}
		if s > d {
			d = s
		}
	}

	return d
}

// degIn is the highest power of x_v occurring in p; 0 when v is absent.
func (p poly) degIn(v int) int {
	d := 0
	for _, t := range p.terms {
		if t.exp[v] > d {
			d = t.exp[v]
		}
	}

	return d
}

// coeffOf extracts the coefficient of x_v^d as a polynomial in the
// remaining variables (the slot for v is zeroed).
func (p poly) coeffOf(v, d int) poly {
	r := newPoly(p.n)
	for _, t := range p.terms {
		if t.exp[v] != d {
			continue
		}
		exp := make([]int, p.n)
		copy(exp, t.exp)
		exp[v] = 0
		r.addTerm(exp, t.coef)
	}

	return r
}

// lexLess orders exponent vectors lexicographically.
func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// leadLex returns the lex-greatest term. Must not be called on zero.
func (p poly) leadLex() term {
	var lt term
	first := true
	for _, t := range p.terms {
		if first || lexLess(lt.exp, t.exp) {
			lt = t
			first = false
		}
	}

	return lt
}

// sortedTerms returns terms in graded-lex descending order, the order used
// for rendering and for deterministic term export.
func (p poly) sortedTerms() []term {
	ts := make([]term, 0, len(p.terms))
	for _, t := range p.terms {
		ts = append(ts, t)
	}
	deg := func(t term) int {
		s := 0
		for _, e := range t.exp {
			s += e
		}

		return s
	}
	sort.Slice(ts, func(i, j int) bool {
		di, dj := deg(ts[i]), deg(ts[j])
		if di != dj {
			return di > dj
		}

		return lexLess(ts[j].exp, ts[i].exp)
	})

	return ts
}

// eval substitutes numeric values for all variables.
func (p poly) eval(vals []*big.Rat) *big.Rat {
	sum := new(big.Rat)
	pw := new(big.Rat)
	for _, t := range p.terms {
		prod := new(big.Rat).Set(t.coef)
		for i, e := range t.exp {
			if e == 0 {
				continue
			}
			pw.Set(vals[i])
			for k := 0; k < e; k++ {
				prod.Mul(prod, pw)
			}
		}
		sum.Add(sum, prod)
	}

	return sum
}

// String renders p with the given variable names (graded-lex descending).
func (p poly) format(names []string) string {
	if p.isZero() {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.sortedTerms() {
		c := t.coef
		negative := c.Sign() < 0
		abs := new(big.Rat).Abs(c)
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
				vars = append(vars, names[v]+"^"+strconv.Itoa(e))
			}
		}
		if len(vars) == 0 {
			b.WriteString(abs.RatString())
		} else {
			if abs.Cmp(big.NewRat(1, 1)) != 0 {
				b.WriteString(abs.RatString())
				b.WriteString("*")
			}
			b.WriteString(strings.Join(vars, "*"))
		}
	}

	return b.String()
}
