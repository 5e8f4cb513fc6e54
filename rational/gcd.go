package rational

import "math/big"

// Multivariate polynomial GCD. polyGCD dispatches: trivial cases and
// divisibility short-circuits first, then an evaluation-based heuristic
// (integer images at a large point, balanced xi-adic lifting, verified by
// exact division), then a primitive pseudo-remainder sequence as the
// unconditional fallback. Results are primitive (integer-coprime
// coefficients) with a positive lex-leading coefficient, so dividing
// numerator and denominator by the same GCD is deterministic.

// content returns the rational content of p: the positive rational c such
// that p/c has coprime integer coefficients, carrying the sign of the
// lex-leading coefficient. Returns 0 for the zero polynomial.
func (p poly) content() *big.Rat {
	if p.isZero() {
		return new(big.Rat)
	}
	// L = lcm of coefficient denominators.
	l := big.NewInt(1)
	tmp := new(big.Int)
	for _, t := range p.terms {
		d := t.coef.Denom()
		tmp.GCD(nil, nil, l, d)
		l.Div(new(big.Int).Mul(l, d), tmp)
	}
	// G = gcd of the scaled integer numerators.
	g := new(big.Int)
	for _, t := range p.terms {
		v := new(big.Int).Mul(t.coef.Num(), new(big.Int).Div(l, t.coef.Denom()))
		g.GCD(nil, nil, g, v.Abs(v))
	}
	c := new(big.Rat).SetFrac(g, l)
	if p.leadLex().coef.Sign() < 0 {
		c.Neg(c)
	}

	return c
}

// primitive divides p by its rational content. Zero stays zero.
func (p poly) primitive() poly {
	if p.isZero() {
		return p
	}
	c := p.content()

	return p.scaleRat(new(big.Rat).Inv(c))
}

// divExact divides p by d, reporting failure when d does not divide p.
// Standard single-divisor division w.r.t. the lex order: the remainder's
// leading term strictly decreases each step, so the loop terminates.
func (p poly) divExact(d poly) (poly, bool) {
	if d.isZero() {
		return newPoly(p.n), false
	}
	q := newPoly(p.n)
	r := p.clone()
	ld := d.leadLex()
	exp := make([]int, p.n)
	for !r.isZero() {
		lr := r.leadLex()
		ok := true
		for i := range exp {
			exp[i] = lr.exp[i] - ld.exp[i]
			if exp[i] < 0 {
				ok = false
				break
			}
		}
		if !ok {
			return newPoly(p.n), false
		}
		t := term{coef: new(big.Rat).Quo(lr.coef, ld.coef), exp: exp}
		q.addTerm(t.exp, t.coef)
		r = r.sub(d.mulTerm(t))
	}

	return q, true
}

// polyGCD returns a GCD of a and b, primitive with positive lex-leading
// coefficient (nonzero constants have GCD 1 over the rationals).
func polyGCD(a, b poly) poly {
	if a.isZero() {
		return b.primitive()
	}
	if b.isZero() {
		return a.primitive()
	}
	if a.isConst() || b.isConst() {
		return polyConst(a.n, big.NewRat(1, 1))
	}
	pa, pb := a.primitive(), b.primitive()
	if pa.sub(pb).isZero() {
		return pa
	}
	if _, ok := pa.divExact(pb); ok {
		return pb
	}
	if _, ok := pb.divExact(pa); ok {
		return pa
	}
	// Disjoint variable support: a common divisor would have to be free of
	// every variable, hence constant.
	shared := false
	for v := 0; v < a.n; v++ {
		if pa.degIn(v) > 0 && pb.degIn(v) > 0 {
			shared = true
			break
		}
	}
	if !shared {
		return polyConst(a.n, big.NewRat(1, 1))
	}
	if g, ok := heuristicGCD(pa, pb, 0); ok {
		return g.primitive()
	}

	return prsGCD(pa, pb)
}

// intContent is the gcd of the coefficient magnitudes. Coefficients must
// be integers.
func (p poly) intContent() *big.Int {
	g := new(big.Int)
	abs := new(big.Int)
	for _, t := range p.terms {
		abs.Abs(t.coef.Num())
		g.GCD(nil, nil, g, abs)
	}

	return g
}

// maxNorm is the largest coefficient magnitude. Coefficients must be
// integers.
func (p poly) maxNorm() *big.Int {
	m := new(big.Int)
	abs := new(big.Int)
	for _, t := range p.terms {
		abs.Abs(t.coef.Num())
		if abs.Cmp(m) > 0 {
			m.Set(abs)
		}
	}

	return m
}

// evalVar substitutes the integer xi for x_v, leaving a polynomial in the
// remaining variables. Integer coefficients in, integer coefficients out.
func (p poly) evalVar(v int, xi *big.Int) poly {
	r := newPoly(p.n)
	c := new(big.Rat)
	pw := new(big.Int)
	e := new(big.Int)
	exp := make([]int, p.n)
	for _, t := range p.terms {
		e.SetInt64(int64(t.exp[v]))
		pw.Exp(xi, e, nil)
		c.SetInt(new(big.Int).Mul(t.coef.Num(), pw))
		copy(exp, t.exp)
		exp[v] = 0
		r.addTerm(exp, c)
	}

	return r
}

// interpVar reconstructs the x_v dependence of a polynomial from its image
// at x_v = xi via balanced xi-adic expansion: digit i becomes the
// coefficient of x_v^i, with every digit coefficient in (-xi/2, xi/2].
func interpVar(h poly, v int, xi *big.Int) poly {
	g := newPoly(h.n)
	cur := h.clone()
	half := new(big.Int).Rsh(xi, 1)
	c := new(big.Rat)
	exp := make([]int, h.n)
	for i := 0; !cur.isZero(); i++ {
		next := newPoly(h.n)
		for _, t := range cur.terms {
			r := new(big.Int).Mod(t.coef.Num(), xi)
			if r.Cmp(half) > 0 {
				r.Sub(r, xi)
			}
			if r.Sign() != 0 {
				copy(exp, t.exp)
				exp[v] = i
				c.SetInt(r)
				g.addTerm(exp, c)
			}
			q := new(big.Int).Sub(t.coef.Num(), r)
			q.Quo(q, xi)
			if q.Sign() != 0 {
				c.SetInt(q)
				next.addTerm(t.exp, c)
			}
		}
		cur = next
	}

	return g
}

// heuristicGCD computes the GCD of two integer polynomials by evaluating
// one variable at a large integer point, recursing on the images, and
// lifting the integer result back. A candidate is accepted only after
// exact division into both operands, so a success is always correct; a
// failure after a few growing points reports false and the caller falls
// back to the pseudo-remainder sequence.
func heuristicGCD(a, b poly, depth int) (poly, bool) {
	if depth > a.n {
		return poly{}, false
	}
	if a.isZero() {
		return b, true
	}
	if b.isZero() {
		return a, true
	}
	if a.isConst() || b.isConst() {
		g := new(big.Int).GCD(nil, nil, a.intContent(), b.intContent())

		return polyConst(a.n, new(big.Rat).SetInt(g)), true
	}
	v := -1
	for i := 0; i < a.n; i++ {
		if a.degIn(i) > 0 || b.degIn(i) > 0 {
			v = i
			break
		}
	}
	na, nb := a.maxNorm(), b.maxNorm()
	if nb.Cmp(na) < 0 {
		na = nb
	}
	// xi > 2 * min-norm keeps the xi-adic digits unambiguous.
	xi := new(big.Int).Lsh(na, 1)
	xi.Add(xi, big.NewInt(29))
	for try := 0; try < 6; try++ {
		h, ok := heuristicGCD(a.evalVar(v, xi), b.evalVar(v, xi), depth+1)
		if ok {
			g := interpVar(h, v, xi).primitive()
			if _, okA := a.divExact(g); okA {
				if _, okB := b.divExact(g); okB {
					return g, true
				}
			}
		}
		// Retry at a larger point.
		xi.Mul(xi, big.NewInt(73794))
		xi.Quo(xi, big.NewInt(27011))
	}

	return poly{}, false
}

// pseudoRem computes a pseudo-remainder of a by b with respect to variable
// v: repeatedly cancels a's leading term in v against b's, multiplying
// through by b's leading coefficient. deg_v strictly decreases each pass.
func pseudoRem(a, b poly, v int) poly {
	db := b.degIn(v)
	lcb := b.coeffOf(v, db)
	r := a
	for !r.isZero() && r.degIn(v) >= db {
		dr := r.degIn(v)
		lcr := r.coeffOf(v, dr)
		r = r.mul(lcb).sub(lcr.mulVarPow(v, dr-db).mul(b))
	}

	return r
}

// contentIn computes the content of p viewed as univariate in x_v: the GCD
// of its coefficient polynomials.
func (p poly) contentIn(v int) poly {
	g := newPoly(p.n)
	for d := 0; d <= p.degIn(v); d++ {
		c := p.coeffOf(v, d)
		if !c.isZero() {
			g = polyGCD(g, c)
		}
	}

	return g
}

// primitiveIn strips the content of p with respect to x_v (polynomial
// content, then rational content). Zero stays zero.
func (p poly) primitiveIn(v int) poly {
	if p.isZero() {
		return p
	}
	_, pp := p.contPrim(v)

	return pp.primitive()
}

// contPrim splits p into content and primitive part with respect to x_v.
func (p poly) contPrim(v int) (poly, poly) {
	c := p.contentIn(v)
	pp, ok := p.divExact(c)
	if !ok {
		// The content divides every coefficient by construction.
		panic("rational: content does not divide polynomial")
	}

	return c, pp
}

// prsGCD is the primitive pseudo-remainder-sequence GCD, kept as the
// fallback for the rare inputs the heuristic gives up on. Both operands
// must be nonzero and nonconstant.
func prsGCD(a, b poly) poly {
	// Main variable: the lowest-index variable occurring in either operand.
	v := -1
	for i := 0; i < a.n; i++ {
		if a.degIn(i) > 0 || b.degIn(i) > 0 {
			v = i
			break
		}
	}
	// If v occurs in only one operand, recurse into the other's content.
	if a.degIn(v) == 0 {
		return polyGCD(a, b.contentIn(v))
	}
	if b.degIn(v) == 0 {
		return polyGCD(a.contentIn(v), b)
	}
	ca, pa := a.contPrim(v)
	cb, pb := b.contPrim(v)
	cg := polyGCD(ca, cb)
	// Primitive PRS in x_v: stripping the content after every
	// pseudo-division keeps coefficient growth linear instead of
	// exponential and keeps the sequence a true GCD chain.
	for !pb.isZero() {
		r := pseudoRem(pa, pb, v)
		pa = pb
		pb = r.primitiveIn(v)
	}

	return cg.mul(pa).primitive()
}
