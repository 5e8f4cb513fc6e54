package arw

import (
	"fmt"

	"github.com/katalvlaran/arw/rational"
	"github.com/katalvlaran/arw/solve"
	"github.com/katalvlaran/arw/symmat"
)

// StationaryDist computes the exact stationary distribution of the ARW on
// the given graph: BuildChain followed by Stationary.
func StationaryDist(adj [][]int, sleep []rational.Expr, opts ...Option) (*Distribution, error) {
	chain, err := BuildChain(adj, sleep, opts...)
	if err != nil {
		return nil, err
	}

	return chain.Stationary(opts...)
}

// Stationary derives the absorption probabilities from an explored chain.
//
// With the transition matrix split into the transient-to-transient block Q
// and the transient-to-absorbing block R (rows and columns in discovery
// order), the absorption-probability row vector starting from the initial
// configuration is
//
//	row 0 of (I - Q)^{-1}, times R.
//
// Only that single row of the fundamental matrix is computed, via
// solve.InverseEntries. The chain's matrices are left untouched.
func (c *Chain) Stationary(opts ...Option) (*Distribution, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := c.Field()
	t := len(c.States)
	absorb := make(map[int]bool, len(c.Absorbing))
	for _, i := range c.Absorbing {
		absorb[i] = true
	}
	transient := make([]int, 0, t-len(c.Absorbing))
	for i := 0; i < t; i++ {
		if !absorb[i] {
			transient = append(transient, i)
		}
	}
	// The initial configuration always holds active particles, so the
	// transient set is nonempty and its first member is state 0.
	if len(transient) == 0 || transient[0] != 0 {
		return nil, fmt.Errorf("%w: initial configuration classified absorbing", ErrInvariantViolation)
	}
	ell := len(transient)

	// Assemble I - Q sparsely: unit diagonal minus the transient block.
	iq, err := symmat.NewSparse(f, ell, ell)
	if err != nil {
		return nil, err
	}
	one := f.One()
	for a, i := range transient {
		diag := one
		for b, j := range transient {
			q, errAt := c.Trans.At(i, j)
			if errAt != nil {
				return nil, errAt
			}
			if q.IsZero() {
				continue
			}
			if a == b {
				diag = diag.Sub(q)
				continue
			}
			if err = iq.Set(a, b, q.Neg()); err != nil {
				return nil, err
			}
		}
		if err = iq.Set(a, a, diag); err != nil {
			return nil, err
		}
	}

	// Row 0 of the fundamental matrix (I - Q)^{-1}.
	cols := make([]int, ell)
	for i := range cols {
		cols[i] = i
	}
	row0, err := solve.InverseEntries(iq, []int{0}, cols, o.solverOpts...)
	if err != nil {
		return nil, fmt.Errorf("fundamental matrix: %w", err)
	}

	// Multiply by R: probs[j] = sum_k N[0][k] * P(transient[k] -> absorbing[j]).
	probs := make([]rational.Expr, len(c.Absorbing))
	states := make([]Config, len(c.Absorbing))
	for j, aj := range c.Absorbing {
		sum := f.Zero()
		for k, tk := range transient {
			r, errAt := c.Trans.At(tk, aj)
			if errAt != nil {
				return nil, errAt
			}
			if r.IsZero() {
				continue
			}
			nk, errAt := row0.At(0, k)
			if errAt != nil {
				return nil, errAt
			}
			sum = sum.Add(nk.Mul(r))
		}
		probs[j] = sum
		states[j] = c.States[aj].Clone()
	}

	return &Distribution{States: states, Probs: probs, field: f}, nil
}
