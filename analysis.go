package arw

import (
	"github.com/katalvlaran/arw/rational"
)

// Intensity is one k-point joint intensity: the probability that every
// vertex of Subset holds a sleeping particle under the stationary
// distribution.
type Intensity struct {
	Subset []int
	Prob   rational.Expr
}

// Correlation is the pair correlation of vertices I and J:
// rho_ij = m_ij - m_i * m_j, with m the one- and two-point intensities.
type Correlation struct {
	I, J int
	Prob rational.Expr
}

// JointIntensities computes the k-point joint intensities (marginals) of
// the stationary distribution: for every k-subset of non-sink vertices, in
// combination order, the probability that all its vertices retain a
// particle. k = 0 yields the single empty subset with total probability;
// k > n yields an empty list.
func JointIntensities(k int, d *Distribution) ([]Intensity, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	n := d.Vertices()
	var out []Intensity
	for _, subset := range combinations(n, k) {
		prob := d.field.Zero()
		for s, st := range d.States {
			hit := true
			for _, v := range subset {
				if st[v] == 0 {
					hit = false
					break
				}
			}
			if hit {
				prob = prob.Add(d.Probs[s])
			}
		}
		out = append(out, Intensity{Subset: subset, Prob: prob})
	}

	return out, nil
}

// Marginals returns the one-point intensities: per vertex, the probability
// that it retains a particle.
func Marginals(d *Distribution) ([]rational.Expr, error) {
	ints, err := JointIntensities(1, d)
	if err != nil {
		return nil, err
	}
	out := make([]rational.Expr, len(ints))
	for i, it := range ints {
		out[i] = it.Prob
	}

	return out, nil
}

// Correlations computes all pair correlations m_ij - m_i*m_j, ordered by
// (i, j) with i < j - the same order JointIntensities(2, d) uses.
func Correlations(d *Distribution) ([]Correlation, error) {
	marginals, err := Marginals(d)
	if err != nil {
		return nil, err
	}
	joints, err := JointIntensities(2, d)
	if err != nil {
		return nil, err
	}
	out := make([]Correlation, len(joints))
	for k, j := range joints {
		i0, i1 := j.Subset[0], j.Subset[1]
		out[k] = Correlation{
			I:    i0,
			J:    i1,
			Prob: j.Prob.Sub(marginals[i0].Mul(marginals[i1])),
		}
	}

	return out, nil
}

// combinations enumerates the k-subsets of {0..n-1} in lexicographic
// order. k = 0 yields one empty subset; k > n yields none.
func combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	if k == 0 {
		return [][]int{{}}
	}
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		cp := make([]int, k)
		copy(cp, idx)
		out = append(out, cp)
		// advance
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Univariate collapses every sleep probability onto a single parameter q,
// the "all sleep rates equal" specialization used throughout the analyses.
func (d *Distribution) Univariate() (*Distribution, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	g := rational.NewField("q")
	q := g.Param(0)
	subs := make([]rational.Expr, d.field.Arity())
	for i := range subs {
		subs[i] = q
	}
	probs := make([]rational.Expr, len(d.Probs))
	for i, p := range d.Probs {
		r, err := p.Rebind(g, subs)
		if err != nil {
			return nil, err
		}
		probs[i] = r
	}
	states := make([]Config, len(d.States))
	for i, s := range d.States {
		states[i] = s.Clone()
	}

	return &Distribution{States: states, Probs: probs, field: g}, nil
}
