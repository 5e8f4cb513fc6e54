package arw

import (
	"github.com/katalvlaran/arw/rational"
)

// Survivors returns the probability that at least k particles survive
// (remain asleep on the graph) under the stationary distribution.
func Survivors(k int, d *Distribution) (rational.Expr, error) {
	if err := d.check(); err != nil {
		return rational.Expr{}, err
	}
	prob := d.field.Zero()
	for s, st := range d.States {
		if st.Occupied() >= k {
			prob = prob.Add(d.Probs[s])
		}
	}

	return prob, nil
}

// ExactSurvivors returns the probability that exactly k particles survive.
func ExactSurvivors(k int, d *Distribution) (rational.Expr, error) {
	if err := d.check(); err != nil {
		return rational.Expr{}, err
	}
	prob := d.field.Zero()
	for s, st := range d.States {
		if st.Occupied() == k {
			prob = prob.Add(d.Probs[s])
		}
	}

	return prob, nil
}
