package arw_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/katalvlaran/arw"
	"github.com/katalvlaran/arw/graphs"
	"github.com/katalvlaran/arw/rational"
)

// TestStationary_Clique2 pins the closed form of the smallest instance:
// the lone particle either falls asleep (probability q_0) or walks into
// the sink.
func TestStationary_Clique2(t *testing.T) {
	f, sleep := symbolicSleep(1)
	q := f.Param(0)

	dist, err := arw.StationaryDist(clique2(), sleep)
	if err != nil {
		t.Fatalf("StationaryDist: %v", err)
	}

	if len(dist.States) != 2 {
		t.Fatalf("got %d absorbing states, want 2", len(dist.States))
	}
	if !dist.States[0].Equal(arw.Config{arw.Asleep}) || !dist.States[1].Equal(arw.Config{0}) {
		t.Fatalf("states = %v, want [[s] [0]]", dist.States)
	}
	if !dist.Probs[0].Equal(q) {
		t.Errorf("P([s]) = %s, want q_0", dist.Probs[0])
	}
	if !dist.Probs[1].Equal(f.One().Sub(q)) {
		t.Errorf("P([0]) = %s, want 1-q_0", dist.Probs[1])
	}
	if !dist.Sum().IsOne() {
		t.Errorf("Sum() = %s, want 1", dist.Sum())
	}
}

// TestStationary_SumsToOne checks the total-probability identity on
// graphs with nontrivial interiors, fully symbolically.
func TestStationary_SumsToOne(t *testing.T) {
	cases := []string{"3-path", "3-cycle", "3-clique", "4-path", "4-cycle", "4-clique", "4-star"}
	for _, name := range cases {
		t.Run(name, func(t *testing.T) {
			if testing.Short() && strings.HasPrefix(name, "4-") {
				t.Skipf("skipping full symbolic solve of %s in short mode", name)
			}
			adj, err := graphs.ByName(name)
			if err != nil {
				t.Fatal(err)
			}
			_, sleep := symbolicSleep(len(adj) - 1)

			dist, err := arw.StationaryDist(adj, sleep)
			if err != nil {
				t.Fatalf("StationaryDist: %v", err)
			}
			if len(dist.States) == 0 {
				t.Fatal("no absorbing states found")
			}
			if !dist.Sum().IsOne() {
				t.Errorf("Sum() = %s, want 1", dist.Sum())
			}
		})
	}
}

// TestStationary_Clique4 pins the 4-clique workload, the largest of the
// named families the data files ship for: three non-sink vertices, fully
// wired to each other and the sink.
//
// Every active particle can either fall asleep on the spot or jump
// straight into the sink, so the absorbing set is exactly the sleeper
// subsets of {0,1,2} - eight states from [s s s] down to [0 0 0].
func TestStationary_Clique4(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full symbolic solve of the 4-clique in short mode")
	}
	adj, err := graphs.Complete(4)
	if err != nil {
		t.Fatal(err)
	}
	_, sleep := symbolicSleep(3)

	dist, err := arw.StationaryDist(adj, sleep)
	if err != nil {
		t.Fatalf("StationaryDist: %v", err)
	}

	if len(dist.States) != 8 {
		t.Fatalf("got %d absorbing states, want 8", len(dist.States))
	}
	seen := map[string]bool{}
	for _, st := range dist.States {
		for v, o := range st {
			if o != 0 && o != arw.Asleep {
				t.Fatalf("absorbing state %s holds an active particle at vertex %d", st, v)
			}
		}
		seen[st.String()] = true
	}
	if len(seen) != 8 {
		t.Fatalf("absorbing states not distinct: %v", dist.States)
	}
	for _, want := range []string{"[s s s]", "[0 0 0]"} {
		if !seen[want] {
			t.Errorf("missing absorbing state %s", want)
		}
	}
	if !dist.Sum().IsOne() {
		t.Errorf("Sum() = %s, want 1", dist.Sum())
	}
}

// TestStationary_ProbsAreNonNegative spot-checks a numeric specialization:
// at q = 1/2 every probability must land in [0, 1].
func TestStationary_ProbsAreNonNegative(t *testing.T) {
	adj, err := graphs.Cycle(3)
	if err != nil {
		t.Fatal(err)
	}
	_, sleep := symbolicSleep(2)

	dist, err := arw.StationaryDist(adj, sleep)
	if err != nil {
		t.Fatalf("StationaryDist: %v", err)
	}

	half := big.NewRat(1, 2)
	point := []*big.Rat{half, half}
	total := new(big.Rat)
	for i, p := range dist.Probs {
		v, err := p.Eval(point)
		if err != nil {
			t.Fatalf("Eval prob %d: %v", i, err)
		}
		if v.Sign() < 0 || v.Cmp(big.NewRat(1, 1)) > 0 {
			t.Errorf("P(%s)(1/2,1/2) = %s outside [0,1]", dist.States[i], v.RatString())
		}
		total.Add(total, v)
	}
	if total.Cmp(big.NewRat(1, 1)) != 0 {
		t.Errorf("numeric total = %s, want 1", total.RatString())
	}
}

// TestStationary_NumericSleep runs the pipeline with constant sleep
// probabilities instead of symbolic parameters.
func TestStationary_NumericSleep(t *testing.T) {
	f, _ := symbolicSleep(1)
	third := f.FromRat(big.NewRat(1, 3))

	dist, err := arw.StationaryDist(clique2(), []rational.Expr{third})
	if err != nil {
		t.Fatalf("StationaryDist: %v", err)
	}
	if !dist.Probs[0].Equal(third) {
		t.Errorf("P([s]) = %s, want 1/3", dist.Probs[0])
	}
	if !dist.Probs[1].Equal(f.FromRat(big.NewRat(2, 3))) {
		t.Errorf("P([0]) = %s, want 2/3", dist.Probs[1])
	}
}
