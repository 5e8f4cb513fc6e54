package arw_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/arw"
	"github.com/katalvlaran/arw/graphs"
	"github.com/katalvlaran/arw/rational"
)

// clique2 is the smallest instance: one non-sink vertex wired to the sink.
func clique2() [][]int { return [][]int{{1}, {0}} }

func symbolicSleep(n int) (*rational.Field, []rational.Expr) {
	f := rational.Indexed("q", n)
	sleep := make([]rational.Expr, n)
	for i := range sleep {
		sleep[i] = f.Param(i)
	}

	return f, sleep
}

func TestBuildChain_Clique2(t *testing.T) {
	f, sleep := symbolicSleep(1)
	q := f.Param(0)

	chain, err := arw.BuildChain(clique2(), sleep)
	if err != nil {
		t.Fatalf("BuildChain: %v", err)
	}

	// Exactly three configurations: [1], [s], [0], in discovery order.
	want := []arw.Config{{1}, {arw.Asleep}, {0}}
	if len(chain.States) != len(want) {
		t.Fatalf("got %d states, want %d", len(chain.States), len(want))
	}
	for i, st := range want {
		if !chain.States[i].Equal(st) {
			t.Errorf("state %d = %s, want %s", i, chain.States[i], st)
		}
	}
	if len(chain.Absorbing) != 2 || chain.Absorbing[0] != 1 || chain.Absorbing[1] != 2 {
		t.Fatalf("absorbing = %v, want [1 2]", chain.Absorbing)
	}

	// Row 0: falls asleep with probability q, jumps to the sink otherwise.
	at := func(i, j int) rational.Expr {
		v, err := chain.Trans.At(i, j)
		if err != nil {
			t.Fatalf("At(%d,%d): %v", i, j, err)
		}

		return v
	}
	if !at(0, 1).Equal(q) {
		t.Errorf("P([1]->[s]) = %s, want q_0", at(0, 1))
	}
	if !at(0, 2).Equal(f.One().Sub(q)) {
		t.Errorf("P([1]->[0]) = %s, want 1-q_0", at(0, 2))
	}
	// Absorbing states carry unit self-loops.
	if !at(1, 1).IsOne() || !at(2, 2).IsOne() {
		t.Error("absorbing states must have unit self-loops")
	}
}

// TestBuildChain_RowSums checks that every transition row sums to one
// symbolically, on a graph with a genuine interior.
func TestBuildChain_RowSums(t *testing.T) {
	adj, err := graphs.Cycle(3)
	if err != nil {
		t.Fatal(err)
	}
	f, sleep := symbolicSleep(2)

	chain, err := arw.BuildChain(adj, sleep)
	if err != nil {
		t.Fatalf("BuildChain: %v", err)
	}
	for i := range chain.States {
		sum := f.Zero()
		for j := range chain.States {
			v, err := chain.Trans.At(i, j)
			if err != nil {
				t.Fatal(err)
			}
			sum = sum.Add(v)
		}
		if !sum.IsOne() {
			t.Errorf("row %d of %s sums to %s, want 1", i, chain.States[i], sum)
		}
	}
}

// TestBuildChain_DoubledSelfLoop pins the doubled-vertex sleep rule: the
// sleeper is instantly reactivated, so the sleep event is a self-loop.
func TestBuildChain_DoubledSelfLoop(t *testing.T) {
	// Path 0-1-2 with sink 2: firing vertex 0 can push vertex 1 to
	// occupancy two.
	adj, err := graphs.Path(3)
	if err != nil {
		t.Fatal(err)
	}
	f, sleep := symbolicSleep(2)

	chain, err := arw.BuildChain(adj, sleep)
	if err != nil {
		t.Fatalf("BuildChain: %v", err)
	}

	found := 0
	for i, st := range chain.States {
		for v, o := range st {
			if o != 2 {
				continue
			}
			found++
			// The sleep event keeps the configuration unchanged, with the
			// doubled vertex's own rate.
			loop, err := chain.Trans.At(i, i)
			if err != nil {
				t.Fatal(err)
			}
			if !loop.Equal(f.Param(v)) {
				t.Errorf("P(%s self-loop) = %s, want q_%d", st, loop, v)
			}
		}
	}
	if found == 0 {
		t.Fatal("no doubled configuration reached on the 3-path")
	}
}

func TestBuildChain_Validation(t *testing.T) {
	f, sleep := symbolicSleep(1)

	// Wrong number of sleep probabilities.
	_, err := arw.BuildChain([][]int{{1, 2}, {0, 2}, {0, 1}}, sleep)
	if !errors.Is(err, arw.ErrArityMismatch) {
		t.Errorf("short sleep vector: err = %v, want ErrArityMismatch", err)
	}

	// Sink-only graph.
	_, err = arw.BuildChain([][]int{{}}, nil)
	if !errors.Is(err, arw.ErrInvalidAdjacency) {
		t.Errorf("single vertex: err = %v, want ErrInvalidAdjacency", err)
	}

	// Self-loop.
	_, err = arw.BuildChain([][]int{{0}, {0}}, sleep)
	if !errors.Is(err, arw.ErrInvalidAdjacency) {
		t.Errorf("self-loop: err = %v, want ErrInvalidAdjacency", err)
	}

	// Neighbor out of range.
	_, err = arw.BuildChain([][]int{{7}, {0}}, sleep)
	if !errors.Is(err, arw.ErrInvalidAdjacency) {
		t.Errorf("bad neighbor: err = %v, want ErrInvalidAdjacency", err)
	}

	// Isolated non-sink vertex.
	_, err = arw.BuildChain([][]int{{}, {0}}, sleep)
	if !errors.Is(err, arw.ErrInvalidAdjacency) {
		t.Errorf("isolated vertex: err = %v, want ErrInvalidAdjacency", err)
	}

	// Sleep probabilities minted by different fields.
	g := rational.NewField("p", "r")
	_, err = arw.BuildChain([][]int{{1, 2}, {0, 2}, {0, 1}}, []rational.Expr{f.Param(0), g.Param(1)})
	if !errors.Is(err, arw.ErrFieldMismatch) {
		t.Errorf("mixed fields: err = %v, want ErrFieldMismatch", err)
	}
}

// TestBuildChain_OnState checks the discovery callback sees every state
// once, in index order.
func TestBuildChain_OnState(t *testing.T) {
	_, sleep := symbolicSleep(1)

	var seen []int
	_, err := arw.BuildChain(clique2(), sleep, arw.WithOnState(func(idx int, _ arw.Config) {
		seen = append(seen, idx)
	}))
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 3 {
		t.Fatalf("callback fired %d times, want 3", len(seen))
	}
	for i, idx := range seen {
		if idx != i {
			t.Fatalf("discovery order %v, want [0 1 2]", seen)
		}
	}
}

// TestBuildChain_Deterministic checks that two runs over the same input
// agree state-for-state and entry-for-entry.
func TestBuildChain_Deterministic(t *testing.T) {
	adj, err := graphs.Path(3)
	if err != nil {
		t.Fatal(err)
	}
	_, sleep := symbolicSleep(2)

	first, err := arw.BuildChain(adj, sleep)
	if err != nil {
		t.Fatal(err)
	}
	second, err := arw.BuildChain(adj, sleep)
	if err != nil {
		t.Fatal(err)
	}

	if len(first.States) != len(second.States) {
		t.Fatalf("state counts differ: %d vs %d", len(first.States), len(second.States))
	}
	for i := range first.States {
		if !first.States[i].Equal(second.States[i]) {
			t.Fatalf("state %d differs: %s vs %s", i, first.States[i], second.States[i])
		}
		for j := range first.States {
			a, err := first.Trans.At(i, j)
			if err != nil {
				t.Fatal(err)
			}
			b, err := second.Trans.At(i, j)
			if err != nil {
				t.Fatal(err)
			}
			if !a.Equal(b) {
				t.Fatalf("entry (%d,%d) differs: %s vs %s", i, j, a, b)
			}
		}
	}
}

func TestConfig_Strings(t *testing.T) {
	c := arw.Config{1, arw.Asleep, 0, 2}
	if got := c.String(); got != "[1 s 0 2]" {
		t.Fatalf("String() = %q, want %q", got, "[1 s 0 2]")
	}
	if c.Sleeping() != 1 {
		t.Errorf("Sleeping() = %d, want 1", c.Sleeping())
	}
	if c.Occupied() != 3 {
		t.Errorf("Occupied() = %d, want 3", c.Occupied())
	}

	cp := c.Clone()
	cp[0] = 0
	if c[0] != 1 {
		t.Error("Clone must be independent")
	}
	if c.Equal(cp) {
		t.Error("Equal must detect the difference")
	}
}
