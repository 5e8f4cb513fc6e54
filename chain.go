package arw

import (
	"fmt"

	"github.com/katalvlaran/arw/rational"
	"github.com/katalvlaran/arw/symmat"
)

// BuildChain explores the ARW's configuration space breadth-first from the
// all-active initial configuration and assembles the absorbing chain.
//
// adj is the adjacency list of a connected simple graph over n+1 vertices;
// the last vertex is the sink. sleep holds exactly n sleep probabilities
// (ErrArityMismatch otherwise), all minted by one rational.Field - either
// symbolic parameters or exact rational constants.
//
// Firing rule: the vertex holding two active particles fires if one
// exists (the model admits at most one such vertex at a time, asserted
// defensively); otherwise the lowest-index vertex holding one active
// particle fires; if neither exists the configuration is absorbing and
// receives a unit self-loop.
func BuildChain(adj [][]int, sleep []rational.Expr, opts ...Option) (*Chain, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w, err := newWalker(adj, sleep)
	if err != nil {
		return nil, err
	}
	w.onState = o.onState

	// Seed with the all-active configuration at index 0.
	init := make(Config, w.n)
	for i := range init {
		init[i] = 1
	}
	w.intern(init)

	for len(w.queue) > 0 {
		idx := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.step(idx); err != nil {
			return nil, err
		}
	}

	return w.chain()
}

// walker carries the mutable exploration state: the configuration arena,
// the exact-lookup index, the row-major growing transition matrix and the
// BFS queue of yet-unexpanded state indices.
type walker struct {
	adj     [][]int
	n       int // number of non-sink vertices; the sink is vertex n
	deg     []int
	sleep   []rational.Expr
	jump    []rational.Expr // (1 - sleep[v]) / deg(v), precomputed per vertex
	f       *rational.Field
	onState func(int, Config)

	states    []Config
	index     map[string]int
	rows      [][]rational.Expr // rows[i][j] = P(i -> j); grows with states
	queue     []int
	absorbing []int
}

func newWalker(adj [][]int, sleep []rational.Expr) (*walker, error) {
	if len(adj) < 2 {
		return nil, fmt.Errorf("%w: need at least one non-sink vertex and the sink", ErrInvalidAdjacency)
	}
	n := len(adj) - 1
	if len(sleep) != n {
		return nil, fmt.Errorf("%w: %d probabilities for %d non-sink vertices", ErrArityMismatch, len(sleep), n)
	}
	f := sleep[0].Field()
	for _, q := range sleep {
		if q.Field() != f {
			return nil, ErrFieldMismatch
		}
	}
	deg := make([]int, n)
	for v := 0; v < n; v++ {
		if len(adj[v]) == 0 {
			return nil, fmt.Errorf("%w: non-sink vertex %d has no neighbors", ErrInvalidAdjacency, v)
		}
		deg[v] = len(adj[v])
		for _, u := range adj[v] {
			if u < 0 || u > n || u == v {
				return nil, fmt.Errorf("%w: vertex %d lists neighbor %d", ErrInvalidAdjacency, v, u)
			}
		}
	}

	one := f.One()
	jump := make([]rational.Expr, n)
	for v := 0; v < n; v++ {
		p, err := one.Sub(sleep[v]).Div(f.FromInt(int64(deg[v])))
		if err != nil {
			return nil, err
		}
		jump[v] = p
	}

	return &walker{
		adj:   adj,
		n:     n,
		deg:   deg,
		sleep: sleep,
		jump:  jump,
		f:     f,
		index: map[string]int{},
	}, nil
}

// intern returns the index of c, registering it (state list, fresh matrix
// row and column, queue, discovery callback) when unseen. c is not
// retained; a clone is.
func (w *walker) intern(c Config) int {
	if idx, ok := w.index[c.key()]; ok {
		return idx
	}
	cp := c.Clone()
	idx := len(w.states)
	w.states = append(w.states, cp)
	w.index[cp.key()] = idx
	// Grow the matrix: one zero column on every existing row, one zero row.
	zero := w.f.Zero()
	for i := range w.rows {
		w.rows[i] = append(w.rows[i], zero)
	}
	row := make([]rational.Expr, len(w.states))
	for j := range row {
		row[j] = zero
	}
	w.rows = append(w.rows, row)
	w.queue = append(w.queue, idx)
	w.onState(idx, cp)

	return idx
}

// fireable selects the vertex to fire, asserting the at-most-one-doubled
// invariant. Returns -1 for an absorbing configuration.
func (w *walker) fireable(st Config) (int, error) {
	v2 := -1
	for v, occ := range st {
		if occ > 2 || occ < Asleep {
			return 0, fmt.Errorf("%w: occupancy %d at vertex %d", ErrInvariantViolation, occ, v)
		}
		if occ == 2 {
			if v2 >= 0 {
				return 0, fmt.Errorf("%w: vertices %d and %d both hold two active particles", ErrInvariantViolation, v2, v)
			}
			v2 = v
		}
	}
	if v2 >= 0 {
		return v2, nil
	}
	for v, occ := range st {
		if occ == 1 {
			return v, nil
		}
	}

	return -1, nil
}

// step expands state idx: records it absorbing, or enumerates the firing
// vertex's transitions and writes their probabilities into row idx.
func (w *walker) step(idx int) error {
	st := w.states[idx]
	v, err := w.fireable(st)
	if err != nil {
		return err
	}
	if v < 0 {
		w.absorbing = append(w.absorbing, idx)
		w.rows[idx][idx] = w.f.One()

		return nil
	}

	if st[v] == 2 {
		// One of the two actives tries to fall asleep and is immediately
		// reactivated by the other: the configuration does not change.
		w.rows[idx][idx] = w.sleep[v]
	} else {
		// The lone active particle falls asleep.
		asleep := st.Clone()
		asleep[v] = Asleep
		w.rows[idx][w.intern(asleep)] = w.sleep[v]
	}

	// The firing particle jumps to a uniformly random neighbor. A jump
	// never produces a sleeping vertex: v's count just drops by one.
	base := st.Clone()
	base[v]--
	for _, u := range w.adj[v] {
		if u == w.n {
			// Jump to the sink: the particle is removed.
			w.rows[idx][w.intern(base)] = w.jump[v]
			continue
		}
		next := base.Clone()
		switch next[u] {
		case Asleep:
			next[u] = 2 // arrival reactivates the sleeper
		default:
			next[u]++
		}
		if next[u] > 2 {
			return fmt.Errorf("%w: jump from %d creates occupancy %d at %d", ErrInvariantViolation, v, next[u], u)
		}
		w.rows[idx][w.intern(next)] = w.jump[v]
	}

	return nil
}

// chain freezes the grown rows into a Dense transition matrix.
func (w *walker) chain() (*Chain, error) {
	t := len(w.states)
	m, err := symmat.NewDense(w.f, t, t)
	if err != nil {
		return nil, err
	}
	for i, row := range w.rows {
		for j, v := range row {
			if !v.IsZero() {
				if err := m.Set(i, j, v); err != nil {
					return nil, err
				}
			}
		}
	}

	return &Chain{Trans: m, States: w.states, Absorbing: w.absorbing}, nil
}
