package arw

import (
	"strings"

	"github.com/katalvlaran/arw/rational"
	"github.com/katalvlaran/arw/symmat"
)

// Occupancy is the particle state of a single vertex: zero, one or two
// active particles, or one sleeping particle.
type Occupancy int8

// Asleep marks a vertex holding a single sleeping particle. The remaining
// occupancies are the plain counts 0, 1 and 2.
const Asleep Occupancy = -1

// String renders an occupancy as "0", "1", "2" or "s".
func (o Occupancy) String() string {
	if o == Asleep {
		return "s"
	}

	return string(rune('0' + o))
}

// Config is a particle configuration: one Occupancy per non-sink vertex,
// in vertex order. Configs are compared structurally; each distinct Config
// discovered during exploration receives a stable index in first-visit
// order, with index 0 always the all-active initial configuration.
type Config []Occupancy

// Clone returns an independent copy.
func (c Config) Clone() Config {
	cp := make(Config, len(c))
	copy(cp, c)

	return cp
}

// Equal reports structural equality.
func (c Config) Equal(o Config) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}

	return true
}

// key packs the configuration into a map key for exact lookup.
func (c Config) key() string {
	b := make([]byte, len(c))
	for i, o := range c {
		if o == Asleep {
			b[i] = 's'
		} else {
			b[i] = byte('0' + o)
		}
	}

	return string(b)
}

// Sleeping counts vertices holding a sleeping particle.
func (c Config) Sleeping() int {
	n := 0
	for _, o := range c {
		if o == Asleep {
			n++
		}
	}

	return n
}

// Occupied counts vertices holding at least one particle, active or not.
func (c Config) Occupied() int {
	n := 0
	for _, o := range c {
		if o != 0 {
			n++
		}
	}

	return n
}

// String renders the configuration as "[1 s 0]".
func (c Config) String() string {
	parts := make([]string, len(c))
	for i, o := range c {
		parts[i] = o.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Chain is the explored absorbing Markov chain: the transition matrix over
// the symbolic field, the discovered configurations in index order, and
// the indices of the absorbing configurations in discovery order.
type Chain struct {
	Trans     *symmat.Dense
	States    []Config
	Absorbing []int
}

// Field returns the rational field the transition entries belong to.
func (c *Chain) Field() *rational.Field { return c.Trans.Field() }

// Distribution is the stationary-distribution result: the absorbing
// configurations in discovery order paired with their exact absorption
// probabilities. The probabilities sum to one symbolically.
type Distribution struct {
	States []Config
	Probs  []rational.Expr
	field  *rational.Field
}

// Field returns the rational field of the probabilities.
func (d *Distribution) Field() *rational.Field { return d.field }

// Vertices returns the number of non-sink vertices.
func (d *Distribution) Vertices() int {
	if len(d.States) == 0 {
		return 0
	}

	return len(d.States[0])
}

// Sum returns the symbolic sum of all probabilities (one, for a
// well-formed distribution).
func (d *Distribution) Sum() rational.Expr {
	s := d.field.Zero()
	for _, p := range d.Probs {
		s = s.Add(p)
	}

	return s
}

// check validates the states/probabilities pairing shared by every
// downstream consumer.
func (d *Distribution) check() error {
	if len(d.States) != len(d.Probs) {
		return ErrCorruptDistribution
	}

	return nil
}
