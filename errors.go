package arw

import "errors"

// Sentinel errors for the arw package, matched via errors.Is.
var (
	// ErrArityMismatch is returned when the sleep-probability count does not
	// equal the number of non-sink vertices (len(adjacency) - 1). Raised
	// before any exploration begins.
	ErrArityMismatch = errors.New("arw: sleep probabilities must cover exactly the non-sink vertices")

	// ErrInvalidAdjacency flags a malformed adjacency list: a neighbor index
	// out of range or a non-sink vertex with no neighbors.
	ErrInvalidAdjacency = errors.New("arw: invalid adjacency list")

	// ErrFieldMismatch flags sleep probabilities minted by different
	// rational fields.
	ErrFieldMismatch = errors.New("arw: sleep probabilities from mixed fields")

	// ErrInvariantViolation reports a configuration that breaks the model's
	// invariants (more than one vertex holding two active particles, or an
	// occupancy above two). The firing rule should make this unreachable;
	// it is asserted rather than assumed.
	ErrInvariantViolation = errors.New("arw: configuration invariant violated")

	// ErrCorruptDistribution flags a distribution whose state list and
	// probability vector disagree in length.
	ErrCorruptDistribution = errors.New("arw: states and probabilities disagree")
)
