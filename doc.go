// Package arw computes exact stationary distributions of the activated
// random walk (ARW) on a finite connected simple graph with one sink.
//
// The model: each non-sink vertex starts with one active particle. An
// active particle either falls asleep (probability q_v, symbolic or exact
// rational) or jumps to a uniformly random neighbor; a sleeping particle
// is reactivated when another particle arrives; particles reaching the
// sink vanish. A configuration with no active particles is absorbing.
//
// BuildChain explores the reachable configuration space breadth-first and
// assembles the absorbing Markov chain's transition matrix with entries in
// the symbolic rational field. StationaryDist splits the chain into its
// transient block Q and absorbing block R, extracts row 0 of the
// fundamental matrix (I-Q)^{-1} through solve.InverseEntries, and returns
// the absorbing configurations paired with their exact absorption
// probabilities.
//
// Downstream, read-only consumers of a Distribution: joint intensities
// (marginals), pair correlations, survivor-count probabilities, the
// all-rates-equal univariate collapse, exact JSON persistence, and plain
// text / LaTeX rendering.
package arw
