// Package graphs builds the adjacency lists of the standard graph
// families the activated-random-walk computations run on.
//
// Conventions shared with package arw: vertices are indexed 0..n-1, the
// graph is simple and connected, and the highest-index vertex plays the
// sink. Constructors emit neighbors in ascending order, so adjacency
// lists are deterministic.
//
// ByName resolves the "<n>-<kind>" names used by the data files and the
// CLI, e.g. "2-clique", "3-path", "4-cycle", "4-clique", "5-star".
package graphs
