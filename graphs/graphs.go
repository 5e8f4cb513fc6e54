package graphs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for the graphs package.
var (
	// ErrTooFewVertices indicates that n is below the family's minimum.
	ErrTooFewVertices = errors.New("graphs: parameter too small")

	// ErrUnknownGraph indicates that a graph name cannot be resolved.
	ErrUnknownGraph = errors.New("graphs: unknown graph name")
)

// Minimum vertex counts per family (the sink counts as a vertex).
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 2
	minStarNodes     = 3
)

// Path returns the n-vertex path 0-1-...-(n-1); n >= 2.
func Path(n int) ([][]int, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	adj := make([][]int, n)
	for v := 0; v < n; v++ {
		switch v {
		case 0:
			adj[v] = []int{1}
		case n - 1:
			adj[v] = []int{n - 2}
		default:
			adj[v] = []int{v - 1, v + 1}
		}
	}

	return adj, nil
}

// Cycle returns the n-vertex cycle C_n; n >= 3.
func Cycle(n int) ([][]int, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	adj := make([][]int, n)
	for v := 0; v < n; v++ {
		a, b := (v-1+n)%n, (v+1)%n
		if a > b {
			a, b = b, a
		}
		adj[v] = []int{a, b}
	}

	return adj, nil
}

// Complete returns the n-vertex complete graph K_n (the "n-clique");
// n >= 2.
func Complete(n int) ([][]int, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}
	adj := make([][]int, n)
	for v := 0; v < n; v++ {
		nbrs := make([]int, 0, n-1)
		for u := 0; u < n; u++ {
			if u != v {
				nbrs = append(nbrs, u)
			}
		}
		adj[v] = nbrs
	}

	return adj, nil
}

// Star returns the n-vertex star with hub 0; the sink is a leaf. n >= 3.
func Star(n int) ([][]int, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}
	adj := make([][]int, n)
	hub := make([]int, 0, n-1)
	for v := 1; v < n; v++ {
		hub = append(hub, v)
		adj[v] = []int{0}
	}
	adj[0] = hub

	return adj, nil
}

// ByName resolves a "<n>-<kind>" family name ("4-clique", "3-path",
// "4-cycle", "5-star") into its adjacency list.
func ByName(name string) ([][]int, error) {
	size, kind, ok := strings.Cut(name, "-")
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownGraph)
	}
	n, err := strconv.Atoi(size)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownGraph)
	}
	switch kind {
	case "path":
		return Path(n)
	case "cycle":
		return Cycle(n)
	case "clique", "complete":
		return Complete(n)
	case "star":
		return Star(n)
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownGraph)
	}
}
