// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighbourhood queries, degrees and the symmetry check.
//
// Determinism:
//   - NeighborIDs enumerates in registration order.
package core

import (
	"fmt"
	"sort"
)

// NeighborIDs returns the IDs adjacent to id in registration order.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	idx, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	nbrs := g.sortedNeighbors(idx)
	out := make([]string, len(nbrs))
	for i, nbr := range nbrs {
		out[i] = g.ids[nbr]
	}

	return out, nil
}

// Degree returns the number of edges incident to id.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	idx, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return len(g.adjacency[idx]), nil
}

// Validate checks the structural invariants the selector relies on:
// no self-loops, every neighbour is live, and adjacency is symmetric.
//
// Errors:
//   - ErrLoopNotAllowed, ErrVertexNotFound or ErrAsymmetric, wrapped with the offending IDs.
//
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for idx, ok := range g.alive {
		if !ok {
			continue
		}
		for nbr := range g.adjacency[idx] {
			if nbr == idx {
				return fmt.Errorf("%w: %q", ErrLoopNotAllowed, g.ids[idx])
			}
			if nbr >= len(g.alive) || !g.alive[nbr] {
				return fmt.Errorf("%w: neighbour of %q", ErrVertexNotFound, g.ids[idx])
			}
			if _, back := g.adjacency[nbr][idx]; !back {
				return fmt.Errorf("%w: %q -> %q", ErrAsymmetric, g.ids[idx], g.ids[nbr])
			}
		}
	}

	return nil
}

// sortedNeighbors returns the neighbour indices of idx in ascending order.
// Caller holds at least the read lock.
func (g *Graph) sortedNeighbors(idx int) []int {
	out := make([]int, 0, len(g.adjacency[idx]))
	for nbr := range g.adjacency[idx] {
		out = append(out, nbr)
	}
	sort.Ints(out)

	return out
}
