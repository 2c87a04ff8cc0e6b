// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Policy:
//   - Edges are undirected: AddEdge(a,b) and AddEdge(b,a) denote the same edge.
//   - Adjacency is a set: a repeated pair is a no-op, never a second edge.
//   - Self-loops are rejected with ErrLoopNotAllowed.
package core

import "fmt"

// AddEdge connects a and b, auto-registering missing endpoints (a first).
//
// Returns:
//   - added: true if a new edge was created, false if the pair was already connected.
//   - error: ErrEmptyVertexID or ErrLoopNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string) (bool, error) {
	if a == "" || b == "" {
		return false, ErrEmptyVertexID
	}
	if a == b {
		return false, fmt.Errorf("%w: %q", ErrLoopNotAllowed, a)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ia := g.register(a)
	ib := g.register(b)
	if _, exists := g.adjacency[ia][ib]; exists {
		return false, nil
	}
	g.adjacency[ia][ib] = struct{}{}
	g.adjacency[ib][ia] = struct{}{}
	g.edges++

	return true, nil
}

// HasEdge reports whether a and b are connected. Orientation does not matter.
//
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ia, okA := g.index[a]
	ib, okB := g.index[b]
	if !okA || !okB {
		return false
	}
	_, ok := g.adjacency[ia][ib]

	return ok
}

// EdgeCount returns the number of undirected edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
