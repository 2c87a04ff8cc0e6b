// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in registration order.
package core

import "fmt"

// AddVertex registers a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, return early if the vertex is live.
//   - Stage 3: Otherwise assign the next registration index and an empty neighbour set.
//
// A vertex that was removed and is added again gets a fresh index at the end
// of the registration order.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.register(id)

	return nil
}

// register returns the index of id, allocating one if needed. Caller holds the write lock.
func (g *Graph) register(id string) int {
	if idx, ok := g.index[id]; ok {
		return idx
	}
	idx := len(g.ids)
	g.index[id] = idx
	g.ids = append(g.ids, id)
	g.alive = append(g.alive, true)
	g.adjacency = append(g.adjacency, make(map[int]struct{}))
	g.live++

	return idx
}

// HasVertex reports whether the vertex is present (empty ID ⇒ false).
//
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Implementation:
//   - Stage 1: Validate non-empty ID and presence.
//   - Stage 2: Drop the vertex from each neighbour's set (symmetric cleanup).
//   - Stage 3: Tombstone the registration slot.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound (wrapped with the ID).
//
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	idx, ok := g.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	for nbr := range g.adjacency[idx] {
		delete(g.adjacency[nbr], idx)
		g.edges--
	}
	g.adjacency[idx] = nil
	g.alive[idx] = false
	delete(g.index, id)
	g.live--

	return nil
}

// Vertices returns all live vertex IDs in registration order.
//
// Complexity: O(R) where R is the number of registrations (live + removed).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, g.live)
	for idx, id := range g.ids {
		if g.alive[idx] {
			out = append(out, id)
		}
	}

	return out
}

// Order returns the registration index of id. Indices are unique for the
// lifetime of the graph and increase with registration time.
func (g *Graph) Order(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.index[id]

	return idx, ok
}

// VertexCount returns the number of live vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.live
}
