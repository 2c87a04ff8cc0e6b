// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies for non-destructive selection runs.
package core

// Clone returns a deep copy of the graph. Registration order, tombstones and
// adjacency are preserved, so Order() answers identically on the copy.
//
// Complexity: O(R + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		capacity:  g.capacity,
		index:     make(map[string]int, len(g.index)),
		ids:       make([]string, len(g.ids)),
		alive:     make([]bool, len(g.alive)),
		adjacency: make([]map[int]struct{}, len(g.adjacency)),
		live:      g.live,
		edges:     g.edges,
	}
	copy(out.ids, g.ids)
	copy(out.alive, g.alive)
	for id, idx := range g.index {
		out.index[id] = idx
	}
	for idx, nbrs := range g.adjacency {
		if nbrs == nil {
			continue
		}
		set := make(map[int]struct{}, len(nbrs))
		for nbr := range nbrs {
			set[nbr] = struct{}{}
		}
		out.adjacency[idx] = set
	}

	return out
}
