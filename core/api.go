// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary surface.
package core

// GraphStats is a snapshot of graph sizes.
type GraphStats struct {
	VertexCount   int // live vertices
	EdgeCount     int // undirected edges
	Registrations int // vertices ever registered (live + removed)
	Isolated      int // live vertices with no neighbours
	MaxDegree     int
}

// Stats produces a deterministic, read-only snapshot of the graph sizes.
//
// Complexity: O(R).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount:   g.live,
		EdgeCount:     g.edges,
		Registrations: len(g.ids),
	}
	for idx, ok := range g.alive {
		if !ok {
			continue
		}
		d := len(g.adjacency[idx])
		if d == 0 {
			stats.Isolated++
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}

	return &stats
}
