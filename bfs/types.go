package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors is returned when fetching neighbours from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// BFSResult holds the outcome of a walk from one sample:
//   - Order: samples reached, in visit sequence (non-decreasing Depth).
//   - Depth: sample → relationship hops from the start.
//   - Parent: sample → the relative it was reached through.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Farthest returns the last sample reached and its depth. Ties at the
// maximum depth resolve to the one visited last.
func (r *BFSResult) Farthest() (string, int) {
	if len(r.Order) == 0 {
		return "", 0
	}
	id := r.Order[len(r.Order)-1]

	return id, r.Depth[id]
}

// PathTo reconstructs the relationship chain from the start vertex to dest.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	var path []string
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// KinGroup is one connected component of the relatedness graph.
type KinGroup struct {
	// Root is the group's earliest registered sample; the walk starts there.
	Root string

	// Members lists the group in BFS order from Root.
	Members []string

	// Span is the hop count from Root to its farthest relative, a lower
	// bound on the group's diameter.
	Span int

	// Chain is one shortest relationship chain from Root to that relative.
	Chain []string
}
