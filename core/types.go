// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, construction options and sentinel errors.
//
// Storage model:
//   - Every vertex gets a registration index the first time it is added.
//   - adjacency[idx] is the set of neighbour indices of the vertex at idx.
//   - Removed vertices leave a tombstone (alive[idx] == false); their index is
//     never reused, so registration order stays stable for the whole lifetime.
//
// Concurrency:
//   - A single sync.RWMutex guards the catalog and the adjacency sets.
//     Queries take the read lock, mutations take the write lock.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop (A,A) was attempted or detected.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrAsymmetric indicates that B is a neighbour of A but A is not a neighbour of B.
	ErrAsymmetric = errors.New("core: adjacency is not symmetric")

	// ErrOptionViolation is returned by NewGraphE when an invalid option is supplied.
	ErrOptionViolation = errors.New("core: invalid option supplied")
)

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex catalog for n vertices.
// n < 0 is recorded as an option violation.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n < 0 {
			g.optErr = fmt.Errorf("%w: capacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		g.capacity = n
	}
}

// Graph is an undirected, unweighted, loop-free relatedness graph.
//
// Vertices are opaque string IDs. Adjacency is stored as a set, so repeated
// AddEdge calls for the same unordered pair never create a second edge.
type Graph struct {
	mu sync.RWMutex

	capacity int
	optErr   error

	index     map[string]int     // vertex ID -> registration index (live vertices only)
	ids       []string           // registration index -> vertex ID
	alive     []bool             // registration index -> still in the graph
	adjacency []map[int]struct{} // registration index -> neighbour indices
	live      int                // number of live vertices
	edges     int                // number of undirected edges
}

// NewGraph creates an empty Graph. Invalid options are ignored; use NewGraphE
// to surface them.
//
// Complexity: O(capacity).
func NewGraph(opts ...GraphOption) *Graph {
	g, _ := NewGraphE(opts...)
	return g
}

// NewGraphE creates an empty Graph and reports the first invalid option as an
// error wrapping ErrOptionViolation. The returned graph is always usable.
func NewGraphE(opts ...GraphOption) (*Graph, error) {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.index = make(map[string]int, g.capacity)
	g.ids = make([]string, 0, g.capacity)
	g.alive = make([]bool, 0, g.capacity)
	g.adjacency = make([]map[int]struct{}, 0, g.capacity)

	return g, g.optErr
}
