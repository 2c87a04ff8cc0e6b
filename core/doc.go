// SPDX-License-Identifier: MIT

// Package core provides the in-memory relatedness graph used by the
// kinship builder and the unrelated-sample selector.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected: AddEdge(A,B) and AddEdge(B,A) are the same edge.
//   - Unweighted: an edge only records that two individuals are related
//     at or above the kinship threshold.
//   - Loop-free: AddEdge(A,A) returns ErrLoopNotAllowed.
//   - Set adjacency: repeated pairs never double-count.
//   - Index-based storage: every vertex has a registration index and
//     adjacency[idx] is a set of neighbour indices.
//   - Deterministic iteration: Vertices(), NeighborIDs() enumerate
//     in registration order.
//   - Removal only tombstones a slot, so the registration order of the
//     remaining vertices never changes while a selector consumes the graph.
//   - A sync.RWMutex guards all state; queries may run concurrently.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1)
//	HasVertex(id string) bool           // O(1)
//	RemoveVertex(id string) error       // O(deg(v))
//	Order(id string) (int, bool)        // O(1) registration index
//
//	// Edge lifecycle
//	AddEdge(a, b string) (bool, error)  // O(1), false when already connected
//	HasEdge(a, b string) bool           // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // O(d·log d)
//	Degree(id string) (int, error)            // O(1)
//	Vertices() []string                       // O(R)
//	Stats() *GraphStats                       // O(R) sizes, isolated, max degree
//	Validate() error                          // O(V + E) symmetry / loop check
//
//	// Cloning
//	Clone() *Graph                            // O(R + E)
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – missing vertex
//	ErrLoopNotAllowed  – self-loop attempted or detected
//	ErrAsymmetric      – Validate found a one-way adjacency entry
//	ErrOptionViolation – NewGraphE received an invalid option
package core
