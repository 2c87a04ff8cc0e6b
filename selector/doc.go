// Package selector chooses a pairwise-unrelated subset of a relatedness graph,
// keeping as many Case individuals as possible, then Control, then Unknown.
//
// What
//
//   - Select runs one tier per Class in Priority order (Case → Control → Unknown).
//   - Seed pass: every pool member with ConflictScore 0 is accepted outright.
//   - Competitive pass: the member with the smallest (ConflictScore, Degree,
//     registration order) is accepted until the pool is empty.
//   - Accepting a vertex disqualifies all of its current neighbours, of any
//     class, and removes them and the accepted vertex from the graph.
//
// Terms
//
//   - ConflictScore(x): edges from x to other members of the active pool.
//   - Degree(x): edges from x in the current graph, any class.
//
// Both counters are set at tier start and maintained incrementally as
// vertices leave the graph; the pool is an indexed min-heap, so each
// acceptance costs O(d·log n).
//
// Guarantees
//
//   - No two accepted vertices share an edge of the input graph.
//   - Every vertex ends either Accepted or Disqualified.
//   - A vertex with no same-class neighbour at tier start is always accepted.
//   - The run is deterministic: ties fall back to registration order.
//
// The heuristic is greedy, not a maximum independent set.
//
// Usage
//
//	res, err := selector.Select(g, classes,
//	    selector.WithOnAccept(func(id string, c selector.Class, seeded bool) { ... }),
//	)
//	keep := append(res.Accepted(), strictlyUnrelated...)
//
// Errors
//
//   - ErrGraphNil      nil graph.
//   - ErrUnclassified  a graph vertex is missing from the class map.
//   - ErrBadClass      a class outside Case, Control, Unknown.
//   - ErrInvalidGraph  the graph fails core.Graph.Validate (loops, asymmetry).
package selector
