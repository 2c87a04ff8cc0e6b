// Package bfs walks a relatedness graph breadth-first and splits it into
// connected kin groups.
//
// What
//
//   - BFS explores samples in non-decreasing relationship hops from a start.
//   - BFSResult carries Order (visit sequence), Depth and Parent maps, and
//     PathTo rebuilds the chain of relatives between two samples.
//   - Components runs one BFS per kin group and reports its members, its span
//     from the root and the chain to the farthest relative.
//
// Determinism
//
//	core.Graph enumerates neighbours in registration order and the queue is
//	FIFO, so both the visit sequence and the group layout are reproducible.
//
// Usage
//
//	groups, err := bfs.Components(g)
//	largest := bfs.LargestComponent(groups)
//	widest, _ := bfs.WidestComponent(groups)
//	fmt.Println(widest.Chain) // e.g. [NA12878 NA12891 NA12892]
package bfs
