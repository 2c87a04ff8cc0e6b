// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/unrelated/core"
)

// ExampleGraph demonstrates building a small relatedness graph and consuming it.
func ExampleGraph() {
	g := core.NewGraph()

	// siblings s1,s2 and a cousin c1 of s2; duplicate rows collapse
	g.AddEdge("s1", "s2")
	g.AddEdge("s2", "s1")
	g.AddEdge("s2", "c1")

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edges:", g.EdgeCount())

	g.RemoveVertex("s2")
	nbrs, _ := g.NeighborIDs("s1")
	fmt.Println("s1 neighbours after removing s2:", nbrs)

	// Output:
	// Vertices: [s1 s2 c1]
	// Edges: 2
	// s1 neighbours after removing s2: []
}
