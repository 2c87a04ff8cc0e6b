package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/unrelated/bfs"
	"github.com/katalvlaran/unrelated/core"
)

// ExampleBFS walks a three-generation pedigree from a grandparent.
func ExampleBFS() {
	g := core.NewGraph()
	g.AddEdge("grandma", "mum")
	g.AddEdge("grandma", "uncle")
	g.AddEdge("mum", "me")
	g.AddEdge("uncle", "cousin")

	res, err := bfs.BFS(g, "grandma")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	path, _ := res.PathTo("cousin")
	fmt.Println(path)
	// Output:
	// [grandma mum uncle me cousin]
	// [grandma uncle cousin]
}

// ExampleComponents groups a relatedness graph into kin groups.
func ExampleComponents() {
	g := core.NewGraph()
	g.AddEdge("s1", "s2")
	g.AddEdge("t1", "t2")
	g.AddEdge("s2", "s3")

	groups, _ := bfs.Components(g)
	for _, grp := range groups {
		fmt.Println(grp.Members, grp.Span)
	}
	// Output:
	// [s1 s2 s3] 2
	// [t1 t2] 1
}
