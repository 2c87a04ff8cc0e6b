package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/unrelated/bfs"
	"github.com/katalvlaran/unrelated/core"
)

// BenchmarkBFS_Chain measures BFS on a linear pedigree chain of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph(core.WithCapacity(N + 1))
	for i := 0; i < N; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}

// BenchmarkComponents measures kin-group discovery over many small families.
func BenchmarkComponents(b *testing.B) {
	const families = 2000
	g := core.NewGraph()
	for f := 0; f < families; f++ {
		_, _ = g.AddEdge(fmt.Sprintf("f%d_mother", f), fmt.Sprintf("f%d_child", f))
		_, _ = g.AddEdge(fmt.Sprintf("f%d_father", f), fmt.Sprintf("f%d_child", f))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Components(g)
	}
}
