// SPDX-License-Identifier: MIT
// Package core_test contains test fixtures for unrelated/core.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unrelated/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// buildSquare returns the 4-cycle A-B-C-D-A, registered in A,B,C,D order.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{VertexA, VertexB}, {VertexB, VertexC}, {VertexC, VertexD}, {VertexD, VertexA}} {
		added, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
		require.True(t, added)
	}

	return g
}
