// SPDX-License-Identifier: MIT

package selector_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unrelated/core"
	"github.com/katalvlaran/unrelated/selector"
)

const (
	propertyRounds   = 60
	propertyVertices = 40
)

// randomInstance builds a random relatedness graph with a random class per vertex.
func randomInstance(t *testing.T, rng *rand.Rand, n int, p float64) (*core.Graph, map[string]selector.Class) {
	t.Helper()
	g := core.NewGraph()
	classes := make(map[string]selector.Class, n)
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("s%03d", i)
		require.NoError(t, g.AddVertex(ids[i]))
		classes[ids[i]] = selector.Class(rng.Intn(3))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				_, err := g.AddEdge(ids[i], ids[j])
				require.NoError(t, err)
			}
		}
	}

	return g, classes
}

// referenceSelect recomputes every counter from scratch before each pick.
// It is the slow statement of the selection rule that Select must match.
func referenceSelect(t *testing.T, g *core.Graph, classes map[string]selector.Class) map[selector.Class][]string {
	t.Helper()
	g = g.Clone()
	out := make(map[selector.Class][]string)

	accept := func(c selector.Class, id string) {
		nbrs, err := g.NeighborIDs(id)
		require.NoError(t, err)
		for _, nbr := range nbrs {
			require.NoError(t, g.RemoveVertex(nbr))
		}
		require.NoError(t, g.RemoveVertex(id))
		out[c] = append(out[c], id)
	}
	score := func(id string, c selector.Class) int {
		n := 0
		nbrs, err := g.NeighborIDs(id)
		require.NoError(t, err)
		for _, nbr := range nbrs {
			if classes[nbr] == c {
				n++
			}
		}
		return n
	}
	pool := func(c selector.Class) []string {
		var ids []string
		for _, id := range g.Vertices() {
			if classes[id] == c {
				ids = append(ids, id)
			}
		}
		return ids
	}

	for _, c := range selector.Priority() {
		var seeds []string
		for _, id := range pool(c) {
			if score(id, c) == 0 {
				seeds = append(seeds, id)
			}
		}
		for _, id := range seeds {
			accept(c, id)
		}
		for {
			members := pool(c)
			if len(members) == 0 {
				break
			}
			best, bestScore, bestDegree := "", 0, 0
			for _, id := range members {
				s := score(id, c)
				d, err := g.Degree(id)
				require.NoError(t, err)
				if best == "" || s < bestScore || (s == bestScore && d < bestDegree) {
					best, bestScore, bestDegree = id, s, d
				}
			}
			accept(c, best)
		}
	}

	return out
}

// TestSelect_Properties checks independence, partition, seeding and
// agreement with the full-scan rule on random graphs.
func TestSelect_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(20211))
	for round := 0; round < propertyRounds; round++ {
		density := 0.02 + 0.2*rng.Float64()
		g, classes := randomInstance(t, rng, propertyVertices, density)

		res, err := selector.Select(g, classes)
		require.NoError(t, err, "round %d", round)

		// agreement with the reference
		want := referenceSelect(t, g, classes)
		for _, c := range selector.Priority() {
			require.Equal(t, want[c], res.Tier(c), "round %d tier %v", round, c)
		}

		// pairwise independence over the input graph
		acc := res.Accepted()
		for i := range acc {
			for j := i + 1; j < len(acc); j++ {
				require.False(t, g.HasEdge(acc[i], acc[j]), "round %d: %s-%s both accepted", round, acc[i], acc[j])
			}
		}

		// partition: every vertex exactly once, accepted or disqualified
		seen := make(map[string]int, propertyVertices)
		for _, id := range acc {
			seen[id]++
		}
		for _, d := range res.Disqualified {
			seen[d.ID]++
			// the eliminating vertex was accepted in a tier at least as high
			require.LessOrEqual(t, d.Tier, d.Class, "round %d: %s", round, d.ID)
			st, _ := res.State(d.By)
			require.Equal(t, selector.Accepted, st)
		}
		require.Len(t, seen, g.VertexCount(), "round %d", round)
		for id, n := range seen {
			require.Equal(t, 1, n, "round %d: %s", round, id)
		}

		// seeding: at every tier start, a pool member with no same-class
		// neighbour left in the graph is accepted in the seed pass
		removedIn := make(map[string]selector.Class, propertyVertices)
		for _, c := range selector.Priority() {
			for _, id := range res.Tier(c) {
				removedIn[id] = c
			}
		}
		for _, d := range res.Disqualified {
			removedIn[d.ID] = d.Tier
		}
		for _, c := range selector.Priority() {
			alive := func(id string) bool { return removedIn[id] >= c }
			seeds := 0
			for _, id := range g.Vertices() {
				if classes[id] != c || !alive(id) {
					continue
				}
				nbrs, err := g.NeighborIDs(id)
				require.NoError(t, err)
				isolated := true
				for _, nbr := range nbrs {
					if classes[nbr] == c && alive(nbr) {
						isolated = false
						break
					}
				}
				if isolated {
					seeds++
					st, _ := res.State(id)
					require.Equal(t, selector.Accepted, st, "round %d tier %v: seed %s", round, c, id)
				}
			}
			require.Equal(t, seeds, res.TierStats(c).Seeded, "round %d tier %v", round, c)
		}
	}
}
