// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Relatedness graph construction from a population and a kinship table.
package kinship

import (
	"fmt"
	"math"

	"github.com/katalvlaran/unrelated/core"
)

// ThresholdFromPiHat converts a PI_HAT cut-off into a kinship cut-off.
// PI_HAT is twice the kinship coefficient.
func ThresholdFromPiHat(pihat float64) float64 {
	return pihat / 2
}

// Build keeps the pairs whose endpoints are both in population and whose
// kinship is at least threshold, and turns them into a relatedness graph.
//
// Implementation:
//   - Stage 1: Validate options, threshold and population IDs; collapse repeats.
//   - Stage 2: Filter pairs: outside population, then below threshold, then self pairs.
//   - Stage 3: Register related individuals in population order and add edges.
//   - Stage 4: Everyone else in the population is strictly unrelated.
//
// Pairs outside the population and pairs below threshold are dropped and
// counted, never reported as errors. A self pair that survives filtering is
// ErrSelfPair. When nothing is retained the graph is empty and the strictly
// unrelated list equals the population.
//
// Complexity: O(P + K) for P population members and K pairs.
func Build(population []string, pairs []Pair, threshold float64, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold < 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadThreshold, threshold)
	}

	pos := make(map[string]int, len(population))
	members := make([]string, 0, len(population))
	for _, id := range population {
		if id == "" {
			return nil, fmt.Errorf("%w: population entry %d", ErrEmptyID, len(members))
		}
		if _, seen := pos[id]; seen {
			continue
		}
		pos[id] = len(members)
		members = append(members, id)
	}

	res := &Result{Population: members, Threshold: threshold}
	related := make([]bool, len(members))
	for i, p := range pairs {
		res.Stats.PairsRead++
		if p.ID1 == "" || p.ID2 == "" {
			return nil, fmt.Errorf("%w: pair %d", ErrEmptyID, i)
		}
		i1, ok1 := pos[p.ID1]
		i2, ok2 := pos[p.ID2]
		if !ok1 || !ok2 {
			res.Stats.DroppedOutside++
			continue
		}
		// NaN fails this comparison as well
		if !(p.Kinship >= threshold) {
			res.Stats.DroppedBelow++
			continue
		}
		if p.ID1 == p.ID2 {
			return nil, fmt.Errorf("%w: %q kinship %v", ErrSelfPair, p.ID1, p.Kinship)
		}
		related[i1], related[i2] = true, true
		res.Retained = append(res.Retained, p)
		o.onRetain(p)
	}

	capacity := o.capacity
	if capacity == 0 {
		capacity = 2 * len(res.Retained)
	}
	g, err := core.NewGraphE(core.WithCapacity(capacity))
	if err != nil {
		return nil, err
	}
	for i, id := range members {
		if related[i] {
			if err := g.AddVertex(id); err != nil {
				return nil, err
			}
			continue
		}
		res.StrictlyUnrelated = append(res.StrictlyUnrelated, id)
	}
	for _, p := range res.Retained {
		added, err := g.AddEdge(p.ID1, p.ID2)
		if err != nil {
			return nil, err
		}
		if !added {
			res.Stats.Duplicates++
		}
	}
	res.Graph = g

	return res, nil
}
