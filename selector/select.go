// SPDX-License-Identifier: MIT
//
// File: select.go
// Role: Priority greedy selection over a relatedness graph.
package selector

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/unrelated/core"
)

// Select picks a set of pairwise unrelated vertices from g, favouring Case
// over Control over Unknown.
//
// Each tier, in Priority order, starts from the vertices of that class still
// in the graph (in registration order) and runs two passes:
//   - Seed pass: members with no edge to another pool member are accepted.
//   - Competitive pass: repeatedly accept the member with the lowest
//     (ConflictScore, Degree, registration order).
//
// Accepting a vertex disqualifies all of its current neighbours, whatever
// their class, and removes them and the accepted vertex from the graph. No two
// accepted vertices are therefore adjacent in g.
//
// Errors:
//   - ErrGraphNil, ErrUnclassified, ErrBadClass.
//   - ErrInvalidGraph wrapping core.ErrLoopNotAllowed, core.ErrAsymmetric or
//     core.ErrVertexNotFound when g fails Validate.
//
// g is left untouched unless WithInPlace is given.
//
// Complexity: O((V + E)·log V).
func Select(g *core.Graph, classes map[string]Class, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}

	work := g
	if !o.inPlace {
		work = g.Clone()
	}
	r, err := newRunner(work, classes, o)
	if err != nil {
		return nil, err
	}
	for _, c := range priority {
		if err = r.runTier(c); err != nil {
			return nil, err
		}
	}

	return r.res, nil
}

// runner holds the mutable state of one selection run.
type runner struct {
	g        *core.Graph
	opts     options
	vertices map[string]*vertex
	pq       pool
	tier     Class
	res      *Result
}

// newRunner checks the classification and records every vertex.
func newRunner(g *core.Graph, classes map[string]Class, o options) (*runner, error) {
	ids := g.Vertices()
	r := &runner{
		g:        g,
		opts:     o,
		vertices: make(map[string]*vertex, len(ids)),
		res:      &Result{states: make(map[string]State, len(ids))},
	}
	for _, id := range ids {
		c, ok := classes[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnclassified, id)
		}
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %q has %v", ErrBadClass, id, c)
		}
		order, _ := g.Order(id)
		degree, err := g.Degree(id)
		if err != nil {
			return nil, err
		}
		r.vertices[id] = &vertex{id: id, order: order, class: c, degree: degree, index: -1}
		r.res.states[id] = Eligible
	}

	return r, nil
}

// runTier processes one priority tier: build the pool, seed, then compete.
func (r *runner) runTier(c Class) error {
	r.tier = c
	st := &r.res.stats[c]

	var members []*vertex
	for _, id := range r.g.Vertices() {
		if v := r.vertices[id]; v.class == c {
			v.inPool = true
			members = append(members, v)
		}
	}
	st.PoolSize = len(members)
	for _, v := range members {
		nbrs, err := r.g.NeighborIDs(v.id)
		if err != nil {
			return err
		}
		for _, nbr := range nbrs {
			if r.vertices[nbr].inPool {
				v.score++
			}
		}
	}

	// Seeds have no pool neighbours, so seeding never changes another member's score.
	for _, v := range members {
		if v.inPool && v.score == 0 {
			if err := r.accept(v, true); err != nil {
				return err
			}
			st.Seeded++
		}
	}

	r.pq = make(pool, 0, len(members)-st.Seeded)
	for _, v := range members {
		if v.inPool {
			heap.Push(&r.pq, v)
		}
	}
	for r.pq.Len() > 0 {
		k := heap.Pop(&r.pq).(*vertex)
		if err := r.accept(k, false); err != nil {
			return err
		}
		st.Competitive++
	}

	return nil
}

// accept disqualifies every current neighbour of v, then removes v itself.
func (r *runner) accept(v *vertex, seeded bool) error {
	nbrs, err := r.g.NeighborIDs(v.id)
	if err != nil {
		return err
	}
	v.inPool = false
	for _, id := range nbrs {
		if err = r.disqualify(r.vertices[id], v.id); err != nil {
			return err
		}
	}
	if err = r.g.RemoveVertex(v.id); err != nil {
		return err
	}
	v.state = Accepted
	r.res.states[v.id] = Accepted
	r.res.tiers[r.tier] = append(r.res.tiers[r.tier], v.id)
	r.opts.onAccept(v.id, v.class, seeded)

	return nil
}

// disqualify removes y from the graph and from the pool, updating the
// counters of its remaining neighbours.
func (r *runner) disqualify(y *vertex, by string) error {
	wasPool := y.inPool
	if wasPool {
		y.inPool = false
		if y.index >= 0 {
			heap.Remove(&r.pq, y.index)
		}
		r.res.stats[r.tier].SameTier++
	} else {
		r.res.stats[r.tier].CrossTier++
	}

	nbrs, err := r.g.NeighborIDs(y.id)
	if err != nil {
		return err
	}
	for _, id := range nbrs {
		z := r.vertices[id]
		if z.id == by {
			continue
		}
		z.degree--
		if wasPool && z.inPool {
			z.score--
		}
		if z.index >= 0 {
			heap.Fix(&r.pq, z.index)
		}
	}
	if err = r.g.RemoveVertex(y.id); err != nil {
		return err
	}

	y.state = Disqualified
	r.res.states[y.id] = Disqualified
	r.res.Disqualified = append(r.res.Disqualified, Disqualification{ID: y.id, Class: y.class, By: by, Tier: r.tier})
	r.opts.onDisqualify(y.id, y.class, by)

	return nil
}
