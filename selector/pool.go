// SPDX-License-Identifier: MIT
//
// File: pool.go
// Role: Indexed min-heap over the active tier's candidate pool.
package selector

// vertex is the per-run record of one graph vertex.
type vertex struct {
	id     string
	order  int // registration index; final tie-break
	class  Class
	state  State
	degree int // edges in the current graph
	score  int // edges to members of the active pool
	inPool bool
	index  int // position in the heap, -1 when absent
}

// pool implements heap.Interface ordered by (score, degree, order).
type pool []*vertex

func (p pool) Len() int { return len(p) }

func (p pool) Less(i, j int) bool {
	a, b := p[i], p[j]
	if a.score != b.score {
		return a.score < b.score
	}
	if a.degree != b.degree {
		return a.degree < b.degree
	}
	return a.order < b.order
}

func (p pool) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
	p[i].index = i
	p[j].index = j
}

// Push adds x (must be *vertex) at the end.
func (p *pool) Push(x interface{}) {
	v := x.(*vertex)
	v.index = len(*p)
	*p = append(*p, v)
}

// Pop removes and returns the last element.
func (p *pool) Pop() interface{} {
	old := *p
	n := len(old)
	v := old[n-1]
	old[n-1] = nil
	v.index = -1
	*p = old[:n-1]

	return v
}
