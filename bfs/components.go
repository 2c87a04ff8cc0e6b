package bfs

import "github.com/katalvlaran/unrelated/core"

// Components partitions g into connected kin groups, one BFS per group.
//
// Groups are ordered by their root's registration order. Isolated vertices
// form singleton groups with Span 0. A nil graph yields ErrGraphNil.
//
// Complexity: O(V + E·log d) over all groups.
func Components(g *core.Graph) ([]KinGroup, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.VertexCount())
	var groups []KinGroup
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		for _, m := range res.Order {
			seen[m] = true
		}
		far, span := res.Farthest()
		chain, err := res.PathTo(far)
		if err != nil {
			return nil, err
		}
		groups = append(groups, KinGroup{Root: id, Members: res.Order, Span: span, Chain: chain})
	}

	return groups, nil
}

// LargestComponent returns the size of the biggest kin group, 0 for none.
func LargestComponent(groups []KinGroup) int {
	best := 0
	for _, grp := range groups {
		if len(grp.Members) > best {
			best = len(grp.Members)
		}
	}

	return best
}

// WidestComponent returns the group with the greatest Span, the first one on
// ties. ok is false when groups is empty.
func WidestComponent(groups []KinGroup) (widest KinGroup, ok bool) {
	for i, grp := range groups {
		if i == 0 || grp.Span > widest.Span {
			widest = grp
		}
	}

	return widest, len(groups) > 0
}
