package bfs

import (
	"fmt"

	"github.com/gammazero/deque"

	"github.com/katalvlaran/unrelated/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	queue   *deque.Deque[queueItem]
	visited map[string]bool
	res     *BFSResult
}

// BFS walks g breadth-first from startID and records the hop distance and
// parent of every sample it reaches. Neighbours are taken in registration
// order, so the result is reproducible.
// Returns ErrGraphNil, ErrStartVertexNotFound or ErrNeighbors.
func BFS(g *core.Graph, startID string) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	w := &walker{
		graph:   g,
		queue:   deque.New[queueItem](),
		visited: make(map[string]bool),
		res: &BFSResult{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
	w.enqueue(startID, 0, "")
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue.PushBack(queueItem{id: id, depth: d})
}

// loop drains the queue.
func (w *walker) loop() error {
	for w.queue.Len() > 0 {
		item := w.queue.PopFront()
		w.res.Order = append(w.res.Order, item.id)
		neighbors, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
		}
		for _, nbr := range neighbors {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.depth+1, item.id)
			}
		}
	}

	return nil
}
