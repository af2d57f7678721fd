package floodfill

import (
	"github.com/katalvlaran/pathfill/colorgraph"
	"github.com/katalvlaran/pathfill/frontier"
)

// queueFrontier adapts frontier.Queue to the walker.
type queueFrontier struct{ q frontier.Queue[item] }

func (f *queueFrontier) put(it item)         { f.q.Enqueue(it) }
func (f *queueFrontier) take() (item, error) { return f.q.Dequeue() }
func (f *queueFrontier) empty() bool         { return f.q.IsEmpty() }

// BFS recolors the seed's same-color region breadth-first, recoloring each
// vertex as it is enqueued. The graph is mutated in place.
// Returns core.ErrNilGraph or core.ErrInvalidVertex for invalid input.
func BFS(g *colorgraph.Graph, seed int, color colorgraph.Color, opts ...Option) error {
	return run(g, seed, color, &queueFrontier{}, opts)
}
