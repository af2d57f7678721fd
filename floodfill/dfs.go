package floodfill

import (
	"github.com/katalvlaran/pathfill/colorgraph"
	"github.com/katalvlaran/pathfill/frontier"
)

// stackFrontier adapts frontier.Stack to the walker.
type stackFrontier struct{ s frontier.Stack[item] }

func (f *stackFrontier) put(it item)         { f.s.Push(it) }
func (f *stackFrontier) take() (item, error) { return f.s.Pop() }
func (f *stackFrontier) empty() bool         { return f.s.IsEmpty() }

// DFS recolors the seed's same-color region depth-first, recoloring each
// vertex as it is pushed. The graph is mutated in place.
// Returns core.ErrNilGraph or core.ErrInvalidVertex for invalid input.
func DFS(g *colorgraph.Graph, seed int, color colorgraph.Color, opts ...Option) error {
	return run(g, seed, color, &stackFrontier{}, opts)
}
