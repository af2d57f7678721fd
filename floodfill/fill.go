package floodfill

import (
	"fmt"

	"github.com/katalvlaran/pathfill/colorgraph"
	"github.com/katalvlaran/pathfill/core"
)

// item pairs a vertex with its depth in the traversal tree.
type item struct {
	v     *colorgraph.Vertex
	depth int
}

// worklist is what BFS and DFS differ in: a queue or a stack of items.
type worklist interface {
	put(item)
	take() (item, error)
	empty() bool
}

// walker encapsulates the mutable state of one flood fill.
type walker struct {
	graph    *colorgraph.Graph
	opts     Options
	original colorgraph.Color // seed color before the fill
	color    colorgraph.Color // replacement color
	front    worklist
}

// Fill runs BFS or DFS according to mode.
func Fill(g *colorgraph.Graph, seed int, color colorgraph.Color, mode Mode, opts ...Option) error {
	switch mode {
	case ModeBFS:
		return BFS(g, seed, color, opts...)
	case ModeDFS:
		return DFS(g, seed, color, opts...)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
}

// run validates input, resets visitation state, seeds the frontier and
// drains it.
func run(g *colorgraph.Graph, seed int, color colorgraph.Color, front worklist, opts []Option) error {
	if g == nil {
		return core.ErrNilGraph
	}
	root, err := g.Vertex(seed)
	if err != nil {
		return fmt.Errorf("floodfill: seed: %w", err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g.ResetVisited()
	w := &walker{
		graph:    g,
		opts:     o,
		original: root.Color,
		color:    color,
		front:    front,
	}
	w.discover(root, 0)

	return w.loop()
}

// discover marks v visited, recolors it, reports it and puts it on the frontier.
func (w *walker) discover(v *colorgraph.Vertex, depth int) {
	v.Visited = true
	v.Recolor(w.color)
	w.opts.OnRecolor(v, depth)
	w.front.put(item{v: v, depth: depth})
}

// loop takes items off the frontier until it is empty.
func (w *walker) loop() error {
	for !w.front.empty() {
		it, err := w.front.take()
		if err != nil {
			return fmt.Errorf("floodfill: %w", err)
		}
		if err = w.discoverNeighbors(it); err != nil {
			return err
		}
	}

	return nil
}

// discoverNeighbors discovers every unvisited neighbor of it.v that still
// holds the original color.
func (w *walker) discoverNeighbors(it item) error {
	for _, id := range it.v.Neighbors() {
		nbr, err := w.graph.Vertex(id)
		if err != nil {
			return fmt.Errorf("floodfill: neighbor of %d: %w", it.v.Index, err)
		}
		if nbr.Visited || nbr.Color != w.original {
			continue
		}
		w.discover(nbr, it.depth+1)
	}

	return nil
}
