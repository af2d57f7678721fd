package probability

import (
	"fmt"

	"github.com/katalvlaran/pathfill/core"
	"github.com/katalvlaran/pathfill/frontier"
	"github.com/katalvlaran/pathfill/weighted"
)

// MaxProbability returns the maximum success probability of any path from
// start to end in g: 1 if start == end (edges are not examined), 0 if end is
// unreachable.
//
// Returns core.ErrNilGraph or core.ErrInvalidVertex for invalid input.
func MaxProbability(g *weighted.Graph, start, end int) (float64, error) {
	res, err := Search(g, start, end)
	if err != nil {
		return 0, err
	}

	return res.Probability, nil
}

// Search runs the best-first maximum-probability search from start to end,
// applying any number of functional Options.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (core.ErrNilGraph).
//  2. start and end must lie in [0, n) (core.ErrInvalidVertex).
//  3. options must be valid (ErrOptionViolation).
func Search(g *weighted.Graph, start, end int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	n := g.VertexCount()
	if err := core.CheckVertex(start, n); err != nil {
		return nil, fmt.Errorf("probability: start: %w", err)
	}
	if err := core.CheckVertex(end, n); err != nil {
		return nil, fmt.Errorf("probability: end: %w", err)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// Trivial path: no edge is looked at.
	if start == end {
		res := &Result{Probability: 1}
		if cfg.ReturnPath {
			res.Path = []int{start}
		}

		return res, nil
	}

	r := &runner{
		g:       g,
		options: cfg,
		start:   start,
		end:     end,
		best:    make([]float64, n),
		visited: make([]bool, n),
		pq:      frontier.NewMinHeap[float64, int](n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
		for i := range r.prev {
			r.prev[i] = -1
		}
	}
	r.init()

	return r.process()
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *weighted.Graph                 // read-only input
	options Options                         // validated configuration
	start   int                             // source vertex
	end     int                             // target vertex
	best    []float64                       // best known probability per vertex
	prev    []int                           // predecessor on the best path; nil unless ReturnPath
	visited []bool                          // finalized vertices
	pq      *frontier.MinHeap[float64, int] // (−probability, vertex) frontier
	expand  int                             // finalized count
}

// init seeds best[start] = 1 and pushes (−1, start).
func (r *runner) init() {
	r.best[r.start] = 1
	r.pq.Insert(-1, r.start)
}

// process extracts frontier entries until the target is popped or the heap
// runs dry.
func (r *runner) process() (*Result, error) {
	for !r.pq.IsEmpty() {
		item, err := r.pq.ExtractMin()
		if err != nil {
			return nil, fmt.Errorf("probability: %w", err)
		}
		u := item.Value

		// First pop of the target carries its optimum (weights are in [0,1]).
		if u == r.end {
			return r.result(-item.Key), nil
		}

		// Stale entry for an already finalized vertex.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.expand++

		if err = r.relax(u); err != nil {
			return nil, err
		}
	}

	return r.result(0), nil
}

// relax tries to improve every unfinalized neighbor of the finalized vertex u.
// An improvement updates best, records the predecessor, and pushes a new
// heap entry; the superseded entry stays behind and is skipped later.
func (r *runner) relax(u int) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("probability: neighbors of %d: %w", u, err)
	}

	var candidate float64
	for _, a := range arcs {
		if r.visited[a.To] {
			continue
		}
		candidate = r.best[u] * a.Weight
		if candidate <= r.best[a.To] || candidate < r.options.MinProbability {
			continue
		}
		r.best[a.To] = candidate
		if r.prev != nil {
			r.prev[a.To] = u
		}
		r.pq.Insert(-candidate, a.To)
	}

	return nil
}

// result assembles the Result for the final probability p.
func (r *runner) result(p float64) *Result {
	res := &Result{Probability: p, Expanded: r.expand}
	if r.prev == nil || p == 0 {
		return res
	}

	// walk predecessors back from end, then reverse
	path := []int{r.end}
	for cur := r.end; cur != r.start; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	res.Path = path

	return res
}
