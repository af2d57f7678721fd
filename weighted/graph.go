package weighted

import (
	"fmt"

	"github.com/katalvlaran/pathfill/core"
	"github.com/katalvlaran/pathfill/matrix"
)

// New builds a Graph with n vertices from edges.
// Each edge is appended to both endpoints' adjacency lists; a self-loop is
// stored once. Parallel edges are kept as given.
// Returns core.ErrInvalidVertex for n < 0 and core.ErrMalformedEdge for the
// first edge that references a vertex outside [0, n) or carries a weight
// outside [0, 1].
func New(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: vertex count %d is negative", core.ErrInvalidVertex, n)
	}
	for i, e := range edges {
		if err := validateEdge(n, e); err != nil {
			return nil, fmt.Errorf("weighted: edge %d: %w", i, err)
		}
	}

	g := &Graph{
		n:     n,
		adj:   make([][]Arc, n),
		edges: make([]Edge, len(edges)),
	}
	copy(g.edges, edges)
	for _, e := range edges {
		g.adj[e.From] = append(g.adj[e.From], Arc{To: e.To, Weight: e.Weight})
		if e.From != e.To {
			g.adj[e.To] = append(g.adj[e.To], Arc{To: e.From, Weight: e.Weight})
		}
	}

	return g, nil
}

// FromPairs builds a Graph from endpoint pairs and a parallel slice of
// probabilities, probs[i] being the weight of pairs[i].
func FromPairs(n int, pairs [][2]int, probs []float64) (*Graph, error) {
	if len(pairs) != len(probs) {
		return nil, fmt.Errorf("%w: %d pairs but %d probabilities", core.ErrMalformedEdge, len(pairs), len(probs))
	}
	edges := make([]Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = Edge{From: p[0], To: p[1], Weight: probs[i]}
	}

	return New(n, edges)
}

// validateEdge checks endpoints against n and the weight against [0, 1].
// The negated range test also rejects NaN.
func validateEdge(n int, e Edge) error {
	if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
		return fmt.Errorf("%w: endpoints (%d,%d) not in [0,%d)", core.ErrMalformedEdge, e.From, e.To, n)
	}
	if !(e.Weight >= 0 && e.Weight <= 1) {
		return fmt.Errorf("%w: weight %v of (%d,%d) not in [0,1]", core.ErrMalformedEdge, e.Weight, e.From, e.To)
	}

	return nil
}

// VertexCount returns the number of vertices n.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of undirected edges given at construction.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the edges in construction order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns a copy of v's adjacency list.
// Returns core.ErrInvalidVertex if v is outside [0, n).
func (g *Graph) Neighbors(v int) ([]Arc, error) {
	if err := core.CheckVertex(v, g.n); err != nil {
		return nil, err
	}
	out := make([]Arc, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// NeighborIDs returns the neighbor indices of v, implementing core.Indexed.
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	if err := core.CheckVertex(v, g.n); err != nil {
		return nil, err
	}
	ids := make([]int, len(g.adj[v]))
	for i, a := range g.adj[v] {
		ids[i] = a.To
	}

	return ids, nil
}

// AdjacencyMatrix returns the n×n 0/1 adjacency matrix of g.
func (g *Graph) AdjacencyMatrix() ([][]int, error) {
	return matrix.Adjacency(g)
}
