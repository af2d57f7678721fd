package colorgraph

import (
	"fmt"

	"github.com/katalvlaran/pathfill/core"
	"github.com/katalvlaran/pathfill/matrix"
)

// New builds a Graph whose vertex i is points[i]. Each edge (u, v) is
// appended to both endpoints' adjacency lists; a self-loop is stored once.
// Returns core.ErrMalformedEdge for the first edge with an endpoint outside
// [0, len(points)).
func New(imageSize int, points []Point, edges [][2]int) (*Graph, error) {
	n := len(points)
	for i, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, fmt.Errorf("colorgraph: edge %d: %w: endpoints (%d,%d) not in [0,%d)",
				i, core.ErrMalformedEdge, e[0], e[1], n)
		}
	}

	g := &Graph{
		ImageSize: imageSize,
		vertices:  make([]*Vertex, n),
	}
	for i, p := range points {
		g.vertices[i] = &Vertex{
			Index:     i,
			X:         p.X,
			Y:         p.Y,
			Color:     p.Color,
			PrevColor: p.Color,
		}
	}
	for _, e := range edges {
		u, v := g.vertices[e[0]], g.vertices[e[1]]
		u.neighbors = append(u.neighbors, v.Index)
		if u != v {
			v.neighbors = append(v.neighbors, u.Index)
		}
	}

	return g, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Vertex returns the live vertex at index i.
func (g *Graph) Vertex(i int) (*Vertex, error) {
	if err := core.CheckVertex(i, len(g.vertices)); err != nil {
		return nil, err
	}

	return g.vertices[i], nil
}

// Vertices returns the live vertices in index order.
// The slice is a copy; the vertices are not.
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// NeighborIDs returns the neighbor indices of vertex i, implementing core.Indexed.
func (g *Graph) NeighborIDs(i int) ([]int, error) {
	v, err := g.Vertex(i)
	if err != nil {
		return nil, err
	}

	return v.Neighbors(), nil
}

// ResetVisited clears the Visited flag of every vertex. O(V).
func (g *Graph) ResetVisited() {
	for _, v := range g.vertices {
		v.Visited = false
	}
}

// Colors returns the current color of every vertex in index order.
func (g *Graph) Colors() []Color {
	out := make([]Color, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.Color
	}

	return out
}

// AdjacencyMatrix returns the n×n 0/1 adjacency matrix of g.
func (g *Graph) AdjacencyMatrix() ([][]int, error) {
	return matrix.Adjacency(g)
}

// Neighbors returns a copy of the vertex's neighbor indices.
func (v *Vertex) Neighbors() []int {
	out := make([]int, len(v.neighbors))
	copy(out, v.neighbors)

	return out
}

// Degree returns the length of the vertex's adjacency list.
func (v *Vertex) Degree() int { return len(v.neighbors) }

// Recolor saves the current color into PrevColor and sets Color to c.
func (v *Vertex) Recolor(c Color) {
	v.PrevColor = v.Color
	v.Color = c
}
