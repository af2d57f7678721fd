package colorgraph

// Color is a vertex color label, e.g. "red" or "#00ff00".
type Color string

// Point describes one vertex for New: its grid coordinates and initial color.
type Point struct {
	X     int
	Y     int
	Color Color
}

// Vertex is one vertex of a Graph.
type Vertex struct {
	// Index is the stable identity of the vertex, its position in the graph.
	Index int

	// X and Y are grid coordinates, used only for rendering.
	X, Y int

	// Color is the current label.
	Color Color

	// PrevColor is the color held immediately before the most recent
	// Recolor. It equals Color until the first recolor.
	PrevColor Color

	// Visited is traversal scratch state; cleared by Graph.ResetVisited.
	Visited bool

	neighbors []int
}

// Graph owns a vertex set addressed by index.
type Graph struct {
	// ImageSize bounds the coordinate range for rendering only.
	ImageSize int

	vertices []*Vertex
}
