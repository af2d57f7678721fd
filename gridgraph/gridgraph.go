package gridgraph

import (
	"github.com/katalvlaran/pathfill/colorgraph"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes to rows do not leak in.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(rows [][]colorgraph.Color, opts GridOptions) (*GridGraph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]colorgraph.Color, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]colorgraph.Color, w)
		copy(cells[y], rows[y])
	}

	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		Cells:           cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// FromColors is NewGridGraph with only the connectivity set.
func FromColors(rows [][]colorgraph.Color, conn Connectivity) (*GridGraph, error) {
	return NewGridGraph(rows, GridOptions{Conn: conn})
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed (dx, dy) neighbor offsets.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// ToColorGraph converts the grid into a *colorgraph.Graph: cell (x,y) becomes
// vertex y*Width+x with coordinates (x,y) and the cell's color, and every
// pair of neighboring cells is joined by one undirected edge.
// ImageSize is the larger grid dimension.
// Complexity: O(W×H×d).
func (gg *GridGraph) ToColorGraph() (*colorgraph.Graph, error) {
	points := make([]colorgraph.Point, 0, gg.Width*gg.Height)
	var edges [][2]int
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			points = append(points, colorgraph.Point{X: x, Y: y, Color: gg.Cells[y][x]})
			u := gg.index(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				// each pair once, from its lower index
				if v := gg.index(nx, ny); v > u {
					edges = append(edges, [2]int{u, v})
				}
			}
		}
	}

	return colorgraph.New(max(gg.Width, gg.Height), points, edges)
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
