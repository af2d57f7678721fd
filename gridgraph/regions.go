package gridgraph

import (
	"github.com/katalvlaran/pathfill/frontier"
)

// Regions finds every maximal region of equally colored cells under gg.Conn.
// Regions are ordered by their first cell in row-major order; cells within a
// region are listed in BFS order from that first cell.
//
// To convert an index back to (x,y), use Coordinate.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) Regions() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var regions [][]int
	var queue frontier.Queue[int]

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			color := gg.Cells[y][x]
			seen[i0] = true
			queue.Enqueue(i0)
			var region []int

			for !queue.IsEmpty() {
				u, _ := queue.Dequeue()
				region = append(region, u)
				ux, uy := gg.Coordinate(u)
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.InBounds(vx, vy) || gg.Cells[vy][vx] != color {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue.Enqueue(vi)
					}
				}
			}
			regions = append(regions, region)
		}
	}

	return regions
}
