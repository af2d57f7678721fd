package floodfill_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfill/colorgraph"
	"github.com/katalvlaran/pathfill/core"
	"github.com/katalvlaran/pathfill/floodfill"
)

// grid builds a w×h 4-connected graph; colors are given row-major.
func grid(t testing.TB, w, h int, colors ...colorgraph.Color) *colorgraph.Graph {
	t.Helper()
	require.Len(t, colors, w*h)
	pts := make([]colorgraph.Point, 0, w*h)
	var edges [][2]int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			pts = append(pts, colorgraph.Point{X: x, Y: y, Color: colors[i]})
			if x+1 < w {
				edges = append(edges, [2]int{i, i + 1})
			}
			if y+1 < h {
				edges = append(edges, [2]int{i, i + w})
			}
		}
	}
	g, err := colorgraph.New(max(w, h), pts, edges)
	require.NoError(t, err)

	return g
}

func repeat(c colorgraph.Color, n int) []colorgraph.Color {
	out := make([]colorgraph.Color, n)
	for i := range out {
		out[i] = c
	}

	return out
}

type fillFunc func(*colorgraph.Graph, int, colorgraph.Color, ...floodfill.Option) error

var variants = map[string]fillFunc{
	"BFS": floodfill.BFS,
	"DFS": floodfill.DFS,
}

// ------------------------------------------------------------------------
// Validation
// ------------------------------------------------------------------------

func TestFill_Errors(t *testing.T) {
	g := grid(t, 2, 1, "a", "a")
	for name, fill := range variants {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, fill(nil, 0, "b"), core.ErrNilGraph)
			assert.ErrorIs(t, fill(g, 2, "b"), core.ErrInvalidVertex)
			assert.ErrorIs(t, fill(g, -1, "b"), core.ErrInvalidVertex)
			assert.Equal(t, []colorgraph.Color{"a", "a"}, g.Colors(), "failed call must not mutate")
		})
	}
	assert.ErrorIs(t, floodfill.Fill(g, 0, "b", floodfill.Mode(9)), floodfill.ErrUnknownMode)
}

func TestParseMode(t *testing.T) {
	m, err := floodfill.ParseMode("dfs")
	require.NoError(t, err)
	assert.Equal(t, floodfill.ModeDFS, m)
	assert.Equal(t, "dfs", m.String())
	assert.Equal(t, "bfs", floodfill.ModeBFS.String())

	m, err = floodfill.ParseMode("BFS")
	require.NoError(t, err)
	assert.Equal(t, floodfill.ModeBFS, m)

	_, err = floodfill.ParseMode("dijkstra")
	assert.ErrorIs(t, err, floodfill.ErrUnknownMode)
}

// ------------------------------------------------------------------------
// Behavior
// ------------------------------------------------------------------------

// TestFill_Grid3x3FromCenter recolors all nine vertices of a uniform grid.
func TestFill_Grid3x3FromCenter(t *testing.T) {
	for name, fill := range variants {
		t.Run(name, func(t *testing.T) {
			g := grid(t, 3, 3, repeat("white", 9)...)
			require.NoError(t, fill(g, 4, "red"))
			assert.Equal(t, repeat("red", 9), g.Colors())
			for _, v := range g.Vertices() {
				assert.Equal(t, colorgraph.Color("white"), v.PrevColor)
				assert.True(t, v.Visited)
			}
		})
	}
}

// TestBFS_LevelOrder checks that BFS reports depths in non-decreasing order
// and that depths equal grid distance from the seed.
func TestBFS_LevelOrder(t *testing.T) {
	g := grid(t, 3, 3, repeat("white", 9)...)
	var depths []int
	err := floodfill.BFS(g, 4, "red", floodfill.WithOnRecolor(func(v *colorgraph.Vertex, d int) {
		assert.Equal(t, abs(v.X-1)+abs(v.Y-1), d, "vertex %d", v.Index)
		depths = append(depths, d)
	}))
	require.NoError(t, err)
	assert.Len(t, depths, 9)
	assert.True(t, sort.IntsAreSorted(depths), "BFS depths %v", depths)
}

// TestDFS_StackOrderDiffersFromQueue uses a star-of-paths where LIFO and FIFO
// orders diverge.
//
//	1 – 0 – 2
//	|       |
//	3       4
func TestDFS_StackOrderDiffersFromQueue(t *testing.T) {
	build := func() *colorgraph.Graph {
		g, err := colorgraph.New(5, make([]colorgraph.Point, 5), [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 4}})
		require.NoError(t, err)
		return g
	}
	var dfsOrder, bfsOrder []int
	require.NoError(t, floodfill.DFS(build(), 0, "x", floodfill.WithOnRecolor(func(v *colorgraph.Vertex, _ int) {
		dfsOrder = append(dfsOrder, v.Index)
	})))
	require.NoError(t, floodfill.BFS(build(), 0, "x", floodfill.WithOnRecolor(func(v *colorgraph.Vertex, _ int) {
		bfsOrder = append(bfsOrder, v.Index)
	})))

	assert.Equal(t, []int{0, 1, 2, 3, 4}, bfsOrder)
	assert.Equal(t, []int{0, 1, 2, 4, 3}, dfsOrder, "stack pops 2 before 1")
}

// TestFill_StopsAtOtherColors: the blue wall splits the red region; the far
// red vertices and the wall stay untouched.
//
//	r r b r
//	r r b r
func TestFill_StopsAtOtherColors(t *testing.T) {
	for name, fill := range variants {
		t.Run(name, func(t *testing.T) {
			g := grid(t, 4, 2, "r", "r", "b", "r", "r", "r", "b", "r")
			require.NoError(t, fill(g, 0, "g"))
			assert.Equal(t, []colorgraph.Color{"g", "g", "b", "r", "g", "g", "b", "r"}, g.Colors())

			wall, _ := g.Vertex(2)
			assert.Equal(t, colorgraph.Color("b"), wall.PrevColor, "untouched vertex keeps its history")
			assert.False(t, wall.Visited)
		})
	}
}

func TestFill_SingleVertexCases(t *testing.T) {
	for name, fill := range variants {
		t.Run(name+"/no edges", func(t *testing.T) {
			g, err := colorgraph.New(1, []colorgraph.Point{{Color: "a"}, {Color: "a"}}, nil)
			require.NoError(t, err)
			require.NoError(t, fill(g, 1, "b"))
			assert.Equal(t, []colorgraph.Color{"a", "b"}, g.Colors())
		})
		t.Run(name+"/no matching neighbor", func(t *testing.T) {
			g := grid(t, 3, 1, "x", "a", "x")
			require.NoError(t, fill(g, 1, "b"))
			assert.Equal(t, []colorgraph.Color{"x", "b", "x"}, g.Colors())
		})
		t.Run(name+"/self loop", func(t *testing.T) {
			g, err := colorgraph.New(1, []colorgraph.Point{{Color: "a"}}, [][2]int{{0, 0}})
			require.NoError(t, err)
			require.NoError(t, fill(g, 0, "b"))
			assert.Equal(t, []colorgraph.Color{"b"}, g.Colors())
		})
	}
}

// TestFill_SameColorIsIdempotent recolors a region into its own color.
func TestFill_SameColorIsIdempotent(t *testing.T) {
	g := grid(t, 2, 2, "a", "a", "b", "a")
	calls := 0
	require.NoError(t, floodfill.BFS(g, 0, "a", floodfill.WithOnRecolor(func(*colorgraph.Vertex, int) { calls++ })))
	assert.Equal(t, []colorgraph.Color{"a", "a", "b", "a"}, g.Colors())
	assert.Equal(t, 3, calls, "each region vertex exactly once")
}

// TestFill_ResetsVisitedBetweenRuns: a second fill on the same graph must
// not be blocked by flags left over from the first.
func TestFill_ResetsVisitedBetweenRuns(t *testing.T) {
	g := grid(t, 3, 1, "a", "a", "a")
	require.NoError(t, floodfill.BFS(g, 0, "b"))
	require.NoError(t, floodfill.DFS(g, 2, "c"))
	assert.Equal(t, []colorgraph.Color{"c", "c", "c"}, g.Colors())
	for _, v := range g.Vertices() {
		assert.Equal(t, colorgraph.Color("b"), v.PrevColor)
	}

	// a stale Visited flag set by hand is cleared too
	v0, _ := g.Vertex(0)
	v0.Visited = true
	require.NoError(t, floodfill.BFS(g, 2, "d"))
	assert.Equal(t, []colorgraph.Color{"d", "d", "d"}, g.Colors())
}

// ------------------------------------------------------------------------
// Properties
// ------------------------------------------------------------------------

// component collects the same-color component of seed independently of
// floodfill, with a plain recursive walk.
func component(g *colorgraph.Graph, seed int) map[int]bool {
	root, _ := g.Vertex(seed)
	want := root.Color
	seen := map[int]bool{}
	var walk func(i int)
	walk = func(i int) {
		seen[i] = true
		ids, _ := g.NeighborIDs(i)
		for _, j := range ids {
			v, _ := g.Vertex(j)
			if !seen[j] && v.Color == want {
				walk(j)
			}
		}
	}
	walk(seed)

	return seen
}

func randomColorGraph(rng *rand.Rand, n int) ([]colorgraph.Point, [][2]int) {
	palette := []colorgraph.Color{"r", "g", "b"}
	pts := make([]colorgraph.Point, n)
	for i := range pts {
		pts[i] = colorgraph.Point{X: i % 8, Y: i / 8, Color: palette[rng.Intn(2)]}
	}
	var edges [][2]int
	for i := 0; i < 2*n; i++ {
		edges = append(edges, [2]int{rng.Intn(n), rng.Intn(n)})
	}

	return pts, edges
}

// TestFill_BFSAndDFSRecolorSameSet: both variants recolor exactly the
// same-original-color component of the seed, and every recolored vertex
// remembers its previous color.
func TestFill_BFSAndDFSRecolorSameSet(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(40)
		pts, edges := randomColorGraph(rng, n)
		seed := rng.Intn(n)

		gB, err := colorgraph.New(8, pts, edges)
		require.NoError(t, err)
		gD, err := colorgraph.New(8, pts, edges)
		require.NoError(t, err)
		want := component(gB, seed)

		recolored := func(g *colorgraph.Graph, fill fillFunc) map[int]bool {
			got := map[int]bool{}
			require.NoError(t, fill(g, seed, "b", floodfill.WithOnRecolor(func(v *colorgraph.Vertex, _ int) {
				assert.False(t, got[v.Index], "vertex %d recolored twice", v.Index)
				got[v.Index] = true
			})))
			return got
		}
		assert.Equal(t, want, recolored(gB, floodfill.BFS), "trial %d BFS", trial)
		assert.Equal(t, want, recolored(gD, floodfill.DFS), "trial %d DFS", trial)
		assert.Equal(t, gB.Colors(), gD.Colors())

		for i, p := range pts {
			v, _ := gB.Vertex(i)
			if want[i] {
				assert.Equal(t, colorgraph.Color("b"), v.Color)
				assert.Equal(t, p.Color, v.PrevColor)
			} else {
				assert.Equal(t, p.Color, v.Color)
			}
		}
	}
}

func TestFill_StructureUnchanged(t *testing.T) {
	g := grid(t, 3, 3, "a", "b", "a", "a", "a", "b", "b", "a", "a")
	before, err := g.AdjacencyMatrix()
	require.NoError(t, err)
	coords := make([][2]int, 0, 9)
	for _, v := range g.Vertices() {
		coords = append(coords, [2]int{v.X, v.Y})
	}

	require.NoError(t, floodfill.DFS(g, 0, "z"))

	after, err := g.AdjacencyMatrix()
	require.NoError(t, err)
	assert.Equal(t, before, after)
	for i, v := range g.Vertices() {
		assert.Equal(t, coords[i], [2]int{v.X, v.Y})
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
