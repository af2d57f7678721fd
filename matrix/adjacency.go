package matrix

import (
	"fmt"

	"github.com/katalvlaran/pathfill/core"
)

// Adjacency builds the n×n 0/1 adjacency matrix of g.
// Returns core.ErrNilGraph if g is nil, or any error from g.NeighborIDs.
func Adjacency(g core.Indexed) ([][]int, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	n := g.VertexCount()

	// one backing array, n row views
	cells := make([]int, n*n)
	m := make([][]int, n)
	for i := range m {
		m[i] = cells[i*n : (i+1)*n : (i+1)*n]
	}

	for u := 0; u < n; u++ {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("matrix: neighbors of %d: %w", u, err)
		}
		for _, v := range nbrs {
			if err = core.CheckVertex(v, n); err != nil {
				return nil, fmt.Errorf("matrix: neighbor of %d: %w", u, err)
			}
			m[u][v] = 1
		}
	}

	return m, nil
}

// IsSymmetric reports whether m is square and m[i][j] == m[j][i] for all i, j.
// Every undirected pathfill graph yields a symmetric matrix.
func IsSymmetric(m [][]int) bool {
	for i := range m {
		if len(m[i]) != len(m) {
			return false
		}
		for j := 0; j < i; j++ {
			if m[i][j] != m[j][i] {
				return false
			}
		}
	}

	return true
}
