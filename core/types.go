package core

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the graph models and the algorithms on them.
var (
	// ErrNilGraph indicates a nil graph pointer.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrInvalidVertex indicates a vertex index outside [0, n).
	ErrInvalidVertex = errors.New("core: invalid vertex index")

	// ErrMalformedEdge indicates an edge that cannot belong to the graph
	// being built: an endpoint out of range or a weight outside [0, 1].
	ErrMalformedEdge = errors.New("core: malformed edge")
)

// Indexed is the read-only adjacency view implemented by every pathfill graph.
// Vertex IDs are the indices 0..VertexCount()-1.
type Indexed interface {
	// VertexCount returns n, the number of vertices.
	VertexCount() int

	// NeighborIDs returns the neighbor indices of v in insertion order.
	// Returns ErrInvalidVertex if v is outside [0, n).
	NeighborIDs(v int) ([]int, error)
}

// CheckVertex returns nil when v lies in [0, n), otherwise ErrInvalidVertex
// wrapped with the offending index.
func CheckVertex(v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidVertex, v, n)
	}

	return nil
}
