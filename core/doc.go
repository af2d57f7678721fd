// Package core holds what the two graph models of pathfill share:
// the index-addressed read view (Indexed) and the sentinel errors of the
// graph taxonomy.
//
// Vertices in every pathfill graph are dense indices 0..n-1 fixed at
// construction time. Graphs are never structurally mutated afterwards.
//
// Errors:
//
//	ErrNilGraph      – a nil graph was passed to an operation.
//	ErrInvalidVertex – a vertex index outside [0, n), or a negative n.
//	ErrMalformedEdge – an edge with an out-of-range endpoint or a weight
//	                   outside [0, 1], detected while building a graph.
//
// All three are deterministic contract violations; nothing in pathfill
// retries them. Use errors.Is to match them through wrapping.
package core
