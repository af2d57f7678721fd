// Package weighted implements the undirected, weighted graph model used by
// the probability package.
//
// A Graph has n vertices indexed 0..n-1 and adjacency lists of Arcs
// (neighbor index, weight). Every weight lies in [0, 1] and is read as the
// independent success probability of traversing that edge. Each edge is
// mirrored into both endpoints' lists at construction, so the adjacency is
// symmetric by design of New. A Graph is immutable once built and may be
// read by several goroutines at once.
//
// Construction:
//
//	New(n, edges)              – edges as Edge{From, To, Weight}
//	FromPairs(n, pairs, probs) – parallel slices: pairs[i] has weight probs[i]
//
// Errors:
//
//   - core.ErrInvalidVertex – negative n, or an index outside [0, n) in a query.
//   - core.ErrMalformedEdge – endpoint out of range, weight NaN or outside
//     [0, 1], or len(pairs) != len(probs).
//
// Complexity: construction O(V + E); Neighbors O(deg(v)); AdjacencyMatrix O(V² + E).
package weighted
