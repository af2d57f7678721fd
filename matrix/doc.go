// Package matrix renders pathfill graphs as dense 0/1 adjacency matrices
// for inspection and testing.
//
// Adjacency works on any core.Indexed graph, so the weighted and the
// colored model share one implementation. Row and column i correspond to
// vertex index i; m[u][v] == 1 iff v is a neighbor of u. Parallel edges
// collapse to a single 1, a self-loop sets the diagonal.
//
// Complexity: O(V² + E) time and memory.
package matrix
