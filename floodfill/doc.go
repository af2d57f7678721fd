// Package floodfill recolors the connected same-color region around a seed
// vertex of a colorgraph.Graph, breadth-first (BFS) or depth-first (DFS).
//
// Both traversals:
//
//  1. clear every Visited flag (Graph.ResetVisited), so no stale state leaks
//     in from a previous run;
//  2. remember the seed's original color;
//  3. mark, recolor and push the seed;
//  4. repeatedly take a vertex off the frontier and, for each neighbor that
//     is unvisited and still holds the original color, mark, recolor and
//     push it.
//
// Recoloring happens on discovery, not on removal, and the Visited check
// precedes every push, so each matching vertex is recolored exactly once.
// Every recolored vertex gets PrevColor = its color just before this run.
// BFS uses a frontier.Queue (level order), DFS a frontier.Stack.
// Both recolor the same set of vertices: the component of original-color
// vertices reachable from the seed. Only Color, PrevColor and Visited
// change; adjacency and coordinates are untouched.
//
// Complexity: O(V + E) time, O(V) frontier memory.
//
// Options:
//
//   - WithOnRecolor(fn) – called right after each vertex is recolored, in
//     discovery order, with the vertex and its depth in the traversal tree.
//
// Errors:
//
//   - core.ErrNilGraph      – nil graph.
//   - core.ErrInvalidVertex – seed outside [0, n).
//   - ErrUnknownMode        – Fill called with a Mode other than ModeBFS/ModeDFS.
package floodfill
