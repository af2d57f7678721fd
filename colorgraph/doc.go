// Package colorgraph implements the colored vertex graph model that the
// floodfill package recolors in place.
//
// Each Vertex carries a stable Index, grid coordinates (X, Y) used only for
// rendering, a Color label, PrevColor (the color held right before the most
// recent recolor – a one-step undo value), a transient Visited flag, and an
// unweighted adjacency list. Edges are undirected and mirrored into both
// endpoints' lists at construction.
//
// Structure is fixed once New returns. Only Color, PrevColor and Visited
// change afterwards, and only through Recolor, ResetVisited and the
// traversals in floodfill. A Graph is not safe for concurrent mutation.
//
// ImageSize bounds coordinates for rendering; it is not checked against the
// vertices and plays no part in traversal.
//
// Errors:
//
//   - core.ErrInvalidVertex – index outside [0, n).
//   - core.ErrMalformedEdge – edge endpoint outside [0, n) at construction.
package colorgraph
