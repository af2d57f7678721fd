// Package gridgraph treats a rectangular grid of colors as a colored
// vertex graph, the usual shape of flood-fill input.
//
// What:
//
//   - GridGraph wraps a rectangular [][]colorgraph.Color grid.
//   - Identifies same-color regions under 4- or 8-connectivity.
//   - Converts to a *colorgraph.Graph for floodfill.BFS / floodfill.DFS.
//
// Cells are numbered row-major: index = y*Width + x. The same numbering is
// used for vertex indices in ToColorGraph, so Coordinate maps a vertex
// index back to its cell.
//
// Complexity:
//
//   - Regions:      O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - ToColorGraph: O(W×H×d), Memory: O(W×H×d).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
