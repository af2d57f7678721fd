// Package probability finds the most reliable path between two vertices of
// a weighted.Graph, where every edge weight is an independent success
// probability in [0, 1] and a path succeeds with the product of its weights.
//
// The search is Dijkstra generalized from additive costs to multiplicative
// monotone weights: a best-first traversal that always expands the frontier
// vertex with the highest known probability. The frontier is a
// frontier.MinHeap keyed by the negated probability, so the heap minimum is
// the most promising vertex.
//
// Invariants:
//
//   - best[source] = 1, best[v] = 0 for every other v before the search.
//   - Multiplying by a weight in [0, 1] never increases a probability, so
//     the first time the target leaves the heap it carries its optimum and
//     the search stops there. This early exit is sound only for weights in
//     [0, 1]; with multipliers above 1 it would have to go.
//   - Lazy deletion: an improved probability pushes a fresh entry and leaves
//     the old one in the heap. Entries whose vertex is already finalized
//     are discarded when extracted.
//
// Complexity:
//
//   - Time:  O((V + E) log E) – up to one heap entry per improving relaxation.
//   - Space: O(V + E).
//
// Options (Search only):
//
//   - WithReturnPath()      – also return the best path, source first.
//   - WithMinProbability(p) – never push candidates below p (pruning).
//
// Errors:
//
//   - core.ErrNilGraph       – nil graph.
//   - core.ErrInvalidVertex  – start or end outside [0, n).
//   - ErrOptionViolation     – an invalid option value.
package probability
