// Package pathfill is a small in-memory toolkit for two classic graph
// problems: finding the most reliable path in a probability-weighted graph,
// and flood-filling a same-color region of a colored vertex graph.
//
// What is inside?
//
//	frontier/    — generic Stack, Queue and binary MinHeap
//	core/        — shared errors and the Indexed view of a graph
//	weighted/    — undirected graph with success probabilities in [0,1]
//	colorgraph/  — positioned, colored vertices with visit marks
//	matrix/      — 0/1 adjacency matrices for either graph model
//	probability/ — max-probability path search (best-first, Dijkstra style)
//	floodfill/   — BFS and DFS recoloring of a connected same-color region
//	gridgraph/   — build a colored vertex graph from a color grid
//	cmd/pathfill — command line front end reading YAML documents
//
// The algorithm packages never log and never print; they return values and
// sentinel errors comparable with errors.Is. Only cmd/pathfill and its
// internal helpers log.
//
// Quick ASCII example:
//
//	    0 ─0.5─ 1
//	     \      │
//	     0.2   0.5
//	       \    │
//	          2
//
// The best route 0 → 2 goes through 1 with probability 0.25, beating the
// direct edge at 0.2.
//
//	go install github.com/katalvlaran/pathfill/cmd/pathfill@latest
package pathfill
