package weighted

// Edge is an undirected edge between From and To with success probability Weight.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Arc is one entry of an adjacency list: the neighbor index and the weight
// of the edge leading to it.
type Arc struct {
	To     int
	Weight float64
}

// Graph is an immutable undirected graph with edge weights in [0, 1].
type Graph struct {
	n     int
	adj   [][]Arc
	edges []Edge
}
