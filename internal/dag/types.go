package dag

import "sync"

// Graph is a collection of vertices and containment edges.
// All operations on the graph are concurrency-safe.
type Graph struct {
	// mutex protects the nodes map and order slice during concurrent access.
	mutex sync.RWMutex
	// nodes stores all vertices, keyed by colour.
	nodes map[string]*node
	// order records insertion order so traversals are deterministic.
	order []string
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using colours),
// not by direct struct manipulation.
type node struct {
	// id is the colour of the bag.
	id string
	// contents holds the vertices this bag directly holds, in edge order.
	contents []*node
	// containers holds the vertices that directly hold this bag.
	containers []*node
}
