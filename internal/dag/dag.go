package dag

import (
	"errors"
	"fmt"
)

// ErrCycle is returned when the containment relation loops back on itself.
var ErrCycle = errors.New("containment cycle")

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a vertex for the given colour. If the colour already exists,
// the function does nothing.
func (g *Graph) AddNode(id string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[id]; ok {
		return
	}

	g.nodes[id] = &node{id: id}
	g.order = append(g.order, id)
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.nodes)
}

// AddEdge records that the `outerID` bag directly holds the `innerID` bag.
// A bag holding its own colour is reported as a cycle. An error is also
// returned if either vertex does not exist.
func (g *Graph) AddEdge(outerID, innerID string) error {
	if outerID == innerID {
		return fmt.Errorf("%w: self-referential edge %s -> %s", ErrCycle, outerID, outerID)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	outer, ok := g.nodes[outerID]
	if !ok {
		return fmt.Errorf("source node not found: %s", outerID)
	}

	inner, ok := g.nodes[innerID]
	if !ok {
		return fmt.Errorf("destination node not found: %s", innerID)
	}

	outer.contents = append(outer.contents, inner)
	inner.containers = append(inner.containers, outer)

	return nil
}

// Contents returns the colours the given bag directly holds.
func (g *Graph) Contents(id string) ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return ids(n.contents), nil
}

// Containers returns the colours that directly hold the given bag.
func (g *Graph) Containers(id string) ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return ids(n.containers), nil
}

func ids(nodes []*node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.id)
	}
	return out
}

// DetectCycles checks the graph for any cycles. It returns an error wrapping
// ErrCycle that names the first node found to be involved in a cycle.
// Vertices are visited in insertion order, so the reported node is stable.
func (g *Graph) DetectCycles() error {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	// Use classic depth-first search with three sets of nodes:
	// permanent: nodes that have been fully visited and are not part of a cycle.
	// temporary: nodes currently in the recursion stack for the current traversal.
	// unvisited: all other nodes.
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(n *node) error
	visit = func(n *node) error {
		if permanent[n.id] {
			return nil
		}
		if temporary[n.id] {
			return fmt.Errorf("%w detected involving node '%s'", ErrCycle, n.id)
		}

		temporary[n.id] = true

		for _, inner := range n.contents {
			if err := visit(inner); err != nil {
				return err
			}
		}

		delete(temporary, n.id)
		permanent[n.id] = true

		return nil
	}

	for _, id := range g.order {
		if err := visit(g.nodes[id]); err != nil {
			return err
		}
	}

	return nil
}
