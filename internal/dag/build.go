package dag

import (
	"context"
	"fmt"

	"github.com/vk/bagwalk/internal/bag"
	"github.com/vk/bagwalk/internal/ctxlog"
)

// Build constructs the containment graph of a collection and validates that
// it is acyclic. The graph is returned even when a cycle is found, so callers
// can inspect it.
func Build(ctx context.Context, c *bag.Collection) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.")
	graph := New()

	// First pass: one vertex per declared colour.
	for i := 0; i < c.Len(); i++ {
		graph.AddNode(c.At(i).Color)
	}
	logger.Debug("Build: Node creation complete.", "node_count", graph.Len())

	// Second pass: containment edges to declared colours only.
	skipped := 0
	for i := 0; i < c.Len(); i++ {
		b := c.At(i)
		for _, e := range b.Contents {
			if !c.Contains(e.Color) {
				skipped++
				continue
			}
			if err := graph.AddEdge(b.Color, e.Color); err != nil {
				return graph, fmt.Errorf("error linking %q: %w", b.Color, err)
			}
		}
	}
	logger.Debug("Build: Node linking complete.", "unresolved_edges", skipped)

	if err := graph.DetectCycles(); err != nil {
		return graph, fmt.Errorf("error validating containment graph: %w", err)
	}
	logger.Debug("Build: Cycle detection passed.")

	return graph, nil
}
