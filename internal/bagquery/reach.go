package bagquery

import (
	"context"

	"github.com/vk/bagwalk/internal/bag"
	"golang.org/x/sync/errgroup"
)

// CanReach reports whether target is a direct or transitive content of from.
// Contents are expanded through the collection's index; an unresolved colour
// still counts as reached but expands no further.
func CanReach(c *bag.Collection, from bag.Bag, target string) bool {
	visited := make(map[string]bool)
	stack := make([]string, 0, len(from.Contents))
	for i := len(from.Contents) - 1; i >= 0; i-- {
		stack = append(stack, from.Contents[i].Color)
	}

	for len(stack) > 0 {
		color := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if color == target {
			return true
		}
		if visited[color] {
			continue
		}
		visited[color] = true

		inner, ok := c.Lookup(color)
		if !ok {
			continue
		}
		for i := len(inner.Contents) - 1; i >= 0; i-- {
			if next := inner.Contents[i].Color; !visited[next] {
				stack = append(stack, next)
			}
		}
	}
	return false
}

// Containers returns, in input order, the colour of every bag that can
// eventually hold target.
func Containers(c *bag.Collection, target string) []string {
	var out []string
	for i := 0; i < c.Len(); i++ {
		if b := c.At(i); CanReach(c, b, target) {
			out = append(out, b.Color)
		}
	}
	return out
}

// CountContainers returns how many bags can eventually hold target.
func CountContainers(c *bag.Collection, target string) int {
	return len(Containers(c, target))
}

// CountContainersParallel computes CountContainers with up to workers root
// bags evaluated concurrently. It stops early and returns the context's error
// if ctx is cancelled.
func CountContainersParallel(ctx context.Context, c *bag.Collection, target string, workers int) (int, error) {
	if workers < 1 {
		workers = 1
	}

	reached := make([]bool, c.Len())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < c.Len(); i++ {
		if err := gctx.Err(); err != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reached[i] = CanReach(c, c.At(i), target)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count := 0
	for _, ok := range reached {
		if ok {
			count++
		}
	}
	return count, nil
}
