package bagquery

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/vk/bagwalk/internal/bag"
	"github.com/vk/bagwalk/internal/dag"
)

// MaxDepth bounds how deeply CountContent follows nested bags.
const MaxDepth = 10_000

var (
	// ErrMissingRoot is returned when the root colour of a weighted count is
	// not declared in the collection.
	ErrMissingRoot = errors.New("root bag not found")
	// ErrCycle is returned when a bag eventually contains itself.
	ErrCycle = dag.ErrCycle
	// ErrOverflow is returned when a count does not fit in an int.
	ErrOverflow = errors.New("bag count overflows int")
	// ErrTooDeep is returned when nesting exceeds MaxDepth.
	ErrTooDeep = errors.New("bag nesting too deep")
	// ErrNegativeMultiplier is returned for a multiplier below zero.
	ErrNegativeMultiplier = errors.New("negative multiplier")
)

// CountRequired returns the total number of bags nested inside the bag named
// root, excluding root itself.
func CountRequired(c *bag.Collection, root string) (int, error) {
	b, ok := c.Lookup(root)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingRoot, root)
	}
	return CountContent(c, b, 1)
}

// CountContent returns the number of bags held, directly or nested, by
// multiplier copies of from. Each edge contributes quantity*multiplier bags
// plus the content of that many child bags; an unresolved child contributes
// only its direct count. A terminal bag yields 0.
func CountContent(c *bag.Collection, from bag.Bag, multiplier int) (int, error) {
	if multiplier < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeMultiplier, multiplier)
	}

	w := &contentWalker{
		c:      c,
		unit:   make(map[string]int),
		onPath: make(map[string]bool),
	}
	perBag, err := w.count(from, 0)
	if err != nil {
		return 0, err
	}
	return mul(perBag, multiplier)
}

// contentWalker computes the content of a single bag of each colour. Since
// the content of n bags is n times the content of one, a colour is walked at
// most once per query.
type contentWalker struct {
	c      *bag.Collection
	unit   map[string]int
	onPath map[string]bool
}

func (w *contentWalker) count(b bag.Bag, depth int) (int, error) {
	if depth > MaxDepth {
		return 0, fmt.Errorf("%w: more than %d levels below %q", ErrTooDeep, MaxDepth, b.Color)
	}

	w.onPath[b.Color] = true
	defer delete(w.onPath, b.Color)

	total := 0
	for _, e := range b.Contents {
		inner := 0
		if child, ok := w.c.Lookup(e.Color); ok {
			var err error
			if inner, err = w.unitCount(child, depth+1); err != nil {
				return 0, err
			}
		}

		// quantity direct bags plus quantity copies of their content.
		perChild, err := add(inner, 1)
		var n int
		if err == nil {
			n, err = mul(e.Quantity, perChild)
		}
		if err != nil {
			return 0, fmt.Errorf("%q in %q: %w", e.Color, b.Color, err)
		}
		if total, err = add(total, n); err != nil {
			return 0, fmt.Errorf("%q: %w", b.Color, err)
		}
	}
	return total, nil
}

func (w *contentWalker) unitCount(b bag.Bag, depth int) (int, error) {
	if n, ok := w.unit[b.Color]; ok {
		return n, nil
	}
	if w.onPath[b.Color] {
		return 0, fmt.Errorf("%w: %q contains itself", ErrCycle, b.Color)
	}

	n, err := w.count(b, depth)
	if err != nil {
		return 0, err
	}
	w.unit[b.Color] = n
	return n, nil
}

// Validate reports the first containment cycle in the collection, if any.
func Validate(ctx context.Context, c *bag.Collection) error {
	_, err := dag.Build(ctx, c)
	return err
}

func mul(a, b int) (int, error) {
	if a != 0 && b > math.MaxInt/a {
		return 0, ErrOverflow
	}
	return a * b, nil
}

func add(a, b int) (int, error) {
	if a > math.MaxInt-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}
