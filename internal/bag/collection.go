package bag

import (
	"github.com/cespare/xxhash/v2"
)

// Collection is the ordered, immutable set of bags parsed from one input.
type Collection struct {
	bags []Bag
	// index maps a colour to its position in bags. When a colour is declared
	// more than once the first declaration wins.
	index map[string]int
}

// NewCollection takes ownership of bags and builds the colour index.
func NewCollection(bags []Bag) *Collection {
	c := &Collection{
		bags:  bags,
		index: make(map[string]int, len(bags)),
	}
	for i, b := range bags {
		if _, ok := c.index[b.Color]; ok {
			continue
		}
		c.index[b.Color] = i
	}
	return c
}

// Len returns the number of bags in the collection.
func (c *Collection) Len() int {
	return len(c.bags)
}

// At returns the bag at position i in input order.
func (c *Collection) At(i int) Bag {
	return c.bags[i]
}

// Bags returns a copy of all bags in input order.
func (c *Collection) Bags() []Bag {
	out := make([]Bag, len(c.bags))
	copy(out, c.bags)
	return out
}

// Lookup resolves a colour to its bag.
func (c *Collection) Lookup(color string) (Bag, bool) {
	i, ok := c.index[color]
	if !ok {
		return Bag{}, false
	}
	return c.bags[i], true
}

// Contains reports whether a bag with the given colour was declared.
func (c *Collection) Contains(color string) bool {
	_, ok := c.index[color]
	return ok
}

// Colors returns every declared colour in input order.
func (c *Collection) Colors() []string {
	colors := make([]string, len(c.bags))
	for i, b := range c.bags {
		colors[i] = b.Color
	}
	return colors
}

// Digest returns a 64-bit fingerprint of the collection's canonical rules.
// Two collections with the same rules in the same order share a digest.
func (c *Collection) Digest() uint64 {
	h := xxhash.New()
	for _, b := range c.bags {
		_, _ = h.WriteString(b.String())
		_, _ = h.WriteString("\n")
	}
	return h.Sum64()
}
