package bagquery

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/bagwalk/internal/bag"
	"github.com/vk/bagwalk/internal/bagparse"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const sampleRules = `light red bags contain 1 bright white bag, 2 muted yellow bags.
dark orange bags contain 3 bright white bags, 4 muted yellow bags.
bright white bags contain 1 shiny gold bag.
muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.
shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.
dark olive bags contain 3 faded blue bags, 4 dotted black bags.
vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.
faded blue bags contain no other bags.
dotted black bags contain no other bags.`

const nestedRules = `shiny gold bags contain 2 dark red bags.
dark red bags contain 2 dark orange bags.
dark orange bags contain 2 dark yellow bags.
dark yellow bags contain 2 dark green bags.
dark green bags contain 2 dark blue bags.
dark blue bags contain 2 dark violet bags.
dark violet bags contain no other bags.`

const cyclicRules = `pale cyan bags contain 1 wavy rust bag.
wavy rust bags contain 2 pale cyan bags, 1 shiny gold bag.
shiny gold bags contain no other bags.`

func mustParse(t *testing.T, input string) *bag.Collection {
	t.Helper()
	c, err := bagparse.Parse(input)
	require.NoError(t, err)
	return c
}

func mustLookup(t *testing.T, c *bag.Collection, color string) bag.Bag {
	t.Helper()
	b, ok := c.Lookup(color)
	require.True(t, ok, "colour %q missing from collection", color)
	return b
}
