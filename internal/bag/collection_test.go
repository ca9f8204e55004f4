package bag

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBags() []Bag {
	return []Bag{
		{Color: "light red", Contents: []Edge{{1, "bright white"}, {2, "muted yellow"}}},
		{Color: "bright white", Contents: []Edge{{1, "shiny gold"}}},
		{Color: "shiny gold"},
	}
}

func TestNewCollection(t *testing.T) {
	c := NewCollection(sampleBags())

	require.Equal(t, 3, c.Len())
	assert.Equal(t, "light red", c.At(0).Color)
	assert.Equal(t, []string{"light red", "bright white", "shiny gold"}, c.Colors())
}

func TestLookup(t *testing.T) {
	c := NewCollection(sampleBags())

	t.Run("known colour", func(t *testing.T) {
		b, ok := c.Lookup("bright white")
		require.True(t, ok)
		assert.Equal(t, []Edge{{1, "shiny gold"}}, b.Contents)
		assert.True(t, c.Contains("bright white"))
	})

	t.Run("unknown colour", func(t *testing.T) {
		b, ok := c.Lookup("muted yellow")
		assert.False(t, ok)
		assert.Equal(t, Bag{}, b)
		assert.False(t, c.Contains("muted yellow"))
	})

	t.Run("matching is exact", func(t *testing.T) {
		_, ok := c.Lookup("Light Red")
		assert.False(t, ok)
		_, ok = c.Lookup(" light red")
		assert.False(t, ok)
	})
}

func TestLookup_FirstDeclarationWins(t *testing.T) {
	c := NewCollection([]Bag{
		{Color: "dim tan", Contents: []Edge{{3, "pale blue"}}},
		{Color: "dim tan"},
	})

	b, ok := c.Lookup("dim tan")
	require.True(t, ok)
	assert.False(t, b.IsTerminal())
	assert.Equal(t, 2, c.Len())
}

func TestBags_ReturnsCopy(t *testing.T) {
	c := NewCollection(sampleBags())

	bags := c.Bags()
	bags[0].Color = "mutated"

	if diff := cmp.Diff(sampleBags(), c.Bags()); diff != "" {
		t.Errorf("collection changed after mutating returned slice (-want +got):\n%s", diff)
	}
}

func TestBagString(t *testing.T) {
	testCases := []struct {
		name string
		bag  Bag
		want string
	}{
		{
			name: "terminal",
			bag:  Bag{Color: "faded blue"},
			want: "faded blue bags contain no other bags.",
		},
		{
			name: "singular and plural",
			bag:  Bag{Color: "light red", Contents: []Edge{{1, "bright white"}, {2, "muted yellow"}}},
			want: "light red bags contain 1 bright white bag, 2 muted yellow bags.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.bag.String())
		})
	}
}

func TestDigest(t *testing.T) {
	a := NewCollection(sampleBags())
	b := NewCollection(sampleBags())
	assert.Equal(t, a.Digest(), b.Digest(), "same rules must share a digest")

	reordered := sampleBags()
	reordered[0], reordered[2] = reordered[2], reordered[0]
	assert.NotEqual(t, a.Digest(), NewCollection(reordered).Digest())

	assert.Equal(t, NewCollection(nil).Digest(), NewCollection([]Bag{}).Digest())
}
