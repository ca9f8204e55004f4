package bag

import (
	"strconv"
	"strings"
)

// Edge is a quantified reference from one bag to the colour it holds.
type Edge struct {
	Quantity int
	Color    string
}

// String renders the edge the way it appears in a rule, e.g. "2 muted yellow".
func (e Edge) String() string {
	return strconv.Itoa(e.Quantity) + " " + e.Color
}

// Bag is a single rule: a colour and the bags it must directly contain, in
// input order.
type Bag struct {
	Color    string
	Contents []Edge
}

// IsTerminal reports whether the bag contains no other bags.
func (b Bag) IsTerminal() bool {
	return len(b.Contents) == 0
}

// String renders the bag in its canonical rule form.
func (b Bag) String() string {
	var sb strings.Builder
	sb.WriteString(b.Color)
	sb.WriteString(" bags contain ")
	if b.IsTerminal() {
		sb.WriteString("no other bags.")
		return sb.String()
	}
	for i, e := range b.Contents {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
		if e.Quantity == 1 {
			sb.WriteString(" bag")
		} else {
			sb.WriteString(" bags")
		}
	}
	sb.WriteByte('.')
	return sb.String()
}
