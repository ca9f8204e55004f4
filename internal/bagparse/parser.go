// Package bagparse turns bag containment rules into a bag.Collection.
//
// Each non-empty line holds one rule:
//
//	light red bags contain 1 bright white bag, 2 muted yellow bags.
//	faded blue bags contain no other bags.
//
// Parsing is all-or-nothing. The first malformed line aborts the parse with a
// *ParseError and no collection is returned.
package bagparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vk/bagwalk/internal/bag"
)

var (
	// ErrMissingSeparator is returned when a rule has no "contain" keyword.
	ErrMissingSeparator = errors.New("missing 'contain' separator")
	// ErrEmptyName is returned when a rule or entry names no colour.
	ErrEmptyName = errors.New("empty bag colour")
	// ErrInvalidEntry is returned when an entry of the contents list is malformed.
	ErrInvalidEntry = errors.New("invalid contents entry")
	// ErrInvalidQuantity is returned when an entry's quantity is not a
	// non-negative integer.
	ErrInvalidQuantity = errors.New("invalid quantity")
)

const (
	separator = " contain "
	noOther   = "no other"
)

// entryRegex splits an entry such as "2 muted yellow" into quantity and colour.
var entryRegex = regexp.MustCompile(`^(\S+)\s+(.+)$`)

// ParseError reports the line that failed to parse.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v (%q)", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads every rule in input and returns them as a collection in input
// order. Blank lines are ignored.
func Parse(input string) (*bag.Collection, error) {
	var bags []bag.Bag
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		b, err := ParseLine(line)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: line, Err: err}
		}
		bags = append(bags, b)
	}
	return bag.NewCollection(bags), nil
}

// ParseLine parses a single rule.
func ParseLine(line string) (bag.Bag, error) {
	name, list, found := strings.Cut(strings.TrimSpace(line), separator)
	if !found {
		return bag.Bag{}, ErrMissingSeparator
	}

	color := trimQualifier(name)
	if color == "" {
		return bag.Bag{}, ErrEmptyName
	}

	contents, err := parseContents(list)
	if err != nil {
		return bag.Bag{}, err
	}
	return bag.Bag{Color: color, Contents: contents}, nil
}

func parseContents(list string) ([]bag.Edge, error) {
	entries := strings.Split(strings.TrimSuffix(strings.TrimSpace(list), "."), ",")
	if len(entries) == 1 && trimQualifier(entries[0]) == noOther {
		return nil, nil
	}

	contents := make([]bag.Edge, 0, len(entries))
	for _, entry := range entries {
		e, err := parseEntry(trimQualifier(entry))
		if err != nil {
			return nil, err
		}
		contents = append(contents, e)
	}
	return contents, nil
}

func parseEntry(entry string) (bag.Edge, error) {
	if entry == "" {
		return bag.Edge{}, fmt.Errorf("%w: empty entry", ErrInvalidEntry)
	}
	if entry == noOther {
		return bag.Edge{}, fmt.Errorf("%w: %q mixed with other entries", ErrInvalidEntry, noOther)
	}

	matches := entryRegex.FindStringSubmatch(entry)
	if matches == nil {
		return bag.Edge{}, fmt.Errorf("%w: %q", ErrInvalidEntry, entry)
	}

	qty, err := parseQuantity(matches[1])
	if err != nil {
		return bag.Edge{}, err
	}

	color := strings.TrimSpace(matches[2])
	if color == "" {
		return bag.Edge{}, ErrEmptyName
	}
	return bag.Edge{Quantity: qty, Color: color}, nil
}

// parseQuantity accepts only unsigned decimal digits.
func parseQuantity(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidQuantity, err)
	}
	return n, nil
}

// trimQualifier strips surrounding whitespace, a trailing period and a
// trailing "bag"/"bags" word.
func trimQualifier(s string) string {
	s = strings.TrimSuffix(strings.TrimSpace(s), ".")
	if s == "bags" || s == "bag" {
		return ""
	}
	if v, ok := strings.CutSuffix(s, " bags"); ok {
		s = v
	} else if v, ok := strings.CutSuffix(s, " bag"); ok {
		s = v
	}
	return strings.TrimSpace(s)
}
