package config

import (
	"errors"
	"fmt"
)

// DefaultTarget is the colour both queries are asked about when a puzzle
// does not name one.
const DefaultTarget = "shiny gold"

// Model is the unified, format-agnostic representation of a run: the list of
// puzzles to solve, in declaration order.
type Model struct {
	Puzzles []*Puzzle
}

// Puzzle is one input file and the options used to solve it.
type Puzzle struct {
	Name        string
	Input       string // path to the rules file
	Target      string // colour for the reachability and weighted queries
	Workers     int    // >1 evaluates reachability roots concurrently
	CheckCycles bool   // reject cyclic rules before querying
}

// Validate fills defaults and checks that every puzzle is runnable and
// uniquely named.
func (m *Model) Validate() error {
	if len(m.Puzzles) == 0 {
		return errors.New("no puzzles defined")
	}

	seen := make(map[string]struct{}, len(m.Puzzles))
	for i, p := range m.Puzzles {
		if p.Name == "" {
			return fmt.Errorf("puzzle #%d: name is required", i+1)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("puzzle %q: defined more than once", p.Name)
		}
		seen[p.Name] = struct{}{}

		if p.Input == "" {
			return fmt.Errorf("puzzle %q: input is required", p.Name)
		}
		if p.Workers < 0 {
			return fmt.Errorf("puzzle %q: workers must not be negative, got %d", p.Name, p.Workers)
		}
		if p.Target == "" {
			p.Target = DefaultTarget
		}
	}
	return nil
}
