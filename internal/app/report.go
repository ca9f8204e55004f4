package app

import (
	"fmt"
	"io"
	"strings"
)

var rule = strings.Repeat("-", 40)

// writeReport prints one puzzle's answers as a framed block.
func writeReport(w io.Writer, r *Result) error {
	_, err := fmt.Fprintf(w,
		"%s\nPuzzle: %s (%d bags, digest %016x)\nPart 1: %d bags can hold %s (%s)\nPart 2: %d bags inside %s (%s)\n%s\n",
		rule,
		r.Puzzle, r.Bags, r.Digest,
		r.Containers, r.Target, r.ContainersTime,
		r.Required, r.Target, r.RequiredTime,
		rule,
	)
	return err
}
