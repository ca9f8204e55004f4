package hcl

import (
	"github.com/vk/bagwalk/internal/config"
	"github.com/vk/bagwalk/internal/fsutil"
)

// translatePuzzle converts the HCL-specific puzzle schema into the agnostic
// model. Relative input paths are resolved against the declaring file.
func translatePuzzle(file string, b *puzzleBlock) *config.Puzzle {
	p := &config.Puzzle{
		Name:  b.Name,
		Input: fsutil.ResolveRelative(file, b.Input),
	}
	if b.Target != nil {
		p.Target = *b.Target
	}
	if b.Workers != nil {
		p.Workers = *b.Workers
	}
	if b.CheckCycles != nil {
		p.CheckCycles = *b.CheckCycles
	}
	return p
}
