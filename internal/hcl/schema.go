package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Puzzles []*puzzleBlock `hcl:"puzzle,block"`
	Remain  hcl.Body       `hcl:",remain"`
}

// puzzleBlock is the HCL-specific shape of a `puzzle` block.
type puzzleBlock struct {
	Name        string  `hcl:"name,label"`
	Input       string  `hcl:"input"`
	Target      *string `hcl:"target,optional"`
	Workers     *int    `hcl:"workers,optional"`
	CheckCycles *bool   `hcl:"check_cycles,optional"`
}
