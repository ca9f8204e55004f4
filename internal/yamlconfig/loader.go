// Package yamlconfig is the YAML implementation of config.Loader.
//
//	puzzles:
//	  - name: day7
//	    input: input/day7
//	    target: shiny gold
//	    workers: 4
//	    check_cycles: true
package yamlconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/bagwalk/internal/config"
	"github.com/vk/bagwalk/internal/ctxlog"
	"github.com/vk/bagwalk/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Extensions are the file suffixes this loader reads.
var Extensions = []string{".yaml", ".yml"}

type fileRoot struct {
	Puzzles []puzzleEntry `yaml:"puzzles"`
}

type puzzleEntry struct {
	Name        string `yaml:"name"`
	Input       string `yaml:"input"`
	Target      string `yaml:"target"`
	Workers     int    `yaml:"workers"`
	CheckCycles bool   `yaml:"check_cycles"`
}

// Loader reads puzzle definitions from YAML files.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes every YAML file reachable from paths and merges their puzzles,
// in file order, into one validated model. Unknown keys are rejected.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}

	model := &config.Model{}
	for _, file := range files {
		root, err := decodeFile(file)
		if err != nil {
			return nil, err
		}
		for _, e := range root.Puzzles {
			model.Puzzles = append(model.Puzzles, &config.Puzzle{
				Name:        e.Name,
				Input:       fsutil.ResolveRelative(file, e.Input),
				Target:      e.Target,
				Workers:     e.Workers,
				CheckCycles: e.CheckCycles,
			})
		}
		logger.Debug("Decoded YAML file.", "file", file, "puzzles", len(root.Puzzles))
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return model, nil
}

func decodeFile(file string) (*fileRoot, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
	}

	var root fileRoot
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
	}
	return &root, nil
}
