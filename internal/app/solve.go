package app

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/bagwalk/internal/bagparse"
	"github.com/vk/bagwalk/internal/bagquery"
	"github.com/vk/bagwalk/internal/config"
	"github.com/vk/bagwalk/internal/ctxlog"
	"github.com/vk/bagwalk/internal/fsutil"
)

// Result holds both answers for one puzzle along with how long each took.
type Result struct {
	Puzzle string
	Target string
	Bags   int
	Digest uint64

	Containers     int
	ContainersTime time.Duration
	Required       int
	RequiredTime   time.Duration
}

// Solve reads, parses and answers one puzzle.
func Solve(ctx context.Context, p *config.Puzzle) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	input, err := fsutil.ReadInput(p.Input)
	if err != nil {
		return nil, err
	}

	c, err := bagparse.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", p.Input, err)
	}
	res := &Result{Puzzle: p.Name, Target: p.Target, Bags: c.Len(), Digest: c.Digest()}
	logger.Debug("Rules parsed.", "bags", res.Bags, "digest", fmt.Sprintf("%016x", res.Digest))

	if p.CheckCycles {
		if err := bagquery.Validate(ctx, c); err != nil {
			return nil, err
		}
		logger.Debug("Containment rules are acyclic.")
	}

	res.ContainersTime, err = measure(func() error {
		if p.Workers > 1 {
			n, err := bagquery.CountContainersParallel(ctx, c, p.Target, p.Workers)
			res.Containers = n
			return err
		}
		res.Containers = bagquery.CountContainers(c, p.Target)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("counting containers of %q: %w", p.Target, err)
	}
	logger.Debug("Containers counted.", "target", p.Target, "count", res.Containers, "workers", p.Workers)

	res.RequiredTime, err = measure(func() error {
		n, err := bagquery.CountRequired(c, p.Target)
		res.Required = n
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("counting bags inside %q: %w", p.Target, err)
	}
	logger.Debug("Required bags counted.", "target", p.Target, "count", res.Required)

	return res, nil
}

func measure(fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	return time.Since(start), err
}
