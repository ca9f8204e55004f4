package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vk/bagwalk/internal/ctxlog"
)

// Run solves every configured puzzle in order and writes a report for each.
// It stops at the first puzzle that fails.
func (a *App) Run(ctx context.Context) error {
	runID := uuid.NewString()
	ctx = ctxlog.WithLogger(ctx, a.logger.With("run_id", runID))
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "puzzles", len(a.model.Puzzles))

	for _, p := range a.model.Puzzles {
		if err := ctx.Err(); err != nil {
			return err
		}

		pctx := ctxlog.With(ctx, "puzzle", p.Name)
		res, err := Solve(pctx, p)
		if err != nil {
			return fmt.Errorf("puzzle %q failed: %w", p.Name, err)
		}
		if err := writeReport(a.outW, res); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		ctxlog.FromContext(pctx).Info("Puzzle solved.",
			"containers", res.Containers,
			"required", res.Required,
			"containers_time", res.ContainersTime,
			"required_time", res.RequiredTime,
		)
	}

	logger.Debug("App.Run method finished.")
	return nil
}
