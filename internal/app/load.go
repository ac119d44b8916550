package app

import (
	"context"

	"github.com/specialistvlad/funcgrid/internal/ctxlog"
)

// loadConfigs loads every configured path. Paths that fail are logged by
// the runner and left out; only a run with nothing to do is an error.
func (a *App) loadConfigs(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading configuration files...", "paths", a.config.Paths)

	if err := a.runner.Load(ctx, a.config.Paths...); err != nil {
		logger.Warn("Some configuration paths were excluded from the run.", "error", err)
	}

	pipelines := a.runner.Pipelines()
	if len(pipelines) == 0 {
		return ErrNothingToRun
	}

	var steps int
	for _, p := range pipelines {
		steps += len(p.Steps)
	}
	logger.Info("Configuration loaded successfully.", "files", len(pipelines), "steps_found", steps)
	return nil
}
