package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/funcgrid/internal/ctxlog"
)

var (
	// ErrNothingToRun is returned when no configuration file could be loaded.
	ErrNothingToRun = errors.New("no configuration files could be loaded")

	// ErrChecksFailed is returned when at least one step ended FAILED, ERROR
	// or uncaught, or a file could not be run.
	ErrChecksFailed = errors.New("one or more checks did not pass")
)

// Run loads the configured paths, runs every file and prints a summary to
// the app's output.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		a.healthCheckServer()
	}

	if a.db != nil {
		if err := a.db.PingContext(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		a.logger.Debug("Database connection verified.")
	}

	if err := a.loadConfigs(ctx); err != nil {
		return err
	}

	report, err := a.runner.RunAll(ctx)
	if report != nil {
		a.lastReport.Store(report)
		if sumErr := report.WriteSummary(a.outW); sumErr != nil {
			a.logger.Error("Failed to write run summary.", "error", sumErr)
		}
	}
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	a.logger.Info("Results written.", "results_dir", a.runner.ResultsDir())
	a.logger.Debug("App.Run method finished.")
	if report.Failed() {
		return ErrChecksFailed
	}
	return nil
}
