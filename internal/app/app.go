package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/specialistvlad/funcgrid/internal/ctxlog"
	"github.com/specialistvlad/funcgrid/internal/registry"
	"github.com/specialistvlad/funcgrid/internal/runner"
	"github.com/specialistvlad/funcgrid/modules/sqlscalar"
	"github.com/uptrace/bun"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	ctx        context.Context
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	runner     *runner.Runner
	db         *bun.DB
	httpServer *http.Server
	lastReport atomic.Pointer[runner.Report]
}

// NewApp is the constructor for the main application. It builds an isolated
// logger and runner. The built-in modules are registered unless
// config.NoBuiltins is set; extra modules are registered after them.
func NewApp(outW io.Writer, config *Config, modules ...registry.Module) (*App, error) {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var mods []registry.Module
	if !config.NoBuiltins {
		mods = append(mods, coreModules...)
	}
	mods = append(mods, modules...)

	r, err := runner.New(
		runner.WithLogger(logger),
		runner.WithResultsDir(config.ResultsDir),
		runner.WithModules(mods...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}
	logger.Debug("Function modules registered.", "modules", len(mods), "functions", r.Functions())

	a := &App{
		ctx:    ctx,
		outW:   outW,
		logger: logger,
		config: config,
		runner: r,
	}

	if config.DatabaseURL != "" {
		a.db = sqlscalar.Open(config.DatabaseURL)
		if err := r.RegisterObject(sqlscalar.ObjectName, a.db); err != nil {
			return nil, errors.Join(err, a.db.Close())
		}
		logger.Debug("Database connection registered as shared object.", "name", sqlscalar.ObjectName)
	}

	return a, nil
}

// Runner returns the application's runner. This is primarily for testing.
func (a *App) Runner() *runner.Runner {
	return a.runner
}

// LastReport returns the report of the most recent run, or nil.
func (a *App) LastReport() *runner.Report {
	return a.lastReport.Load()
}

// Close releases the database connection, the result streams and the
// health check server.
func (a *App) Close() error {
	var errs []error
	if err := a.closeHealthCheckServer(); err != nil {
		errs = append(errs, err)
	}
	if err := a.runner.Close(); err != nil {
		errs = append(errs, err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}
	return errors.Join(errs...)
}
