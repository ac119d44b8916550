package runner

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/specialistvlad/funcgrid/internal/ctxlog"
)

// LoadFile loads one configuration file and queues it for the next run.
func (r *Runner) LoadFile(ctx context.Context, path string) error {
	p, err := r.loaders.LoadFile(ctx, path)
	if err != nil {
		return err
	}
	r.pipelines = append(r.pipelines, p)
	ctxlog.FromContext(ctx).Info("Configuration file loaded.", "file", path, "steps", len(p.Steps))
	return nil
}

// LoadDir loads every supported file directly inside dir. Unsupported and
// unreadable files are skipped with a warning.
func (r *Runner) LoadDir(ctx context.Context, dir string) error {
	pipelines, err := r.loaders.LoadDir(ctx, dir, false)
	if err != nil {
		return err
	}
	if len(pipelines) == 0 {
		ctxlog.FromContext(ctx).Warn("No configuration files found in directory.", "dir", dir, "extensions", r.loaders.Extensions())
	}
	r.pipelines = append(r.pipelines, pipelines...)
	return nil
}

// Load loads each path as a file or a directory. A path that fails is
// logged and skipped; the returned error joins every such failure.
func (r *Runner) Load(ctx context.Context, paths ...string) error {
	logger := ctxlog.FromContext(ctx)

	var errs []error
	for _, path := range paths {
		var err error
		info, statErr := os.Stat(path)
		switch {
		case statErr != nil:
			err = fmt.Errorf("error accessing path %s: %w", path, statErr)
		case info.IsDir():
			err = r.LoadDir(ctx, path)
		default:
			err = r.LoadFile(ctx, path)
		}
		if err != nil {
			logger.Warn("Error reading configuration, excluding it from the run.", "path", path, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
