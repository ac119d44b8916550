package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/specialistvlad/funcgrid/internal/config"
	"github.com/specialistvlad/funcgrid/internal/ctxlog"
)

// RunAll runs every loaded file in load order and closes all result streams
// afterwards. The error is non-nil only when ctx ends the run early or the
// streams fail to close; everything else is recorded in the Report.
func (r *Runner) RunAll(ctx context.Context) (report *Report, err error) {
	report = &Report{RunID: uuid.New(), StartedAt: time.Now()}
	logger := ctxlog.FromContext(ctx).With("run_id", report.RunID.String())
	ctx = ctxlog.WithLogger(ctx, logger)

	logger.Info("🚀 Starting run.", "files", len(r.pipelines))
	defer func() {
		if closeErr := r.streams.Close(); closeErr != nil {
			logger.Error("Failed to close result streams.", "error", closeErr)
			err = errors.Join(err, closeErr)
		}
		report.FinishedAt = time.Now()
		logger.Info("🏁 Run finished.", "files", len(report.Files), "duration", report.FinishedAt.Sub(report.StartedAt))
	}()

	for _, p := range r.pipelines {
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Warn("Run cancelled, skipping the remaining files.", "error", ctxErr)
			return report, ctxErr
		}
		report.Files = append(report.Files, r.runFile(ctx, p))
	}
	return report, ctx.Err()
}

// runFile runs one pipeline. Anything that goes wrong is confined to the
// returned FileReport.
func (r *Runner) runFile(ctx context.Context, p *config.Pipeline) (fr FileReport) {
	ctx = ctxlog.With(ctx, "file", p.Source)
	logger := ctxlog.FromContext(ctx)
	fr = FileReport{Source: p.Source}

	defer func() {
		if rec := recover(); rec != nil {
			err := pkgerrors.Errorf("panic while running file: %v", rec)
			logger.Error("Uncaught error in file, continuing with the next one.", "error", err)
			logger.Debug("Stack trace.", "trace", fmt.Sprintf("%+v", err))
			fr.Status = StatusFailed
			fr.Error = err.Error()
		}
	}()

	if p.Default == nil {
		logger.Warn("No default section found, using default settings.")
	}
	if len(p.Steps) == 0 {
		logger.Warn("File has no steps, skipping it.")
		fr.Status = StatusEmpty
		return fr
	}

	settings, err := config.ResolveSettings(p.Default)
	if err != nil {
		logger.Error("Invalid default section, skipping file.", "error", err)
		fr.Status = StatusFailed
		fr.Error = err.Error()
		return fr
	}
	fr.CheckName = settings.CheckName
	if settings.SkipFile {
		logger.Info("File skipped by its default section.")
		fr.Status = StatusSkipped
		return fr
	}

	if missing := r.registry.Validate(p.FuncRefs()); missing != nil {
		logger.Warn("File references unregistered functions; those steps will fail.", "error", missing)
	}

	stream, err := r.streams.Get(settings.Logger)
	if err != nil {
		logger.Error("Failed to open result stream, skipping file.", "stream", settings.Logger, "error", err)
		fr.Status = StatusFailed
		fr.Error = err.Error()
		return fr
	}
	fr.Stream = stream.Name
	stream.Logger.Info("Running: " + settings.CheckName)

	fr.Status = StatusCompleted
	for _, step := range p.Steps {
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Warn("Run cancelled, skipping the remaining steps.", "error", ctxErr)
			fr.Status = StatusCancelled
			fr.Error = ctxErr.Error()
			break
		}
		res := r.exec.RunStep(ctx, step, settings, stream)
		fr.Steps = append(fr.Steps, newStepReport(res))
		if res.Abort {
			fr.Status = StatusAborted
			break
		}
	}
	fr.combine()

	logger.Info("File finished.", "check", settings.CheckName, "status", fr.Status, "steps", len(fr.Steps))
	return fr
}
