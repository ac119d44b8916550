package executor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/specialistvlad/funcgrid/internal/check"
	"github.com/specialistvlad/funcgrid/internal/config"
	"github.com/specialistvlad/funcgrid/internal/ctxlog"
	"github.com/specialistvlad/funcgrid/internal/registry"
	"github.com/specialistvlad/funcgrid/internal/resultlog"
	"github.com/specialistvlad/funcgrid/internal/severity"
)

// RunStep executes one step and writes its result line to stream. It never
// returns an error; failures are recorded in the Result and the stream.
func (e *Executor) RunStep(ctx context.Context, step *config.Step, settings config.Settings, stream *resultlog.Stream) Result {
	logger := ctxlog.FromContext(ctx).With("step", step.Name)
	logger.Info("▶️ Running step")

	res, err := e.runStep(ctx, step, settings)
	if err != nil {
		res = e.failure(logger, step.Name, err)
		stream.Logger.Error(res.Line)
	} else {
		stream.Logger.Info(res.Line)
	}

	if settings.StopRunOnFail && res.Failed() {
		stream.Critical("Run aborted")
		logger.Warn("Run aborted, skipping the remaining steps of this file.")
		res.Abort = true
	}

	logger.Debug("Step finished.", "outcome", outcomeAttr(res), "abort", res.Abort)
	return res
}

// runStep is the happy path: resolve, call both sides, compare, render.
func (e *Executor) runStep(ctx context.Context, step *config.Step, settings config.Settings) (Result, error) {
	spec, err := e.Resolve(step)
	if err != nil {
		return Result{}, err
	}

	shared := e.objects.All()
	leftVal, leftLog, err := e.invoke(ctx, spec.Left, shared)
	if err != nil {
		return Result{}, err
	}
	rightVal, rightLog, err := e.invoke(ctx, spec.Right, shared)
	if err != nil {
		return Result{}, err
	}

	outcome := check.Compare(leftVal, rightVal, settings.Significance, e.threshold)
	return Result{
		Step:       spec.Name,
		Outcome:    outcome,
		Classified: true,
		Severity:   spec.Severity,
		Line:       formatResult(spec.Name, outcome, spec.Severity, leftLog, rightLog),
	}, nil
}

// invoke calls one side of the step. Panics are turned into errors that
// carry a stack trace.
func (e *Executor) invoke(ctx context.Context, call Call, shared map[string]any) (value any, fragment string, err error) {
	args, err := registry.Merge(call.Kwargs, shared)
	if err != nil {
		return nil, "", fmt.Errorf("calling %q: %w", call.FuncName, err)
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("function %q panicked: %v", call.FuncName, r)
		}
	}()

	value, fragment, err = call.Fn(ctx, args)
	if err != nil {
		if registry.IsPrecondition(err) {
			return nil, "", fmt.Errorf("calling %q: %w", call.FuncName, err)
		}
		return nil, "", errors.Wrapf(err, "function %q", call.FuncName)
	}
	return value, fragment, nil
}

// failure classifies err into a precondition or an uncaught Result.
func (e *Executor) failure(logger *slog.Logger, step string, err error) Result {
	if registry.IsPrecondition(err) {
		logger.Error("Step precondition failed.", "error", err)
		return Result{
			Step:       step,
			Outcome:    check.Error,
			Classified: true,
			Severity:   severity.Error,
			Line:       formatPrecondition(step, err),
			Err:        err,
		}
	}

	logger.Error("Uncaught error in step.", "error", err)
	logger.Debug("Stack trace.", "trace", fmt.Sprintf("%+v", err))
	return Result{
		Step: step,
		Line: formatUncaught(step),
		Err:  err,
	}
}

func outcomeAttr(r Result) string {
	if !r.Classified {
		return "none"
	}
	return r.Outcome.String()
}
