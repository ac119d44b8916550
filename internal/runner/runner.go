package runner

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/specialistvlad/funcgrid/internal/config"
	"github.com/specialistvlad/funcgrid/internal/executor"
	"github.com/specialistvlad/funcgrid/internal/loader"
	"github.com/specialistvlad/funcgrid/internal/objectstore"
	"github.com/specialistvlad/funcgrid/internal/registry"
	"github.com/specialistvlad/funcgrid/internal/resultlog"
)

// DefaultResultsDir is where result streams are written unless
// WithResultsDir says otherwise.
const DefaultResultsDir = "./logs"

// Runner holds everything a run needs. It is not safe for concurrent use.
type Runner struct {
	logger     *slog.Logger
	resultsDir string
	factory    resultlog.Factory
	modules    []registry.Module
	execOpts   []executor.Option

	loaders   *loader.Set
	registry  *registry.Registry
	objects   *objectstore.Store
	streams   *resultlog.Streams
	exec      *executor.Executor
	pipelines []*config.Pipeline
}

// Option configures a Runner.
type Option func(r *Runner)

// WithLogger sets the application logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithResultsDir sets the directory result streams are written to.
func WithResultsDir(dir string) Option {
	return func(r *Runner) {
		r.resultsDir = dir
	}
}

// WithStreamFactory replaces resultlog.FileFactory, e.g. to capture results
// in memory.
func WithStreamFactory(f resultlog.Factory) Option {
	return func(r *Runner) {
		r.factory = f
	}
}

// WithModules registers function modules at construction.
func WithModules(modules ...registry.Module) Option {
	return func(r *Runner) {
		r.modules = append(r.modules, modules...)
	}
}

// WithLoaders replaces the default HCL and YAML loaders.
func WithLoaders(set *loader.Set) Option {
	return func(r *Runner) {
		r.loaders = set
	}
}

// WithExecutorOptions passes options through to the step executor.
func WithExecutorOptions(opts ...executor.Option) Option {
	return func(r *Runner) {
		r.execOpts = append(r.execOpts, opts...)
	}
}

// New creates a Runner and makes sure the results directory exists.
func New(opts ...Option) (*Runner, error) {
	r := &Runner{resultsDir: DefaultResultsDir}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.loaders == nil {
		r.loaders = loader.Default()
	}

	if err := os.MkdirAll(r.resultsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create results directory %s: %w", r.resultsDir, err)
	}

	r.registry = registry.New(r.logger)
	r.registry.Load(r.modules...)
	r.objects = objectstore.New(r.logger, r.registry.Has)
	r.streams = resultlog.NewStreams(r.resultsDir, r.factory)
	r.exec = executor.New(r.registry, r.objects, r.execOpts...)

	r.logger.Debug("Runner created.", "results_dir", r.resultsDir, "functions", len(r.registry.Names()))
	return r, nil
}

// RegisterModules adds the functions of every module. Names already taken
// keep their first registration.
func (r *Runner) RegisterModules(modules ...registry.Module) {
	r.registry.Load(modules...)
}

// RegisterObject makes obj available to every function under name.
func (r *Runner) RegisterObject(name string, obj any) error {
	return r.objects.Put(name, obj)
}

// RegisterObjects registers every entry of objs.
func (r *Runner) RegisterObjects(objs map[string]any) error {
	return r.objects.PutAll(objs)
}

// Functions returns the registered function names, sorted.
func (r *Runner) Functions() []string {
	return r.registry.Names()
}

// Pipelines returns the loaded pipelines in load order.
func (r *Runner) Pipelines() []*config.Pipeline {
	return r.pipelines
}

// ResultsDir returns the directory result streams are written to.
func (r *Runner) ResultsDir() string {
	return r.resultsDir
}

// Close flushes and closes every open result stream. It is safe to call
// more than once.
func (r *Runner) Close() error {
	return r.streams.Close()
}
