// Package executor runs a single step: it resolves the step's functions,
// calls them with the merged arguments, classifies the two values and
// writes one result line to the file's stream.
//
// A step can fail in two ways. Precondition failures (missing keys, bad
// arguments, unknown functions, invalid severity) are reported as an ERROR
// outcome at severity ERROR. Every other failure, panics included, is
// reported as an uncaught error with no outcome. Neither ever escapes
// RunStep; the only signal a step sends upward is Result.Abort.
package executor

import (
	"github.com/specialistvlad/funcgrid/internal/check"
	"github.com/specialistvlad/funcgrid/internal/objectstore"
	"github.com/specialistvlad/funcgrid/internal/registry"
)

// Executor runs steps against one registry and one object store.
type Executor struct {
	registry  *registry.Registry
	objects   *objectstore.Store
	threshold float64
}

// Option configures an Executor.
type Option func(e *Executor)

// WithWarningThreshold overrides check.DefaultWarningThreshold.
func WithWarningThreshold(threshold float64) Option {
	return func(e *Executor) {
		e.threshold = threshold
	}
}

// New creates an Executor.
func New(reg *registry.Registry, objects *objectstore.Store, opts ...Option) *Executor {
	e := &Executor{
		registry:  reg,
		objects:   objects,
		threshold: check.DefaultWarningThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
