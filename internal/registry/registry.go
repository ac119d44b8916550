package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// ErrFuncNotFound is returned by Resolve for unknown names.
var ErrFuncNotFound = fmt.Errorf("%w: function not found", ErrPrecondition)

// Func is the contract every registered function implements. value is a
// number or nil, fragment is a short human-readable description that ends
// up in the result line.
type Func func(ctx context.Context, args Args) (value any, fragment string, err error)

// Module is the interface that function sources implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered functions for a single runner instance.
type Registry struct {
	logger *slog.Logger
	funcs  map[string]Func
}

// New creates an empty Registry. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger: logger,
		funcs:  make(map[string]Func),
	}
}

// Load registers every function of the given modules, in order.
func (r *Registry) Load(modules ...Module) {
	for _, mod := range modules {
		mod.Register(r)
	}
	r.logger.Debug("Function modules loaded.", "modules", len(modules), "functions", len(r.funcs))
}

// Register adds fn under name. It returns false, and keeps the existing
// function, if the name is already taken.
func (r *Registry) Register(name string, fn Func) bool {
	if name == "" || fn == nil {
		r.logger.Warn("Ignoring function with empty name or nil body.", "name", name)
		return false
	}
	if _, exists := r.funcs[name]; exists {
		r.logger.Warn("Function already registered, skipping.", "name", name)
		return false
	}
	r.logger.Debug("Registering function.", "name", name)
	r.funcs[name] = fn
	return true
}

// Resolve returns the function registered under name.
func (r *Registry) Resolve(name string) (Func, error) {
	fn, ok := r.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFuncNotFound, name)
	}
	return fn, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsPrecondition reports whether err stems from a configuration or argument
// problem rather than a failure inside a function.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrPrecondition)
}
