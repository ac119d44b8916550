// Package mathfn provides aggregate functions over a numeric list passed as
// the `values` argument.
package mathfn

import (
	"context"
	"fmt"
	"math"

	"github.com/specialistvlad/funcgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// aggregate reduces a non-empty list. ok is false when the list is empty
// and the result is undefined.
type aggregate func(values []float64) (result float64, ok bool)

var aggregates = map[string]aggregate{
	"sum": func(vs []float64) (float64, bool) {
		var total float64
		for _, v := range vs {
			total += v
		}
		return total, true
	},
	"mean": func(vs []float64) (float64, bool) {
		if len(vs) == 0 {
			return 0, false
		}
		var total float64
		for _, v := range vs {
			total += v
		}
		return total / float64(len(vs)), true
	},
	"min": func(vs []float64) (float64, bool) {
		if len(vs) == 0 {
			return 0, false
		}
		m := math.Inf(1)
		for _, v := range vs {
			m = math.Min(m, v)
		}
		return m, true
	},
	"max": func(vs []float64) (float64, bool) {
		if len(vs) == 0 {
			return 0, false
		}
		m := math.Inf(-1)
		for _, v := range vs {
			m = math.Max(m, v)
		}
		return m, true
	},
}

// wrap adapts an aggregate to registry.Func. An empty list yields a nil
// value so the comparison reports it instead of inventing a number.
func wrap(name string, agg aggregate) registry.Func {
	return func(_ context.Context, args registry.Args) (any, string, error) {
		values, err := args.Floats("values")
		if err != nil {
			return nil, "", err
		}
		result, ok := agg(values)
		if !ok {
			return nil, fmt.Sprintf("%s of empty list", name), nil
		}
		return result, fmt.Sprintf("%s=%v", name, result), nil
	}
}

// Count returns the number of elements of `values`, which may be of any type.
func Count(_ context.Context, args registry.Args) (any, string, error) {
	v, err := args.Value("values")
	if err != nil {
		return nil, "", err
	}
	list, ok := v.([]any)
	if !ok {
		return nil, "", &registry.ArgError{Key: "values", Reason: fmt.Sprintf("expected a list, got %T", v)}
	}
	return len(list), fmt.Sprintf("count=%d", len(list)), nil
}

// Register registers every aggregate with the registry.
func (m *Module) Register(r *registry.Registry) {
	funcs := registry.Funcs{"count": Count}
	for name, agg := range aggregates {
		funcs[name] = wrap(name, agg)
	}
	funcs.Register(r)
}
