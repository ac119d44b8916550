package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/funcgrid/internal/check"
)

var (
	// ErrPrecondition marks every error caused by configuration or arguments
	// rather than by a function's own logic.
	ErrPrecondition = errors.New("precondition failed")

	// ErrArgCollision is returned by Merge when a step argument shadows a
	// shared object.
	ErrArgCollision = fmt.Errorf("%w: argument collides with shared object", ErrPrecondition)
)

// ArgError describes a missing or ill-typed argument.
type ArgError struct {
	Key    string
	Reason string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("argument %q: %s", e.Key, e.Reason)
}

// Unwrap makes every ArgError match ErrPrecondition.
func (e *ArgError) Unwrap() error {
	return ErrPrecondition
}

// Args is the keyword-argument set passed to a Func: the step's own
// arguments merged with the shared objects.
type Args map[string]any

// Merge combines step arguments with shared objects into a fresh Args. A
// key present in both is rejected.
func Merge(kwargs map[string]any, shared map[string]any) (Args, error) {
	out := make(Args, len(kwargs)+len(shared))
	var collisions []string
	for k, v := range kwargs {
		if _, clash := shared[k]; clash {
			collisions = append(collisions, k)
			continue
		}
		out[k] = v
	}
	if len(collisions) > 0 {
		sort.Strings(collisions)
		return nil, fmt.Errorf("%w: %s", ErrArgCollision, strings.Join(collisions, ", "))
	}
	for k, v := range shared {
		out[k] = v
	}
	return out, nil
}

// Value returns the raw argument, which may itself be nil.
func (a Args) Value(key string) (any, error) {
	v, ok := a[key]
	if !ok {
		return nil, &ArgError{Key: key, Reason: "missing"}
	}
	return v, nil
}

// Float returns a numeric argument as float64.
func (a Args) Float(key string) (float64, error) {
	v, err := a.Value(key)
	if err != nil {
		return 0, err
	}
	f, ok := check.AsNumber(v)
	if !ok {
		return 0, &ArgError{Key: key, Reason: fmt.Sprintf("expected a number, got %T", v)}
	}
	return f, nil
}

// Floats returns a list argument whose elements are all numeric.
func (a Args) Floats(key string) ([]float64, error) {
	v, err := a.Value(key)
	if err != nil {
		return nil, err
	}
	switch list := v.(type) {
	case []float64:
		return list, nil
	case []any:
		out := make([]float64, 0, len(list))
		for i, item := range list {
			f, ok := check.AsNumber(item)
			if !ok {
				return nil, &ArgError{Key: key, Reason: fmt.Sprintf("element %d: expected a number, got %T", i, item)}
			}
			out = append(out, f)
		}
		return out, nil
	default:
		return nil, &ArgError{Key: key, Reason: fmt.Sprintf("expected a list of numbers, got %T", v)}
	}
}

// String returns a string argument.
func (a Args) String(key string) (string, error) {
	v, err := a.Value(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &ArgError{Key: key, Reason: fmt.Sprintf("expected a string, got %T", v)}
	}
	return s, nil
}

// StringOr returns a string argument, or def when the key is absent.
func (a Args) StringOr(key, def string) (string, error) {
	if _, ok := a[key]; !ok {
		return def, nil
	}
	return a.String(key)
}

// Object returns a typed argument, typically a shared object such as a
// database handle.
func Object[T any](a Args, key string) (T, error) {
	var zero T
	v, err := a.Value(key)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, &ArgError{Key: key, Reason: fmt.Sprintf("expected %T, got %T", zero, v)}
	}
	return t, nil
}
