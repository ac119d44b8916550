package executor

import (
	"fmt"
	"math"

	"github.com/specialistvlad/funcgrid/internal/config"
	"github.com/specialistvlad/funcgrid/internal/registry"
	"github.com/specialistvlad/funcgrid/internal/severity"
)

// Call is one side of a comparison, ready to invoke.
type Call struct {
	FuncName string
	Fn       registry.Func
	Kwargs   map[string]any
}

// StepSpec is a step with every attribute resolved.
type StepSpec struct {
	Name     string
	Left     Call
	Right    Call
	Severity severity.Level
}

// Resolve turns raw step attributes into a StepSpec. All errors wrap
// registry.ErrPrecondition.
func (e *Executor) Resolve(step *config.Step) (*StepSpec, error) {
	if step.Attributes == nil {
		return nil, fmt.Errorf("%w: step %q must be a mapping of attributes", registry.ErrPrecondition, step.Name)
	}

	left, err := e.resolveCall(step.Attributes, config.KeyFuncLeft, config.KeyKwargsLeft)
	if err != nil {
		return nil, err
	}
	right, err := e.resolveCall(step.Attributes, config.KeyFuncRight, config.KeyKwargsRight)
	if err != nil {
		return nil, err
	}
	level, err := resolveSeverity(step.Attributes)
	if err != nil {
		return nil, err
	}

	return &StepSpec{Name: step.Name, Left: left, Right: right, Severity: level}, nil
}

func (e *Executor) resolveCall(attrs map[string]any, funcKey, kwargsKey string) (Call, error) {
	raw, ok := attrs[funcKey]
	if !ok {
		return Call{}, missingKey(funcKey)
	}
	name, ok := raw.(string)
	if !ok {
		return Call{}, fmt.Errorf("%w: %s must be a function name, got %T", registry.ErrPrecondition, funcKey, raw)
	}
	fn, err := e.registry.Resolve(name)
	if err != nil {
		return Call{}, fmt.Errorf("%s: %w", funcKey, err)
	}

	rawKwargs, ok := attrs[kwargsKey]
	if !ok {
		return Call{}, missingKey(kwargsKey)
	}
	var kwargs map[string]any
	switch kw := rawKwargs.(type) {
	case nil:
		kwargs = map[string]any{}
	case map[string]any:
		kwargs = kw
	default:
		return Call{}, fmt.Errorf("%w: %s must be a mapping of arguments, got %T", registry.ErrPrecondition, kwargsKey, rawKwargs)
	}

	return Call{FuncName: name, Fn: fn, Kwargs: kwargs}, nil
}

func resolveSeverity(attrs map[string]any) (severity.Level, error) {
	raw, ok := attrs[config.KeySeverityLevel]
	if !ok {
		return 0, missingKey(config.KeySeverityLevel)
	}

	var n int
	switch v := raw.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %s must be an integer, got %v", registry.ErrPrecondition, config.KeySeverityLevel, v)
		}
		n = int(v)
	default:
		return 0, fmt.Errorf("%w: %s must be an integer, got %T", registry.ErrPrecondition, config.KeySeverityLevel, raw)
	}

	level, err := severity.Parse(n)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", registry.ErrPrecondition, err)
	}
	return level, nil
}

func missingKey(key string) error {
	return fmt.Errorf("%w: step key %q is missing", registry.ErrPrecondition, key)
}
