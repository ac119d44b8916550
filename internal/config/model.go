// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

// Step attribute keys.
const (
	KeyFuncLeft      = "func_left"
	KeyFuncRight     = "func_right"
	KeyKwargsLeft    = "kwargs_left"
	KeyKwargsRight   = "kwargs_right"
	KeySeverityLevel = "severity_level"
)

// Pipeline is the unified representation of one configuration file.
type Pipeline struct {
	// Source is the path the pipeline was loaded from.
	Source string
	// Default holds the raw default section, nil when the file has none.
	Default map[string]any
	// Steps are kept in declaration order.
	Steps []*Step
}

// Step is one named comparison, attributes untouched.
type Step struct {
	Name       string
	Attributes map[string]any
}

// FuncRefs returns every function name referenced by a string valued
// func_left or func_right attribute, in step order.
func (p *Pipeline) FuncRefs() []string {
	var refs []string
	for _, s := range p.Steps {
		for _, key := range []string{KeyFuncLeft, KeyFuncRight} {
			if name, ok := s.Attributes[key].(string); ok {
				refs = append(refs, name)
			}
		}
	}
	return refs
}
