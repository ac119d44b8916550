package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/funcgrid/internal/config"
)

// translate converts the decoded HCL blocks into the agnostic model.
func (l *Loader) translate(root *fileRoot) (*config.Pipeline, error) {
	p := &config.Pipeline{}

	switch len(root.Defaults) {
	case 0:
	case 1:
		attrs, err := bodyAttributes(root.Defaults[0].Body)
		if err != nil {
			return nil, fmt.Errorf("defaults block: %w", err)
		}
		p.Default = attrs
	default:
		return nil, fmt.Errorf("only one defaults block is allowed, found %d", len(root.Defaults))
	}

	seen := make(map[string]struct{}, len(root.Steps))
	for _, s := range root.Steps {
		if _, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("duplicate step %q", s.Name)
		}
		seen[s.Name] = struct{}{}

		attrs, err := bodyAttributes(s.Body)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", s.Name, err)
		}
		p.Steps = append(p.Steps, &config.Step{Name: s.Name, Attributes: attrs})
	}

	return p, nil
}

// bodyAttributes evaluates every attribute of a block body into native Go
// values. Nested blocks are rejected by JustAttributes.
func bodyAttributes(body hcl.Body) (map[string]any, error) {
	if body == nil {
		return map[string]any{}, nil
	}
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	out := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		native, err := ctyToNative(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		out[name] = native
	}
	return out, nil
}
