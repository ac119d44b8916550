// Package constant provides the `constant` function, which returns its
// argument unchanged. It is mostly useful as one side of a comparison
// against a known expected value.
package constant

import (
	"context"
	"fmt"

	"github.com/specialistvlad/funcgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Constant returns the `value` argument as is, nil included.
func Constant(_ context.Context, args registry.Args) (any, string, error) {
	v, err := args.Value("value")
	if err != nil {
		return nil, "", err
	}
	return v, fmt.Sprintf("constant=%v", v), nil
}

// Register registers the function with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register("constant", Constant)
}
