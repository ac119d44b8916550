// Package env_vars exposes environment variables as comparison values.
package env_vars

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/specialistvlad/funcgrid/internal/ctxlog"
	"github.com/specialistvlad/funcgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// EnvNumber parses the variable named by `name` as a number. An unset
// variable yields a nil value; a value that is not a number is an error.
func EnvNumber(ctx context.Context, args registry.Args) (any, string, error) {
	name, err := args.String("name")
	if err != nil {
		return nil, "", err
	}

	raw, ok := os.LookupEnv(name)
	if !ok {
		ctxlog.FromContext(ctx).Debug("Environment variable not set.", "name", name)
		return nil, fmt.Sprintf("$%s unset", name), nil
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, "", fmt.Errorf("environment variable %s is not a number: %w", name, err)
	}
	return v, fmt.Sprintf("$%s=%v", name, v), nil
}

// Register registers the function with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register("env_number", EnvNumber)
}
