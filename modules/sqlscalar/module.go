// Package sqlscalar runs single-value SQL queries through the shared `db`
// object, a bun connection registered by the host.
package sqlscalar

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/specialistvlad/funcgrid/internal/ctxlog"
	"github.com/specialistvlad/funcgrid/internal/registry"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// ObjectName is the shared object sql_scalar reads its connection from.
const ObjectName = "db"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Open creates a Postgres-backed bun.DB for dsn. No connection is made
// until the first query.
func Open(dsn string) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(1)
	return db
}

// Scalar runs `query` with the optional positional `args` and returns the
// first column of the first row. NULL yields a nil value.
func Scalar(ctx context.Context, args registry.Args) (any, string, error) {
	db, err := registry.Object[bun.IConn](args, ObjectName)
	if err != nil {
		return nil, "", err
	}
	query, err := args.String("query")
	if err != nil {
		return nil, "", err
	}

	var params []any
	if raw, ok := args["args"]; ok && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return nil, "", &registry.ArgError{Key: "args", Reason: fmt.Sprintf("expected a list, got %T", raw)}
		}
		params = list
	}

	ctxlog.FromContext(ctx).Debug("Running scalar query.", "query", query, "args", len(params))

	var v sql.NullFloat64
	if err := db.QueryRowContext(ctx, query, params...).Scan(&v); err != nil {
		return nil, "", fmt.Errorf("scalar query failed: %w", err)
	}
	if !v.Valid {
		return nil, "sql_scalar=NULL", nil
	}
	return v.Float64, fmt.Sprintf("sql_scalar=%v", v.Float64), nil
}

// Register registers the function with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register("sql_scalar", Scalar)
}
