// Package csvdata computes comparison values from local CSV files. Every
// file must start with a header row.
package csvdata

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/specialistvlad/funcgrid/internal/ctxlog"
	"github.com/specialistvlad/funcgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// table is a parsed CSV file.
type table struct {
	headers []string
	rows    [][]string
}

func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	headers, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("CSV file %s has no header row", path)
		}
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	t := &table{headers: headers}
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}

func (t *table) column(name string) (int, bool) {
	for i, h := range t.headers {
		if strings.TrimSpace(h) == name {
			return i, true
		}
	}
	return -1, false
}

// Count returns the number of data rows in the file at `path`.
func Count(ctx context.Context, args registry.Args) (any, string, error) {
	path, err := args.String("path")
	if err != nil {
		return nil, "", err
	}
	t, err := readTable(path)
	if err != nil {
		return nil, "", err
	}
	ctxlog.FromContext(ctx).Debug("CSV file read.", "path", path, "rows", len(t.rows))
	return len(t.rows), fmt.Sprintf("csv_count=%d", len(t.rows)), nil
}

// Sum adds up `column` of the file at `path`. Empty cells are skipped.
func Sum(ctx context.Context, args registry.Args) (any, string, error) {
	path, err := args.String("path")
	if err != nil {
		return nil, "", err
	}
	col, err := args.String("column")
	if err != nil {
		return nil, "", err
	}
	t, err := readTable(path)
	if err != nil {
		return nil, "", err
	}
	idx, ok := t.column(col)
	if !ok {
		return nil, "", &registry.ArgError{Key: "column", Reason: fmt.Sprintf("no column %q in %s", col, path)}
	}

	var total float64
	for i, row := range t.rows {
		if idx >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[idx])
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, "", fmt.Errorf("row %d, column %q: %w", i+2, col, err)
		}
		total += v
	}
	ctxlog.FromContext(ctx).Debug("CSV column summed.", "path", path, "column", col, "rows", len(t.rows))
	return total, fmt.Sprintf("csv_sum(%s)=%v", col, total), nil
}

// Register registers the functions with the registry.
func (m *Module) Register(r *registry.Registry) {
	registry.Funcs{
		"csv_count": Count,
		"csv_sum":   Sum,
	}.Register(r)
}
