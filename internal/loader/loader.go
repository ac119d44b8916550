// Package loader picks the format-specific config.Loader for each file and
// loads single files or whole directories of pipeline files.
package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/specialistvlad/funcgrid/internal/config"
	"github.com/specialistvlad/funcgrid/internal/ctxlog"
	"github.com/specialistvlad/funcgrid/internal/fsutil"
	"github.com/specialistvlad/funcgrid/internal/hcl"
	"github.com/specialistvlad/funcgrid/internal/yaml"
)

// ErrUnsupportedFormat is returned for files no loader understands.
var ErrUnsupportedFormat = errors.New("unsupported configuration format")

// Set dispatches files to loaders by extension.
type Set struct {
	byExt map[string]config.Loader
}

// New creates a Set. When two loaders claim an extension the first wins.
func New(loaders ...config.Loader) *Set {
	s := &Set{byExt: make(map[string]config.Loader)}
	for _, l := range loaders {
		for _, ext := range l.Extensions() {
			ext = strings.ToLower(ext)
			if _, taken := s.byExt[ext]; !taken {
				s.byExt[ext] = l
			}
		}
	}
	return s
}

// Default returns a Set with the HCL and YAML loaders.
func Default() *Set {
	return New(hcl.NewLoader(), yaml.NewLoader())
}

// Extensions lists every supported extension in sorted order.
func (s *Set) Extensions() []string {
	exts := make([]string, 0, len(s.byExt))
	for ext := range s.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Supports reports whether path has a supported extension.
func (s *Set) Supports(path string) bool {
	return fsutil.HasExtension(path, s.Extensions()...)
}

// LoadFile loads a single regular file.
func (s *Set) LoadFile(ctx context.Context, path string) (*config.Pipeline, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}

	l, ok := s.byExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedFormat, path, strings.Join(s.Extensions(), ", "))
	}
	return l.Load(ctx, path)
}

// LoadDir loads every supported file in dir. Files with other extensions
// and files that fail to load are logged and excluded; only an unreadable
// directory is an error.
func (s *Set) LoadDir(ctx context.Context, dir string, recursive bool) ([]*config.Pipeline, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	files, err := fsutil.FindFiles(dir, recursive)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", dir, err)
	}

	var pipelines []*config.Pipeline
	for _, file := range files {
		if !s.Supports(file) {
			logger.Warn("Unsupported file rejected, only these formats are loaded.", "file", file, "extensions", s.Extensions())
			continue
		}
		p, err := s.LoadFile(ctx, file)
		if err != nil {
			logger.Warn("Error reading file, excluding it from the run.", "file", file, "error", err)
			continue
		}
		pipelines = append(pipelines, p)
	}

	logger.Debug("Directory loaded.", "dir", dir, "files", len(files), "pipelines", len(pipelines))
	return pipelines, nil
}
