package resultlog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// Stream is one named result log.
type Stream struct {
	Name   string
	Path   string
	Logger *slog.Logger
	closer io.Closer
}

// NewStream wraps w in a Handler. closer may be nil.
func NewStream(name, path string, w io.Writer, closer io.Closer) *Stream {
	return &Stream{
		Name:   name,
		Path:   path,
		Logger: slog.New(NewHandler(w, slog.LevelInfo)),
		closer: closer,
	}
}

// Critical logs msg at LevelCritical.
func (s *Stream) Critical(msg string) {
	s.Logger.Log(context.Background(), LevelCritical, msg)
}

// Factory opens the stream called name inside dir.
type Factory func(dir, name string) (*Stream, error)

// FileFactory opens `<dir>/<name>.log` for appending.
func FileFactory(dir, name string) (*Stream, error) {
	path := filepath.Join(dir, name+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open result log %s: %w", path, err)
	}
	return NewStream(name, path, f, f), nil
}

// Streams is the owned registry of open streams, keyed by name.
type Streams struct {
	dir     string
	factory Factory
	open    map[string]*Stream
}

// NewStreams creates an empty registry. A nil factory means FileFactory.
func NewStreams(dir string, factory Factory) *Streams {
	if factory == nil {
		factory = FileFactory
	}
	return &Streams{dir: dir, factory: factory, open: make(map[string]*Stream)}
}

// Get returns the stream called name, opening it on first use.
func (s *Streams) Get(name string) (*Stream, error) {
	if st, ok := s.open[name]; ok {
		return st, nil
	}
	st, err := s.factory(s.dir, name)
	if err != nil {
		return nil, err
	}
	s.open[name] = st
	return st, nil
}

// Names returns the names of all open streams, sorted.
func (s *Streams) Names() []string {
	names := make([]string, 0, len(s.open))
	for name := range s.open {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close syncs and closes every stream and clears the registry. Calling it
// again is a no-op.
func (s *Streams) Close() error {
	var errs []error
	for _, name := range s.Names() {
		st := s.open[name]
		if syncer, ok := st.closer.(interface{ Sync() error }); ok {
			if err := syncer.Sync(); err != nil {
				errs = append(errs, fmt.Errorf("sync %s: %w", name, err))
			}
		}
		if st.closer != nil {
			if err := st.closer.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", name, err))
			}
		}
	}
	clear(s.open)
	return errors.Join(errs...)
}
