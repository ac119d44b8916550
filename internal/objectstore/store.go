package objectstore

import (
	"errors"
	"log/slog"
	"maps"
	"sort"
)

// ErrEmptyName is returned when an object is put without a name.
var ErrEmptyName = errors.New("shared object name must not be empty")

// Store maps names to arbitrary shared objects.
type Store struct {
	logger   *slog.Logger
	objects  map[string]any
	reserved func(name string) bool
}

// New creates an empty store. reserved may be nil.
func New(logger *slog.Logger, reserved func(name string) bool) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		logger:   logger,
		objects:  make(map[string]any),
		reserved: reserved,
	}
}

// Put stores obj under name, replacing any previous object.
func (s *Store) Put(name string, obj any) error {
	if name == "" {
		return ErrEmptyName
	}
	if s.reserved != nil && s.reserved(name) {
		s.logger.Warn("Shared object name shadows a registered function.", "name", name)
	}
	if _, exists := s.objects[name]; exists {
		s.logger.Warn("Shared object already loaded, overwriting.", "name", name)
	}
	s.objects[name] = obj
	s.logger.Debug("Shared object stored.", "name", name)
	return nil
}

// PutAll stores every entry of objs in sorted key order. It stops at the
// first invalid name.
func (s *Store) PutAll(objs map[string]any) error {
	if len(objs) == 0 {
		s.logger.Warn("No shared objects given, expected name/object pairs.")
		return nil
	}
	names := make([]string, 0, len(objs))
	for name := range objs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := s.Put(name, objs[name]); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the object stored under name.
func (s *Store) Get(name string) (any, bool) {
	obj, ok := s.objects[name]
	return obj, ok
}

// All returns a copy of the store contents.
func (s *Store) All() map[string]any {
	return maps.Clone(s.objects)
}

// Len returns the number of stored objects.
func (s *Store) Len() int {
	return len(s.objects)
}
