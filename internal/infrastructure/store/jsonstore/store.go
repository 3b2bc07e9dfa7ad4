// Package jsonstore is the default storage backend: one JSON document per
// named collection, kept on local disk. Every write replaces the whole
// collection file atomically (write to a temp file, then rename), so a
// failure mid-write leaves the previous value intact. That whole-value
// replacement is the storage contract the rest of the system is built on.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
)

// Store reads and writes named JSON collections under a single directory.
// All mutations serialize on a store-wide lock, so no two writes interleave.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// Open prepares a store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", domain.ErrPersistence, err)
	}
	return &Store{dir: dir}, nil
}

// Load decodes the named collection into v. A collection that has never been
// written decodes as the zero value and is not an error.
func (s *Store) Load(name string, v any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load(name, v)
}

// Save atomically replaces the named collection with v.
func (s *Store) Save(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(name, v)
}

// Mutate loads the named collection into v, applies fn, and saves the result
// under one lock. This is how appends and in-place record updates are
// expressed on top of whole-collection replacement.
func (s *Store) Mutate(name string, v any, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(name, v); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}
	return s.save(name, v)
}

func (s *Store) load(name string, v any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: read %s: %v", domain.ErrPersistence, name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrPersistence, name, err)
	}
	return nil
}

func (s *Store) save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrPersistence, name, err)
	}

	path := s.path(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrPersistence, name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: replace %s: %v", domain.ErrPersistence, name, err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
