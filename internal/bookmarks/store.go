// Package bookmarks persists the set of saved event ids. The store is the
// single source of truth for "is this event saved": every view reads from
// the one shared instance rather than keeping its own copy.
package bookmarks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// fileVersion guards the on-disk schema so a future layout change can
// migrate instead of silently misreading.
const fileVersion = 1

type fileSchema struct {
	Version int      `json:"version"`
	IDs     []string `json:"ids"`
}

// Store is a mutex-guarded set of event ids backed by a JSON file.
// Mutations persist synchronously; there is no network involved.
type Store struct {
	mu   sync.Mutex
	path string
	ids  map[string]struct{}
}

// Open loads the store at path, treating a missing file as an empty set.
// A file written by a newer schema version is an error, not a guess.
func Open(path string) (*Store, error) {
	s := &Store{path: path, ids: make(map[string]struct{})}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read bookmarks file: %w", err)
	}

	var file fileSchema
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse bookmarks file %s: %w", path, err)
	}
	if file.Version > fileVersion {
		return nil, fmt.Errorf("bookmarks file %s has unsupported version %d", path, file.Version)
	}
	for _, id := range file.IDs {
		if id != "" {
			s.ids[id] = struct{}{}
		}
	}
	return s, nil
}

// Add marks an event as saved. Adding an existing id is a no-op.
func (s *Store) Add(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; ok {
		return nil
	}
	s.ids[id] = struct{}{}
	return s.save()
}

// Remove unmarks an event. Removing a non-member id is a no-op.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; !ok {
		return nil
	}
	delete(s.ids, id)
	return s.save()
}

// Toggle flips membership and reports the new state.
func (s *Store) Toggle(id string) (saved bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false, s.save()
	}
	s.ids[id] = struct{}{}
	return true, s.save()
}

// Contains reports whether the event is saved.
func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// IDs returns a sorted copy of the saved ids.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of saved ids.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// save writes the current set. Callers hold the mutex.
func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create bookmarks dir: %w", err)
	}
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	raw, err := json.MarshalIndent(fileSchema{Version: fileVersion, IDs: ids}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write bookmarks file: %w", err)
	}
	return nil
}
