// Package prefs is the browser-local preference storage of the site: a flat
// string map kept in a small JSON file.
package prefs

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

// ThemeKey is the storage key holding the "dark" or "light" choice
const ThemeKey = "theme"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store is a string key-value preference store
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// MemoryStore keeps preferences for the life of the process
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value stored under key
func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// FileStore persists preferences as a JSON object on disk
type FileStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
}

// DefaultPath returns the storage file location under the user config dir
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, "portfoliofx", "storage.json"), nil
}

// OpenFileStore loads the store at path. A missing file is an empty store;
// the file is created on the first Set.
func OpenFileStore(path string) (*FileStore, error) {
	values, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path, values: values}, nil
}

// Open opens the file store at path, or at DefaultPath when path is empty
func Open(path string) (*FileStore, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return OpenFileStore(path)
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Get returns the value stored under key
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and writes the file
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.values[key]
	s.values[key] = value
	if err := writeFile(s.path, s.values); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// Reload replaces the in-memory view with the file contents
func (s *FileStore) Reload() (map[string]string, error) {
	values, _, err := s.reload()
	return values, err
}

// reload reads the file under the lock so it cannot interleave with Set.
// changed is false when the file holds what this store already has, which is
// the case after its own writes.
func (s *FileStore) reload() (values map[string]string, changed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err = readFile(s.path)
	if err != nil {
		return nil, false, err
	}
	changed = !maps.Equal(values, s.values)
	s.values = values
	return Snapshot(values), changed, nil
}

// Snapshot copies a value map
func Snapshot(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	maps.Copy(out, values)
	return out
}

func readFile(path string) (map[string]string, error) {
	values := make(map[string]string)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode preferences %s: %w", path, err)
	}
	return values, nil
}

// writeFile replaces path atomically through a temp file in the same dir
func writeFile(path string, values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create preferences dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".storage-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace preferences: %w", err)
	}
	return nil
}
