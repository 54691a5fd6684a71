package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const storeVersion = "1.0"

// FileStore implements Store on a single JSON file. Every Set rewrites the
// whole file atomically through a temporary file and rename, mirroring the
// synchronous write-through behavior the journal expects: once an intent's
// save returns, the data is on disk.
type FileStore struct {
	path    string
	mu      sync.RWMutex
	records map[string]string
}

// NewFileStore opens (or initializes) the store file at path. If path is
// empty, it defaults to ~/.mimi/journal.json. A missing file starts the
// store empty; an unreadable or undecodable file is an error, since
// continuing would overwrite data the user may still want.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("store: resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".mimi", "journal.json")
	}

	s := &FileStore{
		path:    path,
		records: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("store: read %s: %w", s.path, err)
	}

	var file struct {
		Version string            `json:"version"`
		Records map[string]string `json:"records"`
	}
	if err := json.Unmarshal(b, &file); err != nil {
		return fmt.Errorf("store: decode %s: %w", s.path, err)
	}
	if file.Records != nil {
		s.records = file.Records
	}
	return nil
}

// Get returns the value for key and whether the key exists.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.records[key]
	return value, ok
}

// Set overwrites the value for key and flushes the store file. Failures are
// wrapped in ErrWrite and leave the previous on-disk state intact.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.records[key]
	s.records[key] = value
	if err := s.flush(); err != nil {
		if existed {
			s.records[key] = previous
		} else {
			delete(s.records, key)
		}
		return err
	}
	return nil
}

func (s *FileStore) flush() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrWrite, dir, err)
	}

	file := struct {
		Version string            `json:"version"`
		Records map[string]string `json:"records"`
	}{
		Version: storeVersion,
		Records: s.records,
	}
	b, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrWrite, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("%w: write temp file: %v", ErrWrite, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("%w: rename %s: %v", ErrWrite, s.path, err)
	}
	return nil
}

// Path returns the file path backing the store.
func (s *FileStore) Path() string {
	return s.path
}
