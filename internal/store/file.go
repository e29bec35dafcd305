package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists all documents in a single JSON file, one top-level field
// per key. Every Set rewrites the whole file, mirroring the whole-snapshot
// write model of the rest of the system. The store assumes a single writing
// process; external edits between Open and Close are overwritten.
type FileStore struct {
	mu   sync.Mutex
	path string
	docs map[string]json.RawMessage
}

// OpenFileStore loads the file at path, creating its directory if needed. A
// missing file starts the store empty; the file itself is created on the
// first Set.
func OpenFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	s := &FileStore{path: path, docs: make(map[string]json.RawMessage)}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.docs); err != nil {
			return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
		}
	}
	return s, nil
}

// Get returns the document under key, or ErrKeyNotFound.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

// Set replaces the document under key and rewrites the backing file.
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := make(json.RawMessage, len(value))
	copy(doc, value)
	s.docs[key] = doc
	return s.flushLocked()
}

// flushLocked writes the full document map through a temp file rename so a
// crash mid-write cannot truncate existing data.
func (s *FileStore) flushLocked() error {
	raw, err := json.MarshalIndent(s.docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

// Close is a no-op; every Set already flushes.
func (s *FileStore) Close() error {
	return nil
}
