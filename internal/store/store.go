// Package store persists the journal document as a single JSON file.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"asthma-journal/internal/model"

	"go.uber.org/zap"
)

// Store defines the operations handlers need from the document store.
type Store interface {
	Read() (*model.Document, error)
	Write(doc *model.Document) error
	Update(fn func(doc *model.Document) error) error
}

// JSONStore keeps the document in one pretty-printed JSON file. Every access
// to the file goes through mu.
type JSONStore struct {
	log  *zap.Logger
	path string
	mu   sync.Mutex
}

// New creates a store backed by the file at path. The file is not touched
// until the first Read, Write or Update.
func New(path string, logger *zap.Logger) *JSONStore {
	return &JSONStore{log: logger, path: path}
}

// Path returns the backing file location.
func (s *JSONStore) Path() string {
	return s.path
}

// Read returns a snapshot of the document, creating the file with the empty
// document if it does not exist yet.
func (s *JSONStore) Read() (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Write replaces the on-disk document.
func (s *JSONStore) Write(doc *model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

// Update runs fn against the current document and persists the result, all
// under one lock acquisition. If fn returns an error nothing is written and
// the error is returned unchanged.
func (s *JSONStore) Update(fn func(doc *model.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

// load must be called with mu held.
func (s *JSONStore) load() (*model.Document, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Error("data file is corrupted", zap.String("path", s.path), zap.Error(err))
		return nil, fmt.Errorf("decode data file %s: %w", s.path, err)
	}
	doc.Normalize()
	return &doc, nil
}

// save must be called with mu held.
func (s *JSONStore) save(doc *model.Document) error {
	if doc == nil {
		return errors.New("nil document")
	}
	doc.Normalize()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	raw, err := encode(doc)
	if err != nil {
		return err
	}
	return replaceFile(s.path, raw)
}

// ensure creates the parent directories and the empty document when the
// data file is missing. Must be called with mu held.
func (s *JSONStore) ensure() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat data file: %w", err)
	}

	s.log.Info("initializing data file", zap.String("path", s.path))
	return s.save(model.NewDocument())
}

func encode(doc *model.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// replaceFile writes data to a temp file next to path and renames it over
// path, so readers never observe a half-written document. An existing file
// keeps its permission bits; a new one gets 0644.
func replaceFile(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
