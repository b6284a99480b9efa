package run

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

//go:generate go tool mockgen -destination=./mocks/store_mock.go -package=mocks . Store

// Store is a single-slot key-value storage for the save blob.
type Store interface {
	// Read returns the stored blob or ErrNoSave when the slot is empty.
	Read() ([]byte, error)
	// Write replaces the stored blob.
	Write(data []byte) error
}

// FileStore keeps the save in one file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store writing name inside dir.
func NewFileStore(dir, name string) *FileStore {
	return &FileStore{Path: filepath.Join(dir, name)}
}

func (s *FileStore) Read() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return data, nil
}

// Write пишет во временный файл и переименовывает, чтобы не оставить полусохранённый слот.
func (s *FileStore) Write(data []byte) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp save: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}

// MemoryStore is an in-process store, used by tests and headless runs.
type MemoryStore struct {
	mu     sync.Mutex
	data   []byte
	Writes int
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Read() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, ErrNoSave
	}
	return append([]byte(nil), s.data...), nil
}

func (s *MemoryStore) Write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	s.Writes++
	return nil
}
