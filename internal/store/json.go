package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mmcdole/shelf/internal/domain"
	"github.com/natefinch/atomic"
)

// JSONStore keeps the collection in a single JSON file.
type JSONStore struct {
	path string
}

// NewJSONStore returns a store backed by the file at path.
// The file is created on the first save.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Load() ([]domain.Book, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Book{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	books, err := decodeBooks(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return books, nil
}

// Save replaces the file atomically: readers see either the old or the new
// collection, never a partial write.
func (s *JSONStore) Save(books []domain.Book) error {
	data, err := encodeBooks(books)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}
