package store

import (
	"github.com/mmcdole/shelf/internal/domain"
)

// MemoryStore holds the serialized collection in memory.
// It uses the same encoding as the file backends, so a test can compare
// stored bytes before and after an operation.
type MemoryStore struct {
	data   []byte
	writes int
}

// NewMemoryStore returns a store preloaded with data (nil = empty store)
func NewMemoryStore(data []byte) *MemoryStore {
	return &MemoryStore{data: append([]byte(nil), data...)}
}

func (s *MemoryStore) Load() ([]domain.Book, error) {
	if s.data == nil {
		return []domain.Book{}, nil
	}
	return decodeBooks(s.data)
}

func (s *MemoryStore) Save(books []domain.Book) error {
	data, err := encodeBooks(books)
	if err != nil {
		return err
	}
	s.data = data
	s.writes++
	return nil
}

// Bytes returns a copy of the stored bytes
func (s *MemoryStore) Bytes() []byte {
	return append([]byte(nil), s.data...)
}

// Writes returns how many times Save succeeded
func (s *MemoryStore) Writes() int {
	return s.writes
}

func (s *MemoryStore) Close() error {
	return nil
}
