package store

import (
	"fmt"

	"github.com/mmcdole/shelf/internal/domain"
)

// Supported backends
const (
	BackendJSON   = "json"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

var (
	_ domain.BookStore = (*JSONStore)(nil)
	_ domain.BookStore = (*BoltStore)(nil)
	_ domain.BookStore = (*MemoryStore)(nil)
)

// Open returns the store for the named backend. An empty backend means JSON.
func Open(backend, path string) (domain.BookStore, error) {
	switch backend {
	case "", BackendJSON:
		if path == "" {
			return nil, fmt.Errorf("json store requires a path")
		}
		return NewJSONStore(path), nil
	case BackendBolt:
		if path == "" {
			return nil, fmt.Errorf("bolt store requires a path")
		}
		return NewBoltStore(path)
	case BackendMemory:
		return NewMemoryStore(nil), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

// NextID returns the id the next added book would receive.
// It only reads; the caller persists the new record.
func NextID(s domain.BookStore) (int, error) {
	books, err := s.Load()
	if err != nil {
		return 0, err
	}
	return domain.NextID(books), nil
}
