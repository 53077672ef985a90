package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mmcdole/shelf/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketCatalog = []byte("catalog")
	keyBooks      = []byte("books")
)

// BoltStore keeps the serialized collection under a single key of a
// BoltDB file. The encoding is the same one JSONStore writes.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the database at path.
// BoltDB holds an exclusive file lock while open; a second process gives
// up after one second.
func NewBoltStore(path string) (*BoltStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCatalog)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Load() ([]domain.Book, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCatalog)
		if b == nil {
			return nil
		}
		// Values are only valid for the life of the transaction
		if v := b.Get(keyBooks); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read bolt db: %w", err)
	}

	if data == nil {
		return []domain.Book{}, nil
	}
	return decodeBooks(data)
}

func (s *BoltStore) Save(books []domain.Book) error {
	data, err := encodeBooks(books)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketCatalog)
		if err != nil {
			return err
		}
		return b.Put(keyBooks, data)
	})
}

func (s *BoltStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
