// Package catalog implements the book operations on top of a BookStore.
// Every call loads the full collection and, if it changed anything,
// writes the full collection back.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmcdole/shelf/internal/domain"
)

// Service performs catalog operations against a store.
type Service struct {
	store  domain.BookStore
	logger *slog.Logger
}

// NewService creates a new catalog service
func NewService(store domain.BookStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Add creates a book with the next free id and status in_stock.
func (s *Service) Add(title, author string, year int) (domain.Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" {
		return domain.Book{}, fmt.Errorf("%w: title must not be empty", domain.ErrInvalidInput)
	}
	if author == "" {
		return domain.Book{}, fmt.Errorf("%w: author must not be empty", domain.ErrInvalidInput)
	}

	books, err := s.load()
	if err != nil {
		return domain.Book{}, err
	}

	book := domain.NewBook(domain.NextID(books), title, author, year)
	books = append(books, book)
	if err := s.save(books); err != nil {
		return domain.Book{}, err
	}

	s.logger.Info("book added", "id", book.ID, "title", book.Title)
	return book, nil
}

// Delete removes the book with the given id. A missing id is reported
// as ErrBookNotFound and nothing is written.
func (s *Service) Delete(id int) error {
	books, err := s.load()
	if err != nil {
		return err
	}

	i := domain.IndexOf(books, id)
	if i < 0 {
		s.logger.Warn("delete: book not found", "id", id)
		return fmt.Errorf("%w: id %d", domain.ErrBookNotFound, id)
	}

	books = append(books[:i], books[i+1:]...)
	if err := s.save(books); err != nil {
		return err
	}

	s.logger.Info("book deleted", "id", id)
	return nil
}

// Search returns books whose title or author contains query (ignoring case)
// or whose year is exactly query. Store order is preserved.
func (s *Service) Search(query string) ([]domain.Book, error) {
	books, err := s.load()
	if err != nil {
		return nil, err
	}

	m := newMatcher(query)
	results := []domain.Book{}
	for _, b := range books {
		if m.Match(b) {
			results = append(results, b)
		}
	}

	s.logger.Debug("search complete", "query", query, "results", len(results))
	return results, nil
}

// List returns every book in store order
func (s *Service) List() ([]domain.Book, error) {
	return s.load()
}

// Get returns the book with the given id
func (s *Service) Get(id int) (domain.Book, error) {
	books, err := s.load()
	if err != nil {
		return domain.Book{}, err
	}
	i := domain.IndexOf(books, id)
	if i < 0 {
		return domain.Book{}, fmt.Errorf("%w: id %d", domain.ErrBookNotFound, id)
	}
	return books[i], nil
}

// UpdateStatus sets the status of one book. The raw status is validated
// before the store is touched; only the status field changes.
func (s *Service) UpdateStatus(id int, raw string) (domain.Book, error) {
	status, err := domain.ParseStatus(raw)
	if err != nil {
		s.logger.Debug("update status: rejected", "id", id, "status", raw)
		return domain.Book{}, err
	}

	books, err := s.load()
	if err != nil {
		return domain.Book{}, err
	}

	i := domain.IndexOf(books, id)
	if i < 0 {
		s.logger.Warn("update status: book not found", "id", id)
		return domain.Book{}, fmt.Errorf("%w: id %d", domain.ErrBookNotFound, id)
	}

	books[i].Status = status
	if err := s.save(books); err != nil {
		return domain.Book{}, err
	}

	s.logger.Info("status updated", "id", id, "status", status)
	return books[i], nil
}

func (s *Service) load() ([]domain.Book, error) {
	books, err := s.store.Load()
	if err != nil {
		s.logger.Error("failed to load books", "error", err)
		if !errors.Is(err, domain.ErrCorruptStore) {
			err = fmt.Errorf("%w: %w", domain.ErrStoreIO, err)
		}
		return nil, err
	}
	return books, nil
}

func (s *Service) save(books []domain.Book) error {
	if err := s.store.Save(books); err != nil {
		s.logger.Error("failed to save books", "error", err)
		return fmt.Errorf("failed to save books: %w", err)
	}
	return nil
}
