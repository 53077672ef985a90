package tui

import "github.com/mmcdole/shelf/internal/domain"

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap exposes the underlying error to errors.Is
func (e ErrMsg) Unwrap() error {
	return e.Err
}

// BooksLoadedMsg signals that the book list has been (re)loaded
type BooksLoadedMsg struct {
	Books []domain.Book
	Query string
}

// StatusUpdatedMsg signals a successful status change
type StatusUpdatedMsg struct {
	Book domain.Book
}

// BookDeletedMsg signals a successful delete
type BookDeletedMsg struct {
	ID    int
	Title string
}
