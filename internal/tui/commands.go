package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shelf/internal/domain"
)

// Command factories for catalog operations

// LoadBooksCmd loads every book, or only the matches when query is set
func LoadBooksCmd(c Catalog, query string) tea.Cmd {
	return func() tea.Msg {
		var (
			books []domain.Book
			err   error
		)
		if query == "" {
			books, err = c.List()
		} else {
			books, err = c.Search(query)
		}
		if err != nil {
			return ErrMsg{Err: err, Context: "loading books"}
		}
		return BooksLoadedMsg{Books: books, Query: query}
	}
}

// SetStatusCmd changes the status of one book
func SetStatusCmd(c Catalog, id int, status domain.Status) tea.Cmd {
	return func() tea.Msg {
		book, err := c.UpdateStatus(id, string(status))
		if err != nil {
			return ErrMsg{Err: err, Context: "updating status"}
		}
		return StatusUpdatedMsg{Book: book}
	}
}

// DeleteBookCmd removes one book
func DeleteBookCmd(c Catalog, book domain.Book) tea.Cmd {
	return func() tea.Msg {
		if err := c.Delete(book.ID); err != nil {
			return ErrMsg{Err: err, Context: "deleting book"}
		}
		return BookDeletedMsg{ID: book.ID, Title: book.Title}
	}
}
