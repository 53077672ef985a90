package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status is the availability of a book
type Status string

const (
	StatusInStock    Status = "in_stock"
	StatusCheckedOut Status = "checked_out"
)

// Statuses lists every valid status in display order
var Statuses = []Status{StatusInStock, StatusCheckedOut}

// ParseStatus converts user input into a Status.
// Surrounding whitespace is ignored; the value itself must match exactly.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(s))
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidStatus, s, StatusInStock, StatusCheckedOut)
	}
	return st, nil
}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	return s == StatusInStock || s == StatusCheckedOut
}

// Toggle returns the other status
func (s Status) Toggle() Status {
	if s == StatusCheckedOut {
		return StatusInStock
	}
	return StatusCheckedOut
}

// Label returns a human readable form for display
func (s Status) Label() string {
	switch s {
	case StatusInStock:
		return "in stock"
	case StatusCheckedOut:
		return "checked out"
	default:
		return string(s)
	}
}

// UnmarshalJSON rejects unknown statuses at the decoding boundary
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	st := Status(raw)
	if !st.Valid() {
		return fmt.Errorf("unknown status %q", raw)
	}
	*s = st
	return nil
}

// Book is a single catalog entry.
// Field order matches the persisted key order.
type Book struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Status Status `json:"status"`
}

// NewBook creates a book in the initial in_stock state
func NewBook(id int, title, author string, year int) Book {
	return Book{
		ID:     id,
		Title:  title,
		Author: author,
		Year:   year,
		Status: StatusInStock,
	}
}

// NextID returns 1 for an empty collection, otherwise one more than the
// highest id present.
func NextID(books []Book) int {
	maxID := 0
	for _, b := range books {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	return maxID + 1
}

// IndexOf returns the position of the book with the given id, or -1
func IndexOf(books []Book, id int) int {
	for i, b := range books {
		if b.ID == id {
			return i
		}
	}
	return -1
}
