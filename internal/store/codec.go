package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mmcdole/shelf/internal/domain"
)

// indent matches the layout of hand-edited books.json files
const indent = "    "

// encodeBooks serializes the collection as an indented JSON array.
// Non-ASCII text is written as-is and the output ends with a newline,
// so decoding and re-encoding a file produced here is byte-stable.
func encodeBooks(books []domain.Book) ([]byte, error) {
	if books == nil {
		books = []domain.Book{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(books); err != nil {
		return nil, fmt.Errorf("failed to encode books: %w", err)
	}
	return buf.Bytes(), nil
}

// decodeBooks parses a serialized collection, rejecting anything that is not
// a well-formed list of books. Empty input and JSON null are an empty list.
func decodeBooks(data []byte) ([]domain.Book, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []domain.Book{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var books []domain.Book
	if err := dec.Decode(&books); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptStore, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after book list", domain.ErrCorruptStore)
	}

	if err := validateBooks(books); err != nil {
		return nil, err
	}
	if books == nil {
		books = []domain.Book{}
	}
	return books, nil
}

func validateBooks(books []domain.Book) error {
	seen := make(map[int]bool, len(books))
	for i, b := range books {
		if b.ID <= 0 {
			return fmt.Errorf("%w: record %d has invalid id %d", domain.ErrCorruptStore, i, b.ID)
		}
		if seen[b.ID] {
			return fmt.Errorf("%w: duplicate id %d", domain.ErrCorruptStore, b.ID)
		}
		seen[b.ID] = true

		// A missing status key never reaches Status.UnmarshalJSON
		if !b.Status.Valid() {
			return fmt.Errorf("%w: record %d has no valid status", domain.ErrCorruptStore, b.ID)
		}
	}
	return nil
}
