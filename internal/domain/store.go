package domain

// BookStore persists the whole book collection as one ordered sequence.
// Every catalog operation loads the collection fresh and saves it back
// only when it changed. There is no locking: two processes sharing a
// store race and the last writer wins.
type BookStore interface {
	// Load returns the stored collection in store order.
	// A store that does not exist yet yields an empty collection.
	// Undecodable content yields an error wrapping ErrCorruptStore.
	Load() ([]Book, error)

	// Save overwrites the stored collection
	Save(books []Book) error

	Close() error
}
