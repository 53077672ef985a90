package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog operations
var (
	// ErrBookNotFound indicates no book carries the requested id
	ErrBookNotFound = errors.New("book not found")

	// ErrInvalidInput indicates a user-supplied value was rejected
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidStatus indicates a status outside the known set
	ErrInvalidStatus = fmt.Errorf("%w: invalid status", ErrInvalidInput)

	// ErrCorruptStore indicates the persisted collection could not be decoded
	ErrCorruptStore = errors.New("corrupt store")

	// ErrStoreIO indicates the store could not be read at all
	ErrStoreIO = errors.New("store unreadable")
)
