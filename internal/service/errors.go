package service

import "errors"

var (
	// ErrNotFound is returned when no note carries the requested id.
	ErrNotFound = errors.New("note not found")

	// ErrPersistence wraps every failure to load or write the collection.
	// The in-memory collection is left as it was before the failed call.
	ErrPersistence = errors.New("note collection could not be persisted")

	// ErrInvalidText is returned when a title, body or tag is not valid UTF-8.
	// Note text is stored as UTF-8 JSON, which cannot carry arbitrary bytes.
	ErrInvalidText = errors.New("note text is not valid UTF-8")

	// ErrIDExhausted is returned when no unused note id could be generated.
	ErrIDExhausted = errors.New("could not generate a unique note id")
)
