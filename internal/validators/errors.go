package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyNoteID       = errors.New("note id is required")
	ErrDuplicateNoteID   = errors.New("duplicate note id")
	ErrInvalidTimestamps = errors.New("note updatedAt precedes createdAt")
	ErrMissingTimestamp  = errors.New("note timestamps are required")
	ErrMalformedContent  = errors.New("encrypted note content is not a well-formed blob")
	ErrEmptyTag          = errors.New("note tag cannot be empty")
	ErrNilNoteCollection = errors.New("note collection cannot be nil")
)
