package store

import "errors"

// Sentinel errors returned by storages and repositories. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [KeyValueStorage.Get] when nothing has
	// been stored under the requested key yet.
	ErrKeyNotFound = errors.New("key not found")

	// ErrStorageUnavailable is returned (wrapped together with the driver or
	// filesystem error) when the backing medium cannot be read or written.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrCorruptedCollection is returned when the stored note collection
	// cannot be decoded or violates the collection rules (duplicate ids,
	// missing required fields, malformed encrypted content, ...).
	ErrCorruptedCollection = errors.New("stored note collection is corrupted")

	// ErrUnknownBackend is returned by [NewClientStorages] for a backend name
	// it does not know how to open.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
