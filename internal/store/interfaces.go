package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStorage is the minimal medium the note collection is written to.
// Implementations own their medium exclusively.
type KeyValueStorage interface {
	// Get returns the value stored under key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) ([]byte, error)
	// Put replaces the value stored under key.
	Put(ctx context.Context, key string, value []byte) error
}

// NoteRepository loads and persists the whole note collection at once.
type NoteRepository interface {
	LoadAll(ctx context.Context) ([]models.Note, error)
	PersistAll(ctx context.Context, notes []models.Note) error
}
