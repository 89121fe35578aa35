// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteService owns the note collection. Every operation is serialized, and
// every mutation is persisted before it becomes visible.
type NoteService interface {
	// SetPassphrase replaces the secret notes are sealed and opened with.
	SetPassphrase(passphrase string)

	// LoadAll replaces the in-memory collection with the stored one.
	LoadAll(ctx context.Context) error

	// PersistAll writes the in-memory collection to storage.
	PersistAll(ctx context.Context) error

	// Create adds an empty note at the front of the collection. An encrypted
	// note starts with the sealed empty string as its content.
	Create(ctx context.Context, encrypted bool) (models.Note, error)

	// Save stores a new revision of the note: content is sealed when
	// encrypted is set and kept verbatim otherwise. An empty title is stored
	// as "Untitled". Returns [ErrNotFound] for an unknown id.
	Save(ctx context.Context, id, title, plaintext string, encrypted bool) (models.Note, error)

	// Reveal returns the plaintext of the note. Encrypted content that
	// cannot be opened yields an error matching crypto.ErrDecryption.
	Reveal(ctx context.Context, id string) (string, error)

	// Remove deletes the note and reports whether anything was deleted.
	Remove(ctx context.Context, id string) (bool, error)

	// SetTags replaces the tags of the note.
	SetTags(ctx context.Context, id string, tags []string) (models.Note, error)

	// List returns the collection, most recent first.
	List() []models.Note

	// Get returns the stored record, content included as stored.
	Get(id string) (models.Note, error)

	// Search returns notes whose title contains query, ignoring case.
	Search(query string) []models.Note

	// FilterByTag returns notes carrying tag, ignoring case.
	FilterByTag(tag string) []models.Note
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}

// IDGenerator produces unique note identifiers.
type IDGenerator interface {
	Generate() string
}
