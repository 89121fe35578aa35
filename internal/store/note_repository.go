// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// NotesStorageKey is the key the whole collection is stored under.
const NotesStorageKey = "dashboard_notes"

// collectionFields are checked on every collection read or written. Blob
// framing is not among them; a corrupted encrypted note loads and reports
// ErrFormat when it is revealed.
var collectionFields = []string{
	validators.FieldUniqueIDs,
	validators.FieldID,
	validators.FieldTimestamps,
	validators.FieldTags,
}

// noteRecord mirrors [models.Note] on the wire. Required fields are pointers
// so that an absent field can be told apart from its zero value.
type noteRecord struct {
	ID        *string  `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Encrypted *bool    `json:"encrypted"`
	CreatedAt *int64   `json:"createdAt"`
	UpdatedAt *int64   `json:"updatedAt"`
	Tags      []string `json:"tags"`
}

// noteRepository keeps the collection as one JSON array in a [KeyValueStorage].
type noteRepository struct {
	storage   KeyValueStorage
	validator validators.Validator
	key       string
	logger    *logger.Logger
}

// NewNoteRepository returns a [NoteRepository] writing to storage under
// [NotesStorageKey]. validator is applied to every collection read from or
// written to the storage.
func NewNoteRepository(storage KeyValueStorage, validator validators.Validator, log *logger.Logger) NoteRepository {
	log.Debug().Msg("creating note repository")
	return &noteRepository{
		storage:   storage,
		validator: validator,
		key:       NotesStorageKey,
		logger:    log,
	}
}

// LoadAll reads and validates the stored collection. A key that was never
// written yields an empty collection.
func (r *noteRepository) LoadAll(ctx context.Context) ([]models.Note, error) {
	raw, err := r.storage.Get(ctx, r.key)
	if errors.Is(err, ErrKeyNotFound) {
		return []models.Note{}, nil
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*noteRepository.LoadAll").Msg("error reading collection")
		return nil, err
	}

	notes, err := decodeNotes(raw)
	if err != nil {
		r.logger.Err(err).Str("func", "*noteRepository.LoadAll").Msg("error decoding collection")
		return nil, err
	}

	if err = r.validator.Validate(ctx, notes, collectionFields...); err != nil {
		r.logger.Err(err).Str("func", "*noteRepository.LoadAll").Msg("stored collection is invalid")
		return nil, fmt.Errorf("%w: %w", ErrCorruptedCollection, err)
	}

	r.logger.Debug().Str("func", "*noteRepository.LoadAll").Int("count", len(notes)).Msg("collection loaded")
	return notes, nil
}

// PersistAll overwrites the stored collection with notes. The same input
// always produces the same bytes.
func (r *noteRepository) PersistAll(ctx context.Context, notes []models.Note) error {
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Clone())
	}

	if err := r.validator.Validate(ctx, out, collectionFields...); err != nil {
		r.logger.Err(err).Str("func", "*noteRepository.PersistAll").Msg("refusing to persist invalid collection")
		return fmt.Errorf("%w: %w", ErrCorruptedCollection, err)
	}

	payload, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	if err = r.storage.Put(ctx, r.key, payload); err != nil {
		r.logger.Err(err).Str("func", "*noteRepository.PersistAll").Msg("error writing collection")
		return err
	}

	r.logger.Debug().Str("func", "*noteRepository.PersistAll").Int("count", len(out)).Msg("collection persisted")
	return nil
}

// decodeNotes parses the stored array strictly: unknown fields, trailing data
// and missing required fields are all rejected.
func decodeNotes(raw []byte) ([]models.Note, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var records []noteRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedCollection, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after collection", ErrCorruptedCollection)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: collection is not an array", ErrCorruptedCollection)
	}

	notes := make([]models.Note, 0, len(records))
	for i, rec := range records {
		note, err := rec.toNote()
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrCorruptedCollection, i, err)
		}
		notes = append(notes, note)
	}
	return notes, nil
}

func (rec noteRecord) toNote() (models.Note, error) {
	switch {
	case rec.ID == nil:
		return models.Note{}, errors.New("missing id")
	case rec.Encrypted == nil:
		return models.Note{}, errors.New("missing encrypted")
	case rec.CreatedAt == nil:
		return models.Note{}, errors.New("missing createdAt")
	case rec.UpdatedAt == nil:
		return models.Note{}, errors.New("missing updatedAt")
	}

	tags := rec.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.Note{
		ID:        *rec.ID,
		Title:     rec.Title,
		Content:   rec.Content,
		Encrypted: *rec.Encrypted,
		CreatedAt: *rec.CreatedAt,
		UpdatedAt: *rec.UpdatedAt,
		Tags:      tags,
	}, nil
}
