package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field names accepted by [NoteValidator].
const (
	// FieldID requires a non-empty id.
	FieldID = "id"
	// FieldTimestamps requires positive timestamps with updatedAt >= createdAt.
	FieldTimestamps = "timestamps"
	// FieldContent requires encrypted content to decode as a blob frame.
	FieldContent = "content"
	// FieldTags rejects empty tag entries.
	FieldTags = "tags"
	// FieldUniqueIDs applies to collections only and rejects repeated ids.
	FieldUniqueIDs = "unique_ids"
)

var defaultNoteFields = []string{FieldID, FieldTimestamps, FieldContent, FieldTags}

// NoteValidator validates [models.Note] values and whole collections of them.
type NoteValidator struct {
	codec crypto.BlobCodec
}

// NewNoteValidator builds a validator that checks encrypted content with codec.
func NewNoteValidator(codec crypto.BlobCodec) Validator {
	return &NoteValidator{codec: codec}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)
	case []models.Note:
		return v.validateCollection(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultNoteFields
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if note.ID == "" {
				return ErrEmptyNoteID
			}
		case FieldTimestamps:
			if note.CreatedAt <= 0 || note.UpdatedAt <= 0 {
				return ErrMissingTimestamp
			}
			if note.UpdatedAt < note.CreatedAt {
				return ErrInvalidTimestamps
			}
		case FieldContent:
			if !note.Encrypted {
				continue
			}
			if _, _, err := v.codec.Decode(note.Content); err != nil {
				return fmt.Errorf("%w: %w", ErrMalformedContent, err)
			}
		case FieldTags:
			for _, tag := range note.Tags {
				if tag == "" {
					return ErrEmptyTag
				}
			}
		case FieldUniqueIDs:
			// collection-level rule, nothing to check on a single note
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateCollection(ctx context.Context, notes []models.Note, fields ...string) error {
	if notes == nil {
		return ErrNilNoteCollection
	}
	if len(fields) == 0 {
		fields = append([]string{FieldUniqueIDs}, defaultNoteFields...)
	}

	seen := make(map[string]struct{}, len(notes))
	for i, note := range notes {
		if err := v.validateNote(ctx, note, fields...); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
		if !contains(fields, FieldUniqueIDs) {
			continue
		}
		if _, dup := seen[note.ID]; dup {
			return fmt.Errorf("validation error at index %d: %w: %q", i, ErrDuplicateNoteID, note.ID)
		}
		seen[note.ID] = struct{}{}
	}

	return nil
}

func contains(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
