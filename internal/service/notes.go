// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const maxIDAttempts = 8

// noteService is the default [NoteService].
//
// mu is held for the whole of every operation, crypto and storage included,
// so operations never interleave. notes always mirrors the last collection
// that was successfully persisted (or loaded).
type noteService struct {
	mu         sync.Mutex
	notes      []models.Note
	passphrase string

	repo   store.NoteRepository
	sealer crypto.Sealer
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewNoteService returns a [NoteService] with an empty collection. Call
// LoadAll to read the stored one.
func NewNoteService(repo store.NoteRepository, sealer crypto.Sealer, ids IDGenerator, logger *logger.Logger) NoteService {
	return &noteService{
		notes:  []models.Note{},
		repo:   repo,
		sealer: sealer,
		ids:    ids,
		now:    time.Now,
		logger: logger,
	}
}

func (s *noteService) SetPassphrase(passphrase string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.passphrase = passphrase
}

func (s *noteService) LoadAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*noteService.LoadAll").Msg("error loading notes")
		return fmt.Errorf("%w: load notes: %w", ErrPersistence, err)
	}

	s.notes = notes
	s.logger.Info().Str("func", "*noteService.LoadAll").Int("count", len(notes)).Msg("notes loaded")
	return nil
}

func (s *noteService) PersistAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(ctx, s.notes)
}

func (s *noteService) Create(ctx context.Context, encrypted bool) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.contentFor("", encrypted)
	if err != nil {
		s.logger.Err(err).Str("func", "*noteService.Create").Msg("error sealing empty note")
		return models.Note{}, fmt.Errorf("create note: %w", err)
	}

	id, err := s.newID()
	if err != nil {
		s.logger.Err(err).Str("func", "*noteService.Create").Msg("error generating note id")
		return models.Note{}, fmt.Errorf("create note: %w", err)
	}

	now := s.now().UnixMilli()
	note := models.Note{
		ID:        id,
		Title:     models.DefaultNoteTitle,
		Content:   content,
		Encrypted: encrypted,
		CreatedAt: now,
		UpdatedAt: now,
		Tags:      []string{},
	}

	next := make([]models.Note, 0, len(s.notes)+1)
	next = append(next, note)
	next = append(next, s.notes...)

	if err = s.commit(ctx, next); err != nil {
		return models.Note{}, err
	}

	s.logger.Debug().Str("func", "*noteService.Create").Str("id", note.ID).Bool("encrypted", encrypted).Msg("note created")
	return note.Clone(), nil
}

func (s *noteService) Save(ctx context.Context, id, title, plaintext string, encrypted bool) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Note{}, fmt.Errorf("save note %s: %w", id, ErrNotFound)
	}
	if !utf8.ValidString(title) || !utf8.ValidString(plaintext) {
		return models.Note{}, fmt.Errorf("save note %s: %w", id, ErrInvalidText)
	}

	content, err := s.contentFor(plaintext, encrypted)
	if err != nil {
		s.logger.Err(err).Str("func", "*noteService.Save").Str("id", id).Msg("error sealing note")
		return models.Note{}, fmt.Errorf("save note %s: %w", id, err)
	}

	if title == "" {
		title = models.UntitledNoteTitle
	}

	updated := s.notes[idx].Clone()
	updated.Title = title
	updated.Content = content
	updated.Encrypted = encrypted
	updated.UpdatedAt = s.touch(updated)

	next := slices.Clone(s.notes)
	next[idx] = updated

	if err = s.commit(ctx, next); err != nil {
		return models.Note{}, err
	}

	s.logger.Debug().Str("func", "*noteService.Save").Str("id", id).Bool("encrypted", encrypted).Msg("note saved")
	return updated.Clone(), nil
}

func (s *noteService) Reveal(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return "", fmt.Errorf("reveal note %s: %w", id, ErrNotFound)
	}

	note := s.notes[idx]
	if !note.Encrypted {
		return note.Content, nil
	}

	plaintext, err := s.sealer.Open(note.Content, s.passphrase)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*noteService.Reveal").Str("id", id).Msg("cannot decrypt note")
		return "", fmt.Errorf("reveal note %s: %w", id, err)
	}

	return plaintext, nil
}

func (s *noteService) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}

	next := slices.Delete(slices.Clone(s.notes), idx, idx+1)
	if err := s.commit(ctx, next); err != nil {
		return false, err
	}

	s.logger.Debug().Str("func", "*noteService.Remove").Str("id", id).Msg("note removed")
	return true, nil
}

func (s *noteService) SetTags(ctx context.Context, id string, tags []string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Note{}, fmt.Errorf("tag note %s: %w", id, ErrNotFound)
	}
	for _, tag := range tags {
		if !utf8.ValidString(tag) {
			return models.Note{}, fmt.Errorf("tag note %s: %w", id, ErrInvalidText)
		}
	}

	updated := s.notes[idx].Clone()
	updated.Tags = NormalizeTags(tags)
	updated.UpdatedAt = s.touch(updated)

	next := slices.Clone(s.notes)
	next[idx] = updated

	if err := s.commit(ctx, next); err != nil {
		return models.Note{}, err
	}

	s.logger.Debug().Str("func", "*noteService.SetTags").Str("id", id).Strs("tags", updated.Tags).Msg("note tags set")
	return updated.Clone(), nil
}

func (s *noteService) List() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneNotes(s.notes, nil)
}

func (s *noteService) Get(id string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Note{}, fmt.Errorf("get note %s: %w", id, ErrNotFound)
	}
	return s.notes[idx].Clone(), nil
}

func (s *noteService) Search(query string) []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	return cloneNotes(s.notes, func(n models.Note) bool {
		return strings.Contains(strings.ToLower(n.Title), q)
	})
}

func (s *noteService) FilterByTag(tag string) []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	tag = strings.TrimSpace(tag)
	return cloneNotes(s.notes, func(n models.Note) bool {
		return slices.ContainsFunc(n.Tags, func(t string) bool {
			return strings.EqualFold(t, tag)
		})
	})
}

// commit persists next and makes it the current collection. On failure the
// current collection is kept untouched.
func (s *noteService) commit(ctx context.Context, next []models.Note) error {
	if err := s.repo.PersistAll(ctx, next); err != nil {
		s.logger.Err(err).Str("func", "*noteService.commit").Msg("error persisting notes")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	s.notes = next
	return nil
}

// contentFor returns what is stored as content for plaintext.
func (s *noteService) contentFor(plaintext string, encrypted bool) (string, error) {
	if !encrypted {
		return plaintext, nil
	}
	return s.sealer.Seal(plaintext, s.passphrase)
}

// touch returns the new updatedAt of note, never earlier than what it
// already carries so that a clock step backwards cannot break ordering.
func (s *noteService) touch(note models.Note) int64 {
	return max(s.now().UnixMilli(), note.UpdatedAt, note.CreatedAt)
}

func (s *noteService) newID() (string, error) {
	for range maxIDAttempts {
		id := s.ids.Generate()
		if id != "" && s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}

func (s *noteService) indexOf(id string) int {
	return slices.IndexFunc(s.notes, func(n models.Note) bool {
		return n.ID == id
	})
}

func cloneNotes(notes []models.Note, keep func(models.Note) bool) []models.Note {
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if keep == nil || keep(n) {
			out = append(out, n.Clone())
		}
	}
	return out
}

// NormalizeTags trims every tag and drops empty entries and repeats that
// differ only in case. The first spelling of a tag wins and order is kept.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}
