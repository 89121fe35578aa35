// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var fixedNow = time.UnixMilli(1_760_000_000_000)

type sequenceIDs struct{ n int }

func (g *sequenceIDs) Generate() string {
	g.n++
	return fmt.Sprintf("note-%d", g.n)
}

// newTestNoteSvc builds the service on mocked dependencies with a frozen clock.
func newTestNoteSvc(t *testing.T) (*noteService, *mock.MockNoteRepository, *mock.MockSealer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNoteRepository(ctrl)
	sealer := mock.NewMockSealer(ctrl)

	svc := NewNoteService(repo, sealer, &sequenceIDs{}, logger.Nop()).(*noteService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo, sealer
}

func seed(svc *noteService, notes ...models.Note) {
	svc.notes = append([]models.Note{}, notes...)
}

func plainNote(id, title string) models.Note {
	return models.Note{ID: id, Title: title, Content: "body of " + id, CreatedAt: 1, UpdatedAt: 2, Tags: []string{}}
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestNoteService_Create_Plain(t *testing.T) {
	svc, repo, _ := newTestNoteSvc(t)
	seed(svc, plainNote("old", "Old"))
	ctx := context.Background()

	repo.EXPECT().PersistAll(ctx, gomock.Len(2)).Return(nil)

	note, err := svc.Create(ctx, false)
	require.NoError(t, err)

	assert.Equal(t, "note-1", note.ID)
	assert.Equal(t, models.DefaultNoteTitle, note.Title)
	assert.Equal(t, "", note.Content)
	assert.False(t, note.Encrypted)
	assert.Equal(t, fixedNow.UnixMilli(), note.CreatedAt)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)
	assert.Equal(t, []string{}, note.Tags)

	list := svc.List()
	require.Len(t, list, 2)
	assert.Equal(t, "note-1", list[0].ID, "new notes go first")
	assert.Equal(t, "old", list[1].ID)
}

func TestNoteService_Create_EncryptedSealsEmptyString(t *testing.T) {
	svc, repo, sealer := newTestNoteSvc(t)
	svc.SetPassphrase("pw")
	ctx := context.Background()

	sealer.EXPECT().Seal("", "pw").Return("BLOB", nil)
	repo.EXPECT().PersistAll(ctx, gomock.Any()).Return(nil)

	note, err := svc.Create(ctx, true)
	require.NoError(t, err)
	assert.True(t, note.Encrypted)
	assert.Equal(t, "BLOB", note.Content)
}

func TestNoteService_Create_SealError(t *testing.T) {
	svc, _, sealer := newTestNoteSvc(t)

	sealer.EXPECT().Seal("", "").Return("", errors.New("no entropy"))

	_, err := svc.Create(context.Background(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create note")
	assert.Empty(t, svc.List())
}

func TestNoteService_Create_PersistFailureRollsBack(t *testing.T) {
	svc, repo, _ := newTestNoteSvc(t)
	seed(svc, plainNote("a", "A"))

	repo.EXPECT().PersistAll(gomock.Any(), gomock.Any()).Return(store.ErrStorageUnavailable)

	_, err := svc.Create(context.Background(), false)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)

	list := svc.List()
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].ID)
}

func TestNoteService_Create_SkipsTakenIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNoteRepository(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)
	svc := NewNoteService(repo, mock.NewMockSealer(ctrl), ids, logger.Nop()).(*noteService)
	seed(svc, plainNote("taken", "T"))

	gomock.InOrder(
		ids.EXPECT().Generate().Return("taken"),
		ids.EXPECT().Generate().Return(""),
		ids.EXPECT().Generate().Return("fresh"),
	)
	repo.EXPECT().PersistAll(gomock.Any(), gomock.Any()).Return(nil)

	note, err := svc.Create(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "fresh", note.ID)
}

func TestNoteService_Create_IDExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := mock.NewMockIDGenerator(ctrl)
	svc := NewNoteService(mock.NewMockNoteRepository(ctrl), mock.NewMockSealer(ctrl), ids, logger.Nop())

	ids.EXPECT().Generate().Return("").Times(maxIDAttempts)

	_, err := svc.Create(context.Background(), false)
	assert.ErrorIs(t, err, ErrIDExhausted)
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestNoteService_Save_Encrypted(t *testing.T) {
	svc, repo, sealer := newTestNoteSvc(t)
	existing := plainNote("a", "A")
	existing.Tags = []string{"keep"}
	seed(svc, plainNote("z", "Z"), existing)
	svc.SetPassphrase("pw")
	ctx := context.Background()

	sealer.EXPECT().Seal("hello", "pw").Return("SEALED", nil)
	repo.EXPECT().PersistAll(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, notes []models.Note) error {
		require.Len(t, notes, 2)
		assert.Equal(t, "z", notes[0].ID, "order is unchanged")
		assert.Equal(t, "SEALED", notes[1].Content)
		return nil
	})

	note, err := svc.Save(ctx, "a", "Greeting", "hello", true)
	require.NoError(t, err)
	assert.Equal(t, "Greeting", note.Title)
	assert.Equal(t, "SEALED", note.Content)
	assert.True(t, note.Encrypted)
	assert.Equal(t, existing.CreatedAt, note.CreatedAt)
	assert.Equal(t, fixedNow.UnixMilli(), note.UpdatedAt)
	assert.Equal(t, []string{"keep"}, note.Tags)
}

func TestNoteService_Save_PlainIsVerbatim(t *testing.T) {
	svc, repo, _ := newTestNoteSvc(t)
	enc := plainNote("a", "A")
	enc.Encrypted = true
	enc.Content = "OLD-BLOB"
	seed(svc, enc)

	repo.EXPECT().PersistAll(gomock.Any(), gomock.Any()).Return(nil)

	note, err := svc.Save(context.Background(), "a", "A", "now in the clear", false)
	require.NoError(t, err)
	assert.False(t, note.Encrypted)
	assert.Equal(t, "now in the clear", note.Content)
}

func TestNoteService_Save_EmptyTitleBecomesUntitled(t *testing.T) {
	svc, repo, _ := newTestNoteSvc(t)
	seed(svc, plainNote("a", "A"))

	repo.EXPECT().PersistAll(gomock.Any(), gomock.Any()).Return(nil)

	note, err := svc.Save(context.Background(), "a", "", "x", false)
	require.NoError(t, err)
	assert.Equal(t, models.UntitledNoteTitle, note.Title)
}

func TestNoteService_Save_NotFound(t *testing.T) {
	svc, _, _ := newTestNoteSvc(t)

	_, err := svc.Save(context.Background(), "missing", "T", "x", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoteService_Save_RejectsInvalidUTF8(t *testing.T) {
	svc, _, _ := newTestNoteSvc(t)
	original := plainNote("a", "A")
	seed(svc, original)

	_, err := svc.Save(context.Background(), "a", "T", "bad \xff byte", false)
	assert.ErrorIs(t, err, ErrInvalidText)

	_, err = svc.Save(context.Background(), "a", "\xc3\x28", "x", true)
	assert.ErrorIs(t, err, ErrInvalidText)

	got, err := svc.Get("a")
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestNoteService_Save_ClockBehindKeepsOrdering(t *testing.T) {
	svc, repo, _ := newTestNoteSvc(t)
	future := plainNote("a", "A")
	future.CreatedAt = fixedNow.UnixMilli() + 5000
	future.UpdatedAt = future.CreatedAt + 10
	seed(svc, future)

	repo.EXPECT().PersistAll(gomock.Any(), gomock.Any()).Return(nil)

	note, err := svc.Save(context.Background(), "a", "A", "x", false)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, note.UpdatedAt, note.CreatedAt)
	assert.Equal(t, future.UpdatedAt, note.UpdatedAt)
}

func TestNoteService_Save_PersistFailureRollsBack(t *testing.T) {
	svc, repo, _ := newTestNoteSvc(t)
	original := plainNote("a", "A")
	seed(svc, original)

	repo.EXPECT().PersistAll(gomock.Any(), gomock.Any()).Return(store.ErrStorageUnavailable)

	_, err := svc.Save(context.Background(), "a", "B", "changed", false)
	assert.ErrorIs(t, err, ErrPersistence)

	got, err := svc.Get("a")
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

// ── Reveal ───────────────────────────────────────────────────────────────────

func TestNoteService_Reveal(t *testing.T) {
	svc, _, sealer := newTestNoteSvc(t)
	enc := plainNote("enc", "E")
	enc.Encrypted = true
	enc.Content = "BLOB"
	seed(svc, plainNote("plain", "P"), enc)
	svc.SetPassphrase("pw")
	ctx := context.Background()

	got, err := svc.Reveal(ctx, "plain")
	require.NoError(t, err)
	assert.Equal(t, "body of plain", got)

	sealer.EXPECT().Open("BLOB", "pw").Return("secret", nil)
	got, err = svc.Reveal(ctx, "enc")
	require.NoError(t, err)
	assert.Equal(t, "secret", got)
}

func TestNoteService_Reveal_Failures(t *testing.T) {
	tests := []struct {
		name    string
		openErr error
	}{
		{name: "authentication failure", openErr: crypto.ErrAuthenticationFailure},
		{name: "format error", openErr: crypto.ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, sealer := newTestNoteSvc(t)
			enc := plainNote("enc", "E")
			enc.Encrypted = true
			seed(svc, enc)

			sealer.EXPECT().Open(gomock.Any(), gomock.Any()).Return("", tt.openErr)

			got, err := svc.Reveal(context.Background(), "enc")
			assert.Empty(t, got)
			assert.ErrorIs(t, err, tt.openErr)
		})
	}
}

func TestNoteService_Reveal_NotFound(t *testing.T) {
	svc, _, _ := newTestNoteSvc(t)

	_, err := svc.Reveal(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Remove ───────────────────────────────────────────────────────────────────

func TestNoteService_Remove(t *testing.T) {
	svc, repo, _ := newTestNoteSvc(t)
	seed(svc, plainNote("a", "A"), plainNote("b", "B"), plainNote("c", "C"))

	repo.EXPECT().PersistAll(gomock.Any(), gomock.Len(2)).Return(nil)

	removed, err := svc.Remove(context.Background(), "b")
	require.NoError(t, err)
	assert.True(t, removed)

	list := svc.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "c", list[1].ID)
}

func TestNoteService_Remove_UnknownDoesNotPersist(t *testing.T) {
	svc, _, _ := newTestNoteSvc(t)
	seed(svc, plainNote("a", "A"))

	// no PersistAll expectation: any call fails the test
	removed, err := svc.Remove(context.Background(), "zzz")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestNoteService_Remove_PersistFailureRollsBack(t *testing.T) {
	svc, repo, _ := newTestNoteSvc(t)
	seed(svc, plainNote("a", "A"))

	repo.EXPECT().PersistAll(gomock.Any(), gomock.Any()).Return(store.ErrStorageUnavailable)

	removed, err := svc.Remove(context.Background(), "a")
	assert.False(t, removed)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Len(t, svc.List(), 1)
}

// ── Tags ─────────────────────────────────────────────────────────────────────

func TestNoteService_SetTags(t *testing.T) {
	svc, repo, _ := newTestNoteSvc(t)
	seed(svc, plainNote("a", "A"))

	repo.EXPECT().PersistAll(gomock.Any(), gomock.Any()).Return(nil)

	note, err := svc.SetTags(context.Background(), "a", []string{" Work ", "home", "", "work", "HOME", "ideas"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Work", "home", "ideas"}, note.Tags)
	assert.Equal(t, fixedNow.UnixMilli(), note.UpdatedAt)
}

func TestNoteService_SetTags_NotFound(t *testing.T) {
	svc, _, _ := newTestNoteSvc(t)

	_, err := svc.SetTags(context.Background(), "a", []string{"x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoteService_SetTags_RejectsInvalidUTF8(t *testing.T) {
	svc, _, _ := newTestNoteSvc(t)
	seed(svc, plainNote("a", "A"))

	_, err := svc.SetTags(context.Background(), "a", []string{"ok", "\xff"})
	assert.ErrorIs(t, err, ErrInvalidText)
}

func TestNoteService_FilterByTag(t *testing.T) {
	svc, _, _ := newTestNoteSvc(t)
	a := plainNote("a", "A")
	a.Tags = []string{"Work"}
	b := plainNote("b", "B")
	b.Tags = []string{"home"}
	c := plainNote("c", "C")
	c.Tags = []string{"home", "work"}
	seed(svc, a, b, c)

	got := svc.FilterByTag("WORK")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)

	assert.Empty(t, svc.FilterByTag("travel"))
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{}, NormalizeTags(nil))
	assert.Equal(t, []string{"a", "B"}, NormalizeTags([]string{"a", " ", "B", "A", "b"}))
}

// ── Search / List / Get ──────────────────────────────────────────────────────

func TestNoteService_Search(t *testing.T) {
	svc, _, _ := newTestNoteSvc(t)
	seed(svc,
		plainNote("1", "Hello World"),
		plainNote("2", "Shopping"),
		plainNote("3", "othello notes"),
	)

	tests := []struct {
		query string
		want  []string
	}{
		{query: "hel", want: []string{"1", "3"}},
		{query: "HELLO", want: []string{"1", "3"}},
		{query: "", want: []string{"1", "2", "3"}},
		{query: "body", want: []string{}},
		{query: "xyz", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := svc.Search(tt.query)
			ids := make([]string, 0, len(got))
			for _, n := range got {
				ids = append(ids, n.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestNoteService_ListReturnsCopies(t *testing.T) {
	svc, _, _ := newTestNoteSvc(t)
	n := plainNote("a", "A")
	n.Tags = []string{"t"}
	seed(svc, n)

	list := svc.List()
	list[0].Title = "mutated"
	list[0].Tags[0] = "mutated"

	got, err := svc.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, []string{"t"}, got.Tags)
}

func TestNoteService_Get_NotFound(t *testing.T) {
	svc, _, _ := newTestNoteSvc(t)

	_, err := svc.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── LoadAll / PersistAll ─────────────────────────────────────────────────────

func TestNoteService_LoadAll(t *testing.T) {
	svc, repo, _ := newTestNoteSvc(t)
	seed(svc, plainNote("stale", "S"))

	repo.EXPECT().LoadAll(gomock.Any()).Return([]models.Note{plainNote("a", "A")}, nil)

	require.NoError(t, svc.LoadAll(context.Background()))
	list := svc.List()
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].ID)
}

func TestNoteService_LoadAll_FailureKeepsCollection(t *testing.T) {
	svc, repo, _ := newTestNoteSvc(t)
	seed(svc, plainNote("a", "A"))

	repo.EXPECT().LoadAll(gomock.Any()).Return(nil, store.ErrCorruptedCollection)

	err := svc.LoadAll(context.Background())
	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, store.ErrCorruptedCollection)
	assert.Len(t, svc.List(), 1)
}

func TestNoteService_PersistAll(t *testing.T) {
	svc, repo, _ := newTestNoteSvc(t)
	notes := []models.Note{plainNote("a", "A"), plainNote("b", "B")}
	seed(svc, notes...)

	repo.EXPECT().PersistAll(gomock.Any(), notes).Return(nil)
	require.NoError(t, svc.PersistAll(context.Background()))

	repo.EXPECT().PersistAll(gomock.Any(), notes).Return(store.ErrStorageUnavailable)
	assert.ErrorIs(t, svc.PersistAll(context.Background()), ErrPersistence)
}
