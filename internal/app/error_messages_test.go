package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "invalid text", err: fmt.Errorf("save note x: %w", service.ErrInvalidText), want: MsgInvalidText},
		{name: "not found", err: fmt.Errorf("reveal note x: %w", service.ErrNotFound), want: MsgNoteNotFound},
		{name: "authentication", err: fmt.Errorf("reveal note x: %w", crypto.ErrAuthenticationFailure), want: MsgWrongPassphrase},
		{name: "format", err: fmt.Errorf("%w: decode base64", crypto.ErrFormat), want: MsgCorruptedContent},
		{name: "decryption umbrella", err: crypto.ErrDecryption, want: MsgCannotDecrypt},
		{
			name: "storage unavailable",
			err:  fmt.Errorf("%w: %w", service.ErrPersistence, store.ErrStorageUnavailable),
			want: MsgStorageUnavailable,
		},
		{
			name: "corrupted collection",
			err:  fmt.Errorf("%w: load notes: %w", service.ErrPersistence, store.ErrCorruptedCollection),
			want: MsgCorruptedCollection,
		},
		{name: "other persistence", err: fmt.Errorf("%w: boom", service.ErrPersistence), want: MsgPersistenceFailed},
		{name: "config", err: fmt.Errorf("%w: bad backend", config.ErrInvalidStorageConfigs), want: MsgInvalidConfig},
		{name: "unknown", err: errors.New("boom"), want: MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
