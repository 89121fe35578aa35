// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording shared by the go-notes-keeper
// front-ends (the TUI and notesctl).
//
// All Msg* constants are human-readable strings shown to the user instead of
// raw wrapped errors. UserMessage picks the right one for an error returned by
// the service layer.
package app

import (
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

const (
	// MsgNoteNotFound is shown when an operation targets an id that is not in
	// the collection (deleted meanwhile or mistyped on the command line).
	MsgNoteNotFound = "note not found"

	// MsgWrongPassphrase is shown when the GCM tag of an encrypted note does
	// not verify: the passphrase is wrong or the content was tampered with.
	MsgWrongPassphrase = "cannot decrypt note: wrong passphrase or tampered content"

	// MsgCorruptedContent is shown when the stored content of an encrypted
	// note is not a valid ciphertext blob.
	MsgCorruptedContent = "cannot decrypt note: stored content is corrupted"

	// MsgCannotDecrypt is the generic decryption failure message.
	MsgCannotDecrypt = "cannot decrypt note"

	// MsgStorageUnavailable is shown when the storage medium cannot be read
	// or written. The in-memory collection is left as it was.
	MsgStorageUnavailable = "storage unavailable, changes were not saved"

	// MsgCorruptedCollection is shown when the stored collection cannot be
	// parsed or fails validation on load.
	MsgCorruptedCollection = "stored notes are corrupted"

	// MsgPersistenceFailed is shown for any other persistence failure.
	MsgPersistenceFailed = "cannot save notes"

	// MsgInvalidText is shown when a title, body or tag is not valid UTF-8.
	MsgInvalidText = "note text must be valid UTF-8"

	// MsgInvalidConfig is shown when the configuration is rejected on start.
	MsgInvalidConfig = "invalid configuration"

	// MsgInternalError is shown when nothing more specific applies.
	MsgInternalError = "internal error"
)

// UserMessage returns the message to display for err, or "" for a nil error.
// More specific kinds are checked before their umbrellas.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrNotFound):
		return MsgNoteNotFound
	case errors.Is(err, service.ErrInvalidText):
		return MsgInvalidText
	case errors.Is(err, crypto.ErrAuthenticationFailure):
		return MsgWrongPassphrase
	case errors.Is(err, crypto.ErrFormat):
		return MsgCorruptedContent
	case errors.Is(err, crypto.ErrDecryption):
		return MsgCannotDecrypt
	case errors.Is(err, store.ErrStorageUnavailable):
		return MsgStorageUnavailable
	case errors.Is(err, store.ErrCorruptedCollection):
		return MsgCorruptedCollection
	case errors.Is(err, service.ErrPersistence):
		return MsgPersistenceFailed
	case errors.Is(err, config.ErrInvalidStorageConfigs), errors.Is(err, config.ErrInvalidLogConfigs):
		return MsgInvalidConfig
	default:
		return MsgInternalError
	}
}
