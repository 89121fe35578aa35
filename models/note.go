// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// Default titles applied by the note service.
const (
	// DefaultNoteTitle is the title given to a freshly created note.
	DefaultNoteTitle = "New Note"

	// UntitledNoteTitle replaces an empty title on save.
	UntitledNoteTitle = "Untitled"
)

// Note is a single unit of user content kept in the notes collection.
//
// Content holds either the plaintext body or a sealed base64 blob,
// depending on Encrypted. The title is never encrypted so the collection can
// be listed and searched without the passphrase.
type Note struct {
	// ID is an opaque unique identifier generated at creation.
	ID string `json:"id"`

	// Title is the display string of the note.
	Title string `json:"title"`

	// Content is the plaintext body when Encrypted is false, otherwise the
	// base64 encoded nonce || ciphertext || tag blob.
	Content string `json:"content"`

	// Encrypted tells how Content must be interpreted. It is fixed at save
	// time for that revision of the note.
	Encrypted bool `json:"encrypted"`

	// CreatedAt is the creation time in epoch milliseconds. Immutable.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is the time of the last save in epoch milliseconds.
	UpdatedAt int64 `json:"updatedAt"`

	// Tags is the ordered list of labels attached to the note.
	Tags []string `json:"tags"`
}

// Clone returns a deep copy of the note so callers can't alias the tag slice
// held by the store.
func (n Note) Clone() Note {
	out := n
	out.Tags = slices.Clone(n.Tags)
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return out
}

// Updated returns the last modification time as [time.Time].
func (n Note) Updated() time.Time {
	return time.UnixMilli(n.UpdatedAt)
}

// Created returns the creation time as [time.Time].
func (n Note) Created() time.Time {
	return time.UnixMilli(n.CreatedAt)
}
