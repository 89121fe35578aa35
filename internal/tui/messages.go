package tui

import (
	"github.com/MKhiriev/go-notes-keeper/models"
)

type notesLoadedMsg struct {
	err error
}

type noteCreatedMsg struct {
	note models.Note
	err  error
}

type noteRevealedMsg struct {
	note      models.Note
	plaintext string
	err       error
}

type noteSavedMsg struct {
	note      models.Note
	plaintext string
	err       error
}

type tagsSavedMsg struct {
	note models.Note
	err  error
}

type noteRemovedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
