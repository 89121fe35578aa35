package tui

import "errors"

// ErrNoNoteService is returned by [New] when no note service is provided.
var ErrNoNoteService = errors.New("tui: note service is not set")

const (
	msgPassphraseRequired = "passphrase is required"
	msgNoNotes            = "no notes"
	msgCannotEdit         = "cannot edit a note that cannot be decrypted"
	msgNothingToCopy      = "nothing to copy"
	msgSaved              = "saved"
	msgTagsSaved          = "tags saved"
	msgDeleted            = "note deleted"
	msgCopied             = "copied to clipboard"
)
