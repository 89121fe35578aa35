package cli

import "errors"

var (
	// ErrNoTerminal is returned when a passphrase is needed but none is
	// configured and stdin is not a terminal to prompt on.
	ErrNoTerminal = errors.New("cannot prompt for passphrase: stdin is not a terminal, set APP_NOTES_PASSPHRASE")

	// ErrEmptyPassphrase is returned when the prompt is answered with nothing.
	ErrEmptyPassphrase = errors.New("empty passphrase")
)
