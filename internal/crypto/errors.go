package crypto

import (
	"errors"
	"fmt"
)

// Decryption errors. Both ErrAuthenticationFailure and ErrFormat wrap
// ErrDecryption so callers that only need "cannot decrypt" can match the
// umbrella error.
var (
	// ErrDecryption is the umbrella error for every failure to recover
	// plaintext from a stored blob.
	ErrDecryption = errors.New("cannot decrypt note content")

	// ErrAuthenticationFailure is returned when the GCM tag does not verify:
	// wrong passphrase or tampered nonce/ciphertext/tag.
	ErrAuthenticationFailure = fmt.Errorf("%w: authentication failed", ErrDecryption)

	// ErrFormat is returned when the stored content is not a valid
	// base64(nonce || ciphertext) frame.
	ErrFormat = fmt.Errorf("%w: malformed ciphertext blob", ErrDecryption)
)

// Argument errors. These indicate a programming error in the caller rather
// than bad stored data.
var (
	// ErrInvalidKey is returned when a key is not exactly [KeySize] bytes.
	ErrInvalidKey = errors.New("invalid key length")

	// ErrInvalidNonce is returned when a nonce is not exactly [NonceSize] bytes.
	ErrInvalidNonce = errors.New("invalid nonce length")
)
