package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDerivation turns a passphrase into a fixed-length symmetric key.
// Implementations must be deterministic for fixed parameters and deliberately
// slow.
type KeyDerivation interface {
	// DeriveKey returns a [KeySize]-byte key for passphrase. An empty
	// passphrase is accepted.
	DeriveKey(passphrase string) []byte
}

// AeadCipher provides authenticated encryption of a byte payload.
type AeadCipher interface {
	// NewNonce returns a fresh random nonce of [NonceSize] bytes.
	NewNonce() ([]byte, error)

	// Seal encrypts and authenticates plaintext. The result is
	// ciphertext || tag.
	Seal(key, nonce, plaintext []byte) ([]byte, error)

	// Open verifies and decrypts ciphertext produced by Seal. Any
	// modification of nonce, ciphertext or tag, as well as a wrong key,
	// yields [ErrAuthenticationFailure].
	Open(key, nonce, ciphertext []byte) ([]byte, error)
}

// BlobCodec frames nonce and ciphertext into a printable string and back.
type BlobCodec interface {
	// Encode returns base64(nonce || ciphertext).
	Encode(nonce, ciphertext []byte) string

	// Decode splits a blob produced by Encode. Returns [ErrFormat] for
	// invalid base64 or frames shorter than the nonce.
	Decode(text string) (nonce, ciphertext []byte, err error)
}

// Sealer is the outward seal/open contract used by the note service.
type Sealer interface {
	// Seal encrypts plaintext under the key derived from passphrase and
	// returns the encoded blob.
	Seal(plaintext, passphrase string) (string, error)

	// Open recovers the plaintext of blob. It never returns partially
	// decrypted data: on failure the string is empty and the error matches
	// [ErrDecryption].
	Open(blob, passphrase string) (string, error)
}
