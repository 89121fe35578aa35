package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"
)

// newFastSealer keeps the production pipeline but with a cheap KDF so the
// tamper loops stay fast.
func newFastSealer() Sealer {
	return NewSealer(NewKeyDerivation(KDFParams{Iterations: 1000}), NewAeadCipher(), NewBlobCodec())
}

func TestSealer_RoundTrip(t *testing.T) {
	s := newFastSealer()

	for _, plaintext := range []string{"", "hello", "Grüße, 世界 🔐", string(make([]byte, 4096))} {
		blob, err := s.Seal(plaintext, "passphrase")
		require.NoError(t, err)

		got, err := s.Open(blob, "passphrase")
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestSealer_DefaultParametersRoundTrip(t *testing.T) {
	s := NewDefaultSealer()

	blob, err := s.Seal("hello", "LottaDash")
	require.NoError(t, err)

	got, err := s.Open(blob, "LottaDash")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestSealer_WrongPassphrase(t *testing.T) {
	s := newFastSealer()

	blob, err := s.Seal("secret", "k1")
	require.NoError(t, err)

	got, err := s.Open(blob, "k2")
	require.ErrorIs(t, err, ErrAuthenticationFailure)
	assert.Empty(t, got)
}

func TestSealer_SealIsRandomized(t *testing.T) {
	s := newFastSealer()

	b1, err := s.Seal("same", "k")
	require.NoError(t, err)
	b2, err := s.Seal("same", "k")
	require.NoError(t, err)

	assert.NotEqual(t, b1, b2)
}

func TestSealer_BlobLength(t *testing.T) {
	blob, err := newFastSealer().Seal("hello", "k")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)
	assert.Len(t, raw, NonceSize+len("hello")+TagSize)
}

func TestSealer_TamperedBlobFailsClosed(t *testing.T) {
	s := newFastSealer()
	blob, err := s.Seal("hello", "k")
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)

	for i := range raw {
		tampered := append([]byte(nil), raw...)
		tampered[i] ^= 0x01

		got, err := s.Open(base64.StdEncoding.EncodeToString(tampered), "k")
		require.ErrorIs(t, err, ErrAuthenticationFailure, "byte %d", i)
		assert.Empty(t, got)
	}
}

func TestSealer_MalformedBlobIsFormatError(t *testing.T) {
	got, err := newFastSealer().Open("%%%", "k")
	require.ErrorIs(t, err, ErrFormat)
	assert.Empty(t, got)
}

// The blob format is shared with notes written by earlier clients: build one
// by hand from the documented parameters and make sure it opens.
func TestSealer_OpensBlobBuiltFromDocumentedFormat(t *testing.T) {
	key := pbkdf2.Key([]byte("pass"), []byte("dashboard_salt_v1"), 100000, 32, sha256.New)
	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	gcm, err := cipher.NewGCM(block)
	require.NoError(t, err)

	nonce := []byte("0123456789ab")
	blob := base64.StdEncoding.EncodeToString(append(append([]byte(nil), nonce...), gcm.Seal(nil, nonce, []byte("from another client"), nil)...))

	got, err := NewDefaultSealer().Open(blob, "pass")
	require.NoError(t, err)
	assert.Equal(t, "from another client", got)
}

func TestSealer_NonceFailureIsReported(t *testing.T) {
	s := NewSealer(NewKeyDerivation(KDFParams{Iterations: 1}), &aesGCMCipher{random: failingReader{}}, NewBlobCodec())

	blob, err := s.Seal("x", "k")
	require.Error(t, err)
	assert.Empty(t, blob)
	assert.Contains(t, err.Error(), "seal note")
}
