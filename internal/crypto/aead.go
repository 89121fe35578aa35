// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// NonceSize is the AES-GCM nonce length in bytes (96 bits).
	NonceSize = 12

	// TagSize is the AES-GCM authentication tag length in bytes.
	TagSize = 16
)

// aesGCMCipher is the private implementation of [AeadCipher].
type aesGCMCipher struct {
	// random is the nonce source. crypto/rand in production.
	random io.Reader
}

// NewAeadCipher constructs an AES-256-GCM [AeadCipher] drawing nonces from
// the OS CSPRNG.
func NewAeadCipher() AeadCipher {
	return &aesGCMCipher{random: rand.Reader}
}

// NewNonce implements [AeadCipher]. A failed random read is returned as an
// error; a zero nonce is never handed out.
func (c *aesGCMCipher) NewNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return nonce, nil
}

// Seal implements [AeadCipher].
func (c *aesGCMCipher) Seal(key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidNonce, len(nonce))
	}

	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// Open implements [AeadCipher].
func (c *aesGCMCipher) Open(key, nonce, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidNonce, len(nonce))
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailure
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
