// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

// noteSealer is the private implementation of [Sealer].
type noteSealer struct {
	kdf   KeyDerivation
	aead  AeadCipher
	codec BlobCodec
}

// NewSealer composes kdf, aead and codec into a [Sealer].
func NewSealer(kdf KeyDerivation, aead AeadCipher, codec BlobCodec) Sealer {
	return &noteSealer{kdf: kdf, aead: aead, codec: codec}
}

// NewDefaultSealer returns the production [Sealer]: PBKDF2 with
// [DefaultKDFParams], AES-256-GCM and base64 framing.
func NewDefaultSealer() Sealer {
	return NewSealer(NewKeyDerivation(DefaultKDFParams()), NewAeadCipher(), NewBlobCodec())
}

// Seal implements [Sealer]. The key is derived on every call and wiped once
// the ciphertext is produced.
func (s *noteSealer) Seal(plaintext, passphrase string) (string, error) {
	key := s.kdf.DeriveKey(passphrase)
	defer clear(key)

	nonce, err := s.aead.NewNonce()
	if err != nil {
		return "", fmt.Errorf("seal note: %w", err)
	}

	ciphertext, err := s.aead.Seal(key, nonce, []byte(plaintext))
	if err != nil {
		return "", fmt.Errorf("seal note: %w", err)
	}

	return s.codec.Encode(nonce, ciphertext), nil
}

// Open implements [Sealer]. The frame is checked before the key is derived so
// malformed content is rejected without paying for the KDF.
func (s *noteSealer) Open(blob, passphrase string) (string, error) {
	nonce, ciphertext, err := s.codec.Decode(blob)
	if err != nil {
		return "", err
	}

	key := s.kdf.DeriveKey(passphrase)
	defer clear(key)

	plaintext, err := s.aead.Open(key, nonce, ciphertext)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
