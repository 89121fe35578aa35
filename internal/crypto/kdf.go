// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// Key derivation parameters. They must not change: every note already stored
// was sealed with a key derived from exactly these values.
const (
	// DefaultKDFSalt is the fixed, non-secret salt shared by all notes.
	DefaultKDFSalt = "dashboard_salt_v1"

	// DefaultKDFIterations is the PBKDF2 round count.
	DefaultKDFIterations = 100_000

	// KeySize is the derived key length in bytes (AES-256).
	KeySize = 32
)

// KDFParams holds the PBKDF2 tuning parameters.
type KDFParams struct {
	Salt       []byte
	Iterations int
	KeyLen     int
}

// DefaultKDFParams returns the parameters compatible with previously stored
// notes.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Salt:       []byte(DefaultKDFSalt),
		Iterations: DefaultKDFIterations,
		KeyLen:     KeySize,
	}
}

// pbkdf2KeyDerivation is the private implementation of [KeyDerivation].
type pbkdf2KeyDerivation struct {
	params KDFParams
}

// NewKeyDerivation constructs a PBKDF2-HMAC-SHA256 [KeyDerivation]. Zero
// fields of params fall back to [DefaultKDFParams].
func NewKeyDerivation(params KDFParams) KeyDerivation {
	def := DefaultKDFParams()
	if params.Salt == nil {
		params.Salt = def.Salt
	}
	if params.Iterations <= 0 {
		params.Iterations = def.Iterations
	}
	if params.KeyLen <= 0 {
		params.KeyLen = def.KeyLen
	}

	return &pbkdf2KeyDerivation{params: params}
}

// DeriveKey implements [KeyDerivation].
func (k *pbkdf2KeyDerivation) DeriveKey(passphrase string) []byte {
	return pbkdf2.Key(
		[]byte(passphrase),
		k.params.Salt,
		k.params.Iterations,
		k.params.KeyLen,
		sha256.New,
	)
}
