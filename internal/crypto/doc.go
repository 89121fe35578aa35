// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side confidentiality layer for note
// bodies.
//
// Pipeline:
//
//	key  = DeriveKey(passphrase)                   PBKDF2-HMAC-SHA256, 100 000 rounds
//	ct   = Seal(key, nonce, plaintext)             AES-256-GCM, 96-bit random nonce
//	blob = base64(nonce || ct)                     ct already carries the 16-byte tag
//
// [Sealer] composes the three steps into the two operations the rest of the
// application uses: Seal(plaintext, passphrase) and Open(blob, passphrase).
//
// Decryption fails closed. A blob that can't be framed yields [ErrFormat], a
// blob whose tag does not verify yields [ErrAuthenticationFailure]; both
// match [ErrDecryption] with errors.Is.
package crypto
