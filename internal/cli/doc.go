// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements notesctl, the scripted command-line front-end of the
// note store.
//
// Every command opens the configured storage, loads the collection, runs one
// note service operation and releases the storage again. The passphrase is
// taken from the configuration (APP_NOTES_PASSPHRASE or the JSON file) and
// prompted for on the terminal only when an encrypted note is touched.
package cli
