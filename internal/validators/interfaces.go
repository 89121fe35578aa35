// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the business rules a note record and the note
// collection have to satisfy before they are accepted from storage or
// written back to it.
//
// A Validator can be scoped to a subset of fields by passing their names,
// which lets callers check only what an operation touched.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
