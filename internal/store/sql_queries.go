// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_store"
	kvKeyColumn   = "storage_key"
	kvValueColumn = "storage_value"
)

// buildSelectValueQuery builds the lookup of a single value by key.
func buildSelectValueQuery(format sq.PlaceholderFormat, key string) (string, []any, error) {
	query, args, err := sq.Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		PlaceholderFormat(format).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select value: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertValueQuery builds an INSERT that overwrites the value when the
// key already exists. Both SQLite and PostgreSQL accept the ON CONFLICT form.
func buildUpsertValueQuery(format sq.PlaceholderFormat, key string, value string) (string, []any, error) {
	query, args, err := sq.Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn).
		Values(key, value).
		Suffix(fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s = excluded.%s", kvKeyColumn, kvValueColumn, kvValueColumn)).
		PlaceholderFormat(format).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: upsert value: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
