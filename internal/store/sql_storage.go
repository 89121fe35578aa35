package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

const retryBaseDelay = 50 * time.Millisecond

// sqlKeyValueStorage keeps values in the kv_store table of a SQLite or
// PostgreSQL database. Writes that fail with a retryable driver error are
// attempted again with exponential backoff.
type sqlKeyValueStorage struct {
	db            *DB
	retryAttempts uint64
	logger        *logger.Logger
}

// NewSQLKeyValueStorage wraps an open, migrated connection. retryAttempts is
// the number of extra attempts for retryable write failures; zero disables
// retries.
func NewSQLKeyValueStorage(db *DB, retryAttempts uint64, log *logger.Logger) KeyValueStorage {
	log.Debug().Str("dialect", db.dialect).Msg("creating sql key-value storage")
	return &sqlKeyValueStorage{
		db:            db,
		retryAttempts: retryAttempts,
		logger:        log,
	}
}

func (s *sqlKeyValueStorage) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := buildSelectValueQuery(s.db.placeholders, key)
	if err != nil {
		s.logger.Err(err).Str("func", "*sqlKeyValueStorage.Get").Msg("error building query")
		return nil, err
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrKeyNotFound
	case err != nil:
		s.logger.Err(err).Str("func", "*sqlKeyValueStorage.Get").Str("key", key).Msg("error reading value")
		return nil, fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrExecutingQuery, err)
	}

	return []byte(value), nil
}

func (s *sqlKeyValueStorage) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := buildUpsertValueQuery(s.db.placeholders, key, string(value))
	if err != nil {
		s.logger.Err(err).Str("func", "*sqlKeyValueStorage.Put").Msg("error building query")
		return err
	}

	backoff := retry.WithMaxRetries(s.retryAttempts, retry.NewExponential(retryBaseDelay))
	attempt := 0
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if _, execErr := s.db.ExecContext(ctx, query, args...); execErr != nil {
			if s.isRetryable(execErr) {
				s.logger.Warn().Err(execErr).Str("func", "*sqlKeyValueStorage.Put").
					Int("attempt", attempt).Msg("retryable error writing value")
				return retry.RetryableError(execErr)
			}
			return execErr
		}
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*sqlKeyValueStorage.Put").Str("key", key).Msg("error writing value")
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqlKeyValueStorage) isRetryable(err error) bool {
	if s.db.errorClassificator == nil {
		return false
	}
	return s.db.errorClassificator.Classify(err) == Retryable
}
