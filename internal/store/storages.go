package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

// ClientStorages groups the client-side storage layer into a single value
// that can be handed to the service layer.
type ClientStorages struct {
	// NoteRepository persists the note collection.
	NoteRepository NoteRepository

	closeFn func() error
}

// Close releases the underlying medium (the database connection for the SQL
// backends). It is safe to call on every backend.
func (s *ClientStorages) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// NewClientStorages opens the backend selected by cfg.Backend:
//   - file: one JSON file per key inside cfg.Files.Dir;
//   - sqlite / postgres: opens cfg.DB.DSN and runs the schema migrations;
//   - memory: a map that lives as long as the process.
//
// Opening, pinging and migrating a database is bounded by
// cfg.DB.ConnectTimeout.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	kv, closeFn, err := openKeyValueStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	validator := validators.NewNoteValidator(crypto.NewBlobCodec())
	return &ClientStorages{
		NoteRepository: NewNoteRepository(kv, validator, log),
		closeFn:        closeFn,
	}, nil
}

func openKeyValueStorage(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (KeyValueStorage, func() error, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return NewFileKeyValueStorage(cfg.Files.Dir, log), nil, nil
	case config.BackendMemory:
		return NewMemoryKeyValueStorage(), nil, nil
	case config.BackendSQLite, config.BackendPostgres:
		db, err := openSQL(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return NewSQLKeyValueStorage(db, uint64(max(cfg.RetryAttempts, 0)), log), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

func openSQL(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*DB, error) {
	if cfg.DB.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DB.ConnectTimeout)
		defer cancel()
	}

	var (
		db  *DB
		err error
	)
	if cfg.Backend == config.BackendPostgres {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Backend, err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migration failed: %w", ErrStorageUnavailable, err)
	}

	return db, nil
}
