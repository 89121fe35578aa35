package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

const fileStorageExt = ".json"

// fileKeyValueStorage stores every key as its own file <dir>/<key>.json.
//
// Writes go to a temporary file in the same directory which is synced and
// then renamed over the target, so a crash leaves either the old or the new
// value on disk and never a torn one.
type fileKeyValueStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileKeyValueStorage returns a storage rooted at dir. The directory is
// created with 0700 on first write.
func NewFileKeyValueStorage(dir string, log *logger.Logger) KeyValueStorage {
	log.Debug().Str("dir", dir).Msg("creating file key-value storage")
	return &fileKeyValueStorage{dir: dir, logger: log}
}

func (f *fileKeyValueStorage) path(key string) string {
	return filepath.Join(f.dir, filepath.Base(key)+fileStorageExt)
}

func (f *fileKeyValueStorage) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrKeyNotFound
		}
		f.logger.Err(err).Str("func", "*fileKeyValueStorage.Get").Str("key", key).Msg("error reading file")
		return nil, fmt.Errorf("%w: read %s: %w", ErrStorageUnavailable, key, err)
	}
	return data, nil
}

func (f *fileKeyValueStorage) Put(_ context.Context, key string, value []byte) error {
	if err := f.writeAtomic(f.path(key), value); err != nil {
		f.logger.Err(err).Str("func", "*fileKeyValueStorage.Put").Str("key", key).Msg("error writing file")
		return fmt.Errorf("%w: write %s: %w", ErrStorageUnavailable, key, err)
	}
	return nil
}

func (f *fileKeyValueStorage) writeAtomic(target string, value []byte) error {
	if err := os.MkdirAll(f.dir, 0o700); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	tmp, err := os.CreateTemp(f.dir, filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmpName)
	}()

	if err = tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err = tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, target)
}
