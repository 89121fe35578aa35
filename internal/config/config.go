// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Storage backends understood by the client.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

const (
	// DefaultDataDirName is the directory under the user's home holding the
	// notes file and the log.
	DefaultDataDirName = ".go-notes-keeper"
	// DefaultLogFileName is the log file created inside the data directory.
	DefaultLogFileName = "client.log"
	// DefaultRetryAttempts is how often a retryable SQL write is attempted
	// again.
	DefaultRetryAttempts = 3
	// DefaultConnectTimeout bounds opening and pinging a database.
	DefaultConnectTimeout = 5 * time.Second
	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"
	// DefaultDotEnvFile is read from the working directory when present.
	DefaultDotEnvFile = ".env"
)

// StructuredConfig is the raw configuration assembled from every source.
// Sources are merged by [configBuilder] and then turned into the
// [ClientConfig] view used by the binaries.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the backend the notes live in.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log configures the client log file.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvFilePath names the .env file to read. Env: ENV_FILE.
	DotEnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level configuration values.
type App struct {
	// NotesPassphrase is the secret notes are encrypted with. When empty the
	// front-ends ask for it interactively.
	// Env: APP_NOTES_PASSPHRASE
	NotesPassphrase string `env:"NOTES_PASSPHRASE"`
}

// Storage groups the settings of every storage backend.
type Storage struct {
	// Backend is one of file, sqlite, postgres or memory.
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// RetryAttempts is the number of extra attempts for retryable SQL
	// write errors.
	// Env: STORAGE_RETRY_ATTEMPTS
	RetryAttempts int `env:"RETRY_ATTEMPTS"`

	// DB holds the SQL backend connection settings.
	DB DBConfig `envPrefix:"DB_"`

	// Files holds the file backend settings.
	Files FilesConfig `envPrefix:"FILES_"`
}

// DBConfig holds connection settings for the sqlite and postgres backends.
type DBConfig struct {
	// DSN is a SQLite file path or a PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// ConnectTimeout bounds opening, pinging and migrating the database.
	// Env: STORAGE_DB_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// FilesConfig holds the file backend settings.
type FilesConfig struct {
	// Dir is the directory the collection file is written to.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`
}

// Log configures the client log.
type Log struct {
	// Path is the log file. Env: LOG_PATH
	Path string `env:"PATH"`
	// Level is a zerolog level name. Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// defaultConfig returns the lowest-priority source. The data directory is
// resolved against the user's home; if that fails it stays relative to the
// working directory.
func defaultConfig() *StructuredConfig {
	dataDir := DefaultDataDirName
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, DefaultDataDirName)
	}

	return &StructuredConfig{
		Storage: Storage{
			Backend:       BackendFile,
			RetryAttempts: DefaultRetryAttempts,
			DB:            DBConfig{ConnectTimeout: DefaultConnectTimeout},
			Files:         FilesConfig{Dir: dataDir},
		},
		Log: Log{
			Path:  filepath.Join(dataDir, DefaultLogFileName),
			Level: DefaultLogLevel,
		},
		DotEnvFilePath: DefaultDotEnvFile,
	}
}
