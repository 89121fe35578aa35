package config

import (
	"flag"
	"fmt"
)

// ParseFlags parses the client command line.
//
// Flags:
//
//	-passphrase notes passphrase (prefer the prompt or APP_NOTES_PASSPHRASE)
//	-backend storage backend: file, sqlite, postgres or memory
//	-d database DSN (sqlite file or postgres URI)
//	-f directory of the file backend
//	-retry-attempts extra attempts for retryable SQL writes
//	-connect-timeout database connect timeout (e.g. "5s")
//	-log-path log file path
//	-log-level log level
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.App.NotesPassphrase, "passphrase", "", "Notes passphrase")
	fs.StringVar(&cfg.Storage.Backend, "backend", "", "Storage backend: file, sqlite, postgres or memory")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Files.Dir, "f", "", "File storage directory")
	fs.IntVar(&cfg.Storage.RetryAttempts, "retry-attempts", 0, "Extra attempts for retryable SQL writes")
	fs.DurationVar(&cfg.Storage.DB.ConnectTimeout, "connect-timeout", 0, "Database connect timeout (e.g., 5s)")
	fs.StringVar(&cfg.Log.Path, "log-path", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
