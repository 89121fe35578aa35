package config

import "errors"

// Validation errors returned by [ClientConfig.validate].
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings (unknown
	// backend, missing DSN or directory, negative retry attempts).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
