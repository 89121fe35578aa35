// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	knownBackends  = []string{BackendFile, BackendSQLite, BackendPostgres, BackendMemory}
	knownLogLevels = []string{"", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}
)

func (cfg *ClientConfig) validate() error {
	s := cfg.Storage

	if !slices.Contains(knownBackends, s.Backend) {
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, s.Backend)
	}

	switch s.Backend {
	case BackendSQLite, BackendPostgres:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: backend %s needs a DSN", ErrInvalidStorageConfigs, s.Backend)
		}
	case BackendFile:
		if s.Files.Dir == "" {
			return fmt.Errorf("%w: file backend needs a directory", ErrInvalidStorageConfigs)
		}
	}

	if s.RetryAttempts < 0 {
		return fmt.Errorf("%w: negative retry attempts", ErrInvalidStorageConfigs)
	}

	if !slices.Contains(knownLogLevels, strings.ToLower(cfg.Log.Level)) {
		return fmt.Errorf("%w: unknown level %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}

	return nil
}
