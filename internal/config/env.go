// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from the process environment layered over the
// variables of the .env file at dotEnvPath. A missing .env file is not an
// error. ENV_FILE in the process environment replaces dotEnvPath.
//
// The process environment itself is left untouched.
func parseEnv(cfg any, dotEnvPath string) error {
	environ := env.ToMap(os.Environ())

	if p, ok := environ["ENV_FILE"]; ok && p != "" {
		dotEnvPath = p
	}

	vars := map[string]string{}
	if dotEnvPath != "" {
		fileVars, err := godotenv.Read(dotEnvPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return fmt.Errorf("error reading env file %s: %w", dotEnvPath, err)
		default:
			vars = fileVars
		}
	}
	for k, v := range environ {
		vars[k] = v
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
