// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/spf13/cobra"
)

// OpenFunc opens the note service for cfg. The returned func releases the
// storage behind it.
type OpenFunc func(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (service.NoteService, func() error, error)

// Deps are the collaborators of the command tree.
type Deps struct {
	Info           models.AppBuildInfo
	Open           OpenFunc
	ReadPassphrase func(prompt string) (string, error)
	In             io.Reader
	Out            io.Writer
	Err            io.Writer
}

// DefaultDeps opens the configured storage backend and talks to the process
// stdio.
func DefaultDeps(info models.AppBuildInfo) Deps {
	return Deps{
		Info:           info,
		Open:           openStorage(info),
		ReadPassphrase: readPassphrase,
		In:             os.Stdin,
		Out:            os.Stdout,
		Err:            os.Stderr,
	}
}

func openStorage(info models.AppBuildInfo) OpenFunc {
	return func(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (service.NoteService, func() error, error) {
		storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
		if err != nil {
			return nil, nil, fmt.Errorf("open storage: %w", err)
		}

		services := service.NewClientServices(storages, info, log)
		return services.NoteService, storages.Close, nil
	}
}

// Execute runs notesctl with args and returns the process exit code.
func Execute(ctx context.Context, deps Deps, args []string) int {
	root := NewRootCmd(deps)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		printFailure(deps.Err, "%s: %v", app.UserMessage(err), err)
		return 1
	}
	return 0
}

// NewRootCmd builds the notesctl command tree.
func NewRootCmd(deps Deps) *cobra.Command {
	r := &runner{deps: deps, flags: &config.StructuredConfig{}}

	root := &cobra.Command{
		Use:   "notesctl",
		Short: "Manage go-notes-keeper notes from scripts",
		Long: `notesctl creates, encrypts, reveals and removes notes stored by
go-notes-keeper. Encrypted notes are sealed with AES-256-GCM under a key derived
from the notes passphrase; the passphrase is read from APP_NOTES_PASSPHRASE or
the JSON config, or prompted for on the terminal.`,
		Version:       deps.Info.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(deps.In)
	root.SetOut(deps.Out)
	root.SetErr(deps.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&r.flags.Storage.Backend, "backend", "", "storage backend: file, sqlite, postgres or memory")
	pf.StringVarP(&r.flags.Storage.DB.DSN, "dsn", "d", "", "database DSN (sqlite file or postgres URI)")
	pf.StringVarP(&r.flags.Storage.Files.Dir, "dir", "f", "", "directory of the file backend")
	pf.IntVar(&r.flags.Storage.RetryAttempts, "retry-attempts", 0, "extra attempts for retryable SQL writes")
	pf.DurationVar(&r.flags.Storage.DB.ConnectTimeout, "connect-timeout", 0, "database connect timeout")
	pf.StringVar(&r.flags.Log.Path, "log-path", "", "log file path")
	pf.StringVar(&r.flags.Log.Level, "log-level", "", "log level")
	pf.StringVarP(&r.flags.JSONFilePath, "config", "c", "", "JSON config file path")

	root.AddCommand(
		r.newCreateCmd(),
		r.newSaveCmd(),
		r.newRevealCmd(),
		r.newRemoveCmd(),
		r.newListCmd(),
		r.newSearchCmd(),
		r.newTagCmd(),
	)
	return root
}
