package cli

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/spf13/cobra"
)

// runner carries the state shared by the commands of one invocation.
type runner struct {
	deps  Deps
	flags *config.StructuredConfig

	cfg      *config.ClientConfig
	log      *logger.Logger
	unlocked bool
}

// withNotes loads the configuration, opens the storage and the collection,
// runs fn and releases the storage.
func (r *runner) withNotes(cmd *cobra.Command, fn func(ctx context.Context, notes service.NoteService) error) error {
	ctx := cmd.Context()

	cfg, err := config.GetClientConfigWithOverrides(r.flags)
	if err != nil {
		return err
	}
	r.cfg = cfg
	r.log = logger.NewClientLogger("notesctl", cfg.Log.Path, cfg.Log.Level)

	notes, closeStorage, err := r.deps.Open(ctx, cfg, r.log)
	if err != nil {
		r.log.Err(err).Str("func", "*runner.withNotes").Msg("error opening storage")
		return err
	}
	defer func() {
		if closeErr := closeStorage(); closeErr != nil {
			r.log.Err(closeErr).Str("func", "*runner.withNotes").Msg("error closing storage")
		}
	}()

	if err = notes.LoadAll(ctx); err != nil {
		return err
	}

	r.log.Debug().Str("func", "*runner.withNotes").Str("command", cmd.Name()).Msg("running command")
	return fn(ctx, notes)
}

// unlock hands the passphrase to notes, prompting for it when it is not
// configured. It is a no-op after the first call.
func (r *runner) unlock(notes service.NoteService) error {
	if r.unlocked {
		return nil
	}

	passphrase := r.cfg.App.NotesPassphrase
	if passphrase == "" {
		var err error
		if passphrase, err = r.deps.ReadPassphrase("Passphrase: "); err != nil {
			return err
		}
	}

	notes.SetPassphrase(passphrase)
	r.unlocked = true
	return nil
}

// sealing runs fn behind a spinner: sealing and opening both pay for the key
// derivation.
func (r *runner) sealing(message string, fn func() error) error {
	stop := startSpinner(r.deps.Err, message)
	defer stop()
	return fn()
}
