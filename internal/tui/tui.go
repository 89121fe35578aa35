// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the interactive terminal front-end of the note store.
type TUI struct {
	notes  service.NoteService
	info   service.AppInfoService
	logger *logger.Logger
}

// New returns a [TUI] driving services. It fails with [ErrNoNoteService]
// when services carries no note service.
func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.NoteService == nil {
		return nil, ErrNoNoteService
	}

	return &TUI{
		notes:  services.NoteService,
		info:   services.AppInfoService,
		logger: logger,
	}, nil
}

// Run shows the UI until the user quits or ctx is cancelled. With an empty
// passphrase the unlock screen asks for one first.
func (t *TUI) Run(ctx context.Context, passphrase string) error {
	model := newAppModel(ctx, t.notes, t.info.GetAppInfo(ctx), passphrase, t.logger)

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("tui stopped with error")
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
