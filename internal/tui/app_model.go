package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const statusTTL = 2 * time.Second

type screen int

const (
	screenUnlock screen = iota
	screenList
	screenDetail
	screenEdit
	screenTags
)

type appModel struct {
	ctx    context.Context
	notes  service.NoteService
	info   models.AppBuildInfo
	logger *logger.Logger
	copy   func(string) error

	currentScreen screen

	unlock unlockModel
	list   listModel
	detail detailModel
	edit   editModel
	tags   tagsModel

	spinner spinner.Model
	busy    bool
	status  string

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	showBuildInfo bool
}

func newAppModel(ctx context.Context, notes service.NoteService, info models.AppBuildInfo, passphrase string, logger *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := appModel{
		ctx:           ctx,
		notes:         notes,
		info:          info,
		logger:        logger,
		copy:          clipboard.WriteAll,
		currentScreen: screenUnlock,
		unlock:        newUnlockModel(),
		list:          newListModel(),
		spinner:       s,
	}

	if passphrase != "" {
		notes.SetPassphrase(passphrase)
		m.currentScreen = screenList
		m.busy = true
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenUnlock {
		return textinput.Blink
	}
	return tea.Batch(m.cmdLoad(), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m.startBusy(m.cmdRemove(m.pendingDelete))
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
		if m.busy {
			return m, nil
		}
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case notesLoadedMsg:
		m.busy = false
		m.currentScreen = screenList
		if msg.err != nil {
			m.showErrorf(msg.err)
		}
		m.list.refresh(m.notes)
		return m, nil
	case noteCreatedMsg:
		m.busy = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.list.stopSearch(true)
		m.list.refresh(m.notes)
		m.list.idx = 0
		m.edit = newEditModel(msg.note, "")
		m.currentScreen = screenEdit
		return m, textinput.Blink
	case noteRevealedMsg:
		m.busy = false
		m.detail = detailModel{note: msg.note, plaintext: msg.plaintext, err: msg.err}
		m.currentScreen = screenDetail
		return m, nil
	case noteSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.list.refresh(m.notes)
		m.edit = editModel{}
		m.detail = detailModel{note: msg.note, plaintext: msg.plaintext}
		m.currentScreen = screenDetail
		return m.withStatus(msgSaved)
	case tagsSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.list.refresh(m.notes)
		m.detail.note = msg.note
		m.currentScreen = screenDetail
		return m.withStatus(msgTagsSaved)
	case noteRemovedMsg:
		m.busy = false
		m.pendingDelete = ""
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.list.refresh(m.notes)
		m.currentScreen = screenList
		return m.withStatus(msgDeleted)
	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("func", "appModel.Update").Msg("clipboard write failed")
			m.showErrorf(msg.err)
			return m, nil
		}
		return m.withStatus(msgCopied)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenUnlock:
		return m.updateUnlock(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenEdit:
		return m.updateEdit(msg)
	case screenTags:
		return m.updateTags(msg)
	}
	return m, nil
}

func (m appModel) updateUnlock(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			passphrase := m.unlock.input.Value()
			if passphrase == "" {
				m.unlock.errMsg = msgPassphraseRequired
				return m, nil
			}
			m.notes.SetPassphrase(passphrase)
			m.unlock.input.Reset()
			m.unlock.errMsg = ""
			return m.startBusy(m.cmdLoad())
		}
	}

	var cmd tea.Cmd
	m.unlock.input, cmd = m.unlock.input.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.list.searching {
		return m.updateSearch(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		m.list.moveUp()
	case key.Matches(keyMsg, keys.down):
		m.list.moveDown()
	case key.Matches(keyMsg, keys.search):
		m.list.startSearch()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.newEncrypted):
		return m.startBusy(m.cmdCreate(true))
	case key.Matches(keyMsg, keys.newPlain):
		return m.startBusy(m.cmdCreate(false))
	case key.Matches(keyMsg, keys.enter):
		note, ok := m.list.current()
		if !ok {
			return m.withStatus(msgNoNotes)
		}
		return m.startBusy(m.cmdReveal(note))
	case key.Matches(keyMsg, keys.delete):
		note, ok := m.list.current()
		if !ok {
			return m.withStatus(msgNoNotes)
		}
		m.confirm = confirmModel{title: note.Title}
		m.pendingDelete = note.ID
		m.showConfirm = true
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.esc):
		if m.list.query != "" {
			m.list.stopSearch(true)
			m.list.refresh(m.notes)
		}
	}
	return m, nil
}

func (m appModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.list.stopSearch(true)
			m.list.refresh(m.notes)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.list.stopSearch(false)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list.search, cmd = m.list.search.Update(msg)
	if m.list.search.Value() != m.list.query {
		m.list.query = m.list.search.Value()
		m.list.refresh(m.notes)
	}
	return m, cmd
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.detail = detailModel{}
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.edit):
		if m.detail.err != nil {
			return m.withStatus(msgCannotEdit)
		}
		m.edit = newEditModel(m.detail.note, m.detail.plaintext)
		m.currentScreen = screenEdit
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.copy):
		if m.detail.err != nil || m.detail.plaintext == "" {
			return m.withStatus(msgNothingToCopy)
		}
		return m, m.cmdCopy(m.detail.plaintext)
	case key.Matches(keyMsg, keys.tags):
		m.tags = newTagsModel(m.detail.note)
		m.currentScreen = screenTags
		return m, textinput.Blink
	}
	return m, nil
}

func (m appModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.edit = editModel{}
			m.detail = detailModel{}
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.toggleEncryption):
			m.edit.encrypted = !m.edit.encrypted
			return m, nil
		case key.Matches(keyMsg, keys.save):
			return m.startBusy(m.cmdSave(m.edit.id, strings.TrimSpace(m.edit.title.Value()), m.edit.content.Value(), m.edit.encrypted))
		case key.Matches(keyMsg, keys.tab):
			m.edit.switchFocus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.edit, cmd = m.edit.update(msg)
	return m, cmd
}

func (m appModel) updateTags(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenDetail
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.startBusy(m.cmdSetTags(m.tags.id, m.tags.values()))
		}
	}

	var cmd tea.Cmd
	m.tags.input, cmd = m.tags.input.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.info))
	}

	var page string
	switch m.currentScreen {
	case screenUnlock:
		page = m.unlock.View()
	case screenList:
		page = m.list.View()
	case screenDetail:
		page = m.detail.View()
	case screenEdit:
		page = m.edit.View()
	case screenTags:
		page = m.tags.View()
	}

	parts := []string{page}
	if m.busy {
		parts = append(parts, m.spinner.View()+" working...")
	} else if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	if m.showConfirm {
		parts = append(parts, m.confirm.View())
	}
	if m.showError {
		parts = append(parts, m.errorOverlay.View())
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m appModel) startBusy(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.busy = true
	m.status = ""
	return m, tea.Batch(cmd, m.spinner.Tick)
}

func (m *appModel) showErrorf(err error) {
	m.showError = true
	m.errorOverlay.message = app.UserMessage(err)
}

func (m appModel) withStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m appModel) cmdLoad() tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		return notesLoadedMsg{err: notes.LoadAll(ctx)}
	}
}

func (m appModel) cmdCreate(encrypted bool) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		note, err := notes.Create(ctx, encrypted)
		return noteCreatedMsg{note: note, err: err}
	}
}

func (m appModel) cmdReveal(note models.Note) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		plaintext, err := notes.Reveal(ctx, note.ID)
		return noteRevealedMsg{note: note, plaintext: plaintext, err: err}
	}
}

func (m appModel) cmdSave(id, title, plaintext string, encrypted bool) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		note, err := notes.Save(ctx, id, title, plaintext, encrypted)
		return noteSavedMsg{note: note, plaintext: plaintext, err: err}
	}
}

func (m appModel) cmdSetTags(id string, tags []string) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		note, err := notes.SetTags(ctx, id, tags)
		return tagsSavedMsg{note: note, err: err}
	}
}

func (m appModel) cmdRemove(id string) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		_, err := notes.Remove(ctx, id)
		return noteRemovedMsg{err: err}
	}
}

func (m appModel) cmdCopy(text string) tea.Cmd {
	write := m.copy
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}
