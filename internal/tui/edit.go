package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type editModel struct {
	id        string
	title     textinput.Model
	content   textarea.Model
	encrypted bool
	focus     int
}

func newEditModel(note models.Note, plaintext string) editModel {
	title := textinput.New()
	title.Placeholder = models.UntitledNoteTitle
	title.CharLimit = 256
	title.Width = 54
	title.SetValue(note.Title)
	title.Focus()

	content := textarea.New()
	content.Placeholder = "Note content"
	content.SetWidth(54)
	content.SetHeight(10)
	content.SetValue(plaintext)

	return editModel{
		id:        note.ID,
		title:     title,
		content:   content,
		encrypted: note.Encrypted,
	}
}

func (m *editModel) switchFocus() {
	if m.focus == 0 {
		m.focus = 1
		m.title.Blur()
		m.content.Focus()
		return
	}
	m.focus = 0
	m.content.Blur()
	m.title.Focus()
}

func (m editModel) update(msg tea.Msg) (editModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == 0 {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m editModel) View() string {
	var b strings.Builder
	b.WriteString("Title     │ [")
	b.WriteString(m.title.View())
	b.WriteString("]\n")
	b.WriteString("Encrypted │ ")
	if m.encrypted {
		b.WriteString("yes")
	} else {
		b.WriteString("no")
	}
	b.WriteString("\n\n")
	b.WriteString(m.content.View())

	return renderPage("EDIT NOTE", b.String(), "tab: switch field │ ctrl+e: toggle encryption │ ctrl+s: save │ esc: cancel")
}
