package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type listModel struct {
	items     []models.Note
	idx       int
	query     string
	searching bool
	search    textinput.Model
}

func newListModel() listModel {
	search := textinput.New()
	search.Placeholder = "search titles"
	search.Width = 40
	search.Prompt = "/ "

	return listModel{search: search}
}

// refresh reloads the visible notes from the service, applying the current
// search query, and keeps the cursor in range.
func (m *listModel) refresh(notes service.NoteService) {
	if m.query == "" {
		m.items = notes.List()
	} else {
		m.items = notes.Search(m.query)
	}

	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) current() (models.Note, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Note{}, false
	}
	return m.items[m.idx], true
}

func (m *listModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) moveDown() {
	if m.idx < len(m.items)-1 {
		m.idx++
	}
}

func (m *listModel) startSearch() {
	m.searching = true
	m.search.SetValue(m.query)
	m.search.CursorEnd()
	m.search.Focus()
}

func (m *listModel) stopSearch(clearQuery bool) {
	m.searching = false
	m.search.Blur()
	if clearQuery {
		m.query = ""
		m.search.Reset()
	}
}

func listIcon(n models.Note) string {
	if n.Encrypted {
		return "[E]"
	}
	return "[ ]"
}

func (m listModel) View() string {
	var b strings.Builder

	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	} else if m.query != "" {
		b.WriteString(helpStyle.Render("filter: " + m.query))
		b.WriteString("\n\n")
	}

	if len(m.items) == 0 {
		b.WriteString(msgNoNotes)
	}
	for i, n := range m.items {
		line := fmt.Sprintf("%s %-32s %s", listIcon(n), fitText(n.Title, 32), formatTime(n.Updated()))
		if len(n.Tags) > 0 {
			line += "  #" + strings.Join(n.Tags, " #")
		}
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	hotKeys := "n: new encrypted │ N: new plain │ enter: open │ d: delete │ /: search │ v: build info │ q: quit"
	if m.searching {
		hotKeys = "enter: apply │ esc: clear"
	}
	return renderPage("NOTES", strings.TrimRight(b.String(), "\n"), hotKeys)
}
