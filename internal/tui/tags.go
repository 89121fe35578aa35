package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type tagsModel struct {
	id    string
	input textinput.Model
}

func newTagsModel(note models.Note) tagsModel {
	input := textinput.New()
	input.Placeholder = "work, ideas"
	input.Width = 54
	input.SetValue(strings.Join(note.Tags, ", "))
	input.CursorEnd()
	input.Focus()

	return tagsModel{id: note.ID, input: input}
}

// values splits the comma separated input. Blank entries and repeats are
// dropped by the note service.
func (m tagsModel) values() []string {
	return strings.Split(m.input.Value(), ",")
}

func (m tagsModel) View() string {
	return renderPage("EDIT TAGS", "Tags │ ["+m.input.View()+"]", "enter: save │ esc: back")
}
