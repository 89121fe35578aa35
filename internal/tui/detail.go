package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// detailModel shows one note with its content revealed. err is set when the
// content could not be decrypted; plaintext is then empty.
type detailModel struct {
	note      models.Note
	plaintext string
	err       error
}

func (m detailModel) View() string {
	var b strings.Builder

	b.WriteString("Updated:   ")
	b.WriteString(formatTime(m.note.Updated()))
	b.WriteString("\n")
	b.WriteString("Encrypted: ")
	if m.note.Encrypted {
		b.WriteString("yes")
	} else {
		b.WriteString("no")
	}
	b.WriteString("\n")
	b.WriteString("Tags:      ")
	if len(m.note.Tags) == 0 {
		b.WriteString("-")
	} else {
		b.WriteString(strings.Join(m.note.Tags, ", "))
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(app.UserMessage(m.err)))
	} else {
		b.WriteString(m.plaintext)
	}

	return renderPage(m.note.Title, b.String(), "e: edit │ c: copy │ t: tags │ esc: back")
}
