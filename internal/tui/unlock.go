package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// unlockModel asks for the passphrase notes are sealed with. Nothing is
// verified here: a wrong passphrase shows up when an encrypted note is opened.
type unlockModel struct {
	input  textinput.Model
	errMsg string
}

func newUnlockModel() unlockModel {
	input := textinput.New()
	input.Placeholder = "passphrase"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return unlockModel{input: input}
}

func (m unlockModel) View() string {
	var b strings.Builder
	b.WriteString("Passphrase │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("UNLOCK NOTES", strings.TrimRight(b.String(), "\n"), "enter: unlock │ esc: quit")
}
