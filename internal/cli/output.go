package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
)

const timeLayout = "2006-01-02 15:04"

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, color.GreenString("✓")+" "+fmt.Sprintf(format, args...))
}

func printFailure(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, color.RedString("✗")+" "+fmt.Sprintf(format, args...))
}

// startSpinner shows message with a spinner on w while the key derivation
// runs. The returned func stops it. Nothing is drawn when w is not a
// terminal.
func startSpinner(w io.Writer, message string) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	_ = s.Color("cyan")
	s.Start()

	return s.Stop
}

func printNotes(w io.Writer, notes []models.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, color.YellowString("no notes"))
		return
	}

	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		kind := "plain"
		if n.Encrypted {
			kind = "encrypted"
		}
		rows = append(rows, []string{
			n.ID,
			kind,
			n.Updated().Local().Format(timeLayout),
			n.Title,
			strings.Join(n.Tags, ","),
		})
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ID", "KIND", "UPDATED", "TITLE", "TAGS").
		Rows(rows...)
	fmt.Fprintln(w, t.String())
}
