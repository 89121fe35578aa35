package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// readPassphrase prompts on stderr and reads a line from the terminal
// without echoing it.
func readPassphrase(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNoTerminal
	}

	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	if len(passphrase) == 0 {
		return "", ErrEmptyPassphrase
	}

	return string(passphrase), nil
}
