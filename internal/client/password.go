package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// PasswordReader prompts for a secret and returns it without the trailing
// newline.
type PasswordReader func(prompt string) (string, error)

// TerminalPasswordReader reads passwords from in. When in is a terminal the
// input is not echoed; otherwise a single line is read, so passwords can be
// piped in scripts.
func TerminalPasswordReader(in *os.File, out io.Writer) PasswordReader {
	lines := bufio.NewReader(in)

	return func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)

		fd := int(in.Fd())
		if term.IsTerminal(fd) {
			password, err := term.ReadPassword(fd)
			fmt.Fprintln(out)
			if err != nil {
				return "", fmt.Errorf("error reading password: %w", err)
			}
			return string(password), nil
		}

		line, err := lines.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", fmt.Errorf("error reading password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
}
