// Package terminal wraps the process-wide terminal state the keypress shell
// needs: raw mode and the screen size.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultWidth is used when the terminal size cannot be read
const DefaultWidth = 80

// IsTerminal reports whether fd is an interactive terminal
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Width returns the column count of the terminal on fd
func Width(fd uintptr) int {
	width, _, err := term.GetSize(int(fd))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// MakeRaw puts fd into raw mode. The returned restore func puts the
// previous state back; callers defer it straight away.
func MakeRaw(fd uintptr) (restore func() error, err error) {
	if !IsTerminal(fd) {
		return nil, fmt.Errorf("fd %d is not a terminal", fd)
	}
	state, err := term.MakeRaw(int(fd))
	if err != nil {
		return nil, fmt.Errorf("error entering raw mode: %w", err)
	}
	restored := false
	return func() error {
		if restored {
			return nil
		}
		restored = true
		if err := term.Restore(int(fd), state); err != nil {
			return fmt.Errorf("error restoring terminal: %w", err)
		}
		return nil
	}, nil
}

// CRLF translates newlines for a terminal in raw mode, where output
// post-processing is off and "\n" no longer returns the carriage.
type CRLF struct {
	W io.Writer
}

func (c CRLF) Write(p []byte) (int, error) {
	s := strings.ReplaceAll(string(p), "\r\n", "\n")
	if _, err := io.WriteString(c.W, strings.ReplaceAll(s, "\n", "\r\n")); err != nil {
		return 0, err
	}
	return len(p), nil
}
