// Package terminal wraps terminal size queries for the TUI renderer.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback dimensions when stdout is not a terminal (pipes, CI).
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height, falling back
// to the defaults when the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// GetHeight returns the current terminal height.
func GetHeight() int {
	_, height := GetSize()
	return height
}

// IsInteractive reports whether stdin is attached to a terminal, which
// the TUI needs for raw-mode key reads.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
