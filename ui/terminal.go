package ui

import (
	"golang.org/x/crypto/ssh/terminal"
)

// DefaultWidth is the width used when the terminal size cannot be
// determined, such as when output is redirected to a file.
const DefaultWidth = 80

// TerminalWidth returns the number of columns of the terminal attached to
// the file descriptor fd.
func TerminalWidth(fd int) int {
	cols, _, err := terminal.GetSize(fd)
	if err != nil || cols < 1 {
		return DefaultWidth
	}
	return cols
}
