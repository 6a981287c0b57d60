// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// IsInteractive reports whether stdin is a terminal. The launcher expects an MCP client
// on stdin, so an interactive stdin usually means it was started by hand.
func IsInteractive() bool {
	return IsTerminal(os.Stdin)
}
