package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
)

// DetectTTY reports whether fd refers to an interactive terminal, the
// stdin-side complement to IsTerminal's stdout-side check in platform.go.
// Grounded on up.go's isatty.IsTerminal(os.Stdin.Fd()) startup guard.
func DetectTTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// StdinIsTTY is the common case of DetectTTY(os.Stdin.Fd()), used by
// cmd/ved to fail fast before entering raw mode against a pipe.
func StdinIsTTY() bool {
	return DetectTTY(os.Stdin.Fd())
}
