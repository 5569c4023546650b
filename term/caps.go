// Package term provides the platform-specific raw-mode, key-decoding,
// and signal/console-event layer behind package inline (spec.md §2
// component G/H, §4.F/§4.G). Two build-tagged implementations
// (terminal_unix.go, terminal_windows.go) satisfy inline.TerminalIO;
// this file holds the capability detection shared by both, grounded on
// the teacher's terminal_caps.go TerminalCapabilities struct, trimmed
// to what a line editor (rather than a terminal emulator) needs — see
// SPEC_FULL.md §4.F.
package term

import (
	"os"

	"golang.org/x/term"
)

// Capabilities describes what the current standard input/output can
// support, mirroring the teacher's TerminalCapabilities but dropping
// colour-depth negotiation, which belongs to the host (spec.md §6:
// palette correctness is the host's responsibility).
type Capabilities struct {
	TermType   string
	IsTerminal bool
	Width      int
	Height     int
}

// DetectCapabilities reads os.Stdin/Stdout and $TERM to build a
// Capabilities snapshot.
func DetectCapabilities() Capabilities {
	fd := int(os.Stdin.Fd())
	isTTY := term.IsTerminal(fd)
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		w = 80
	}
	if err != nil || h <= 0 {
		h = 24
	}
	return Capabilities{
		TermType:   os.Getenv("TERM"),
		IsTerminal: isTTY,
		Width:      w,
		Height:     h,
	}
}

// unsupportedTermTypes are $TERM values the interactive path cannot
// drive (spec.md §4.F "Terminal support detection").
var unsupportedTermTypes = map[string]bool{
	"dumb":   true,
	"cons25": true,
	"emacs":  true,
}
