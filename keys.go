package inline

// Logical key events (spec.md §4.G) and the platform I/O seam
// (spec.md §9 "Platform polymorphism"). KeyEvent and TerminalIO are
// declared in this package — rather than in the term subpackage — so
// that package term can depend on inline (to implement TerminalIO and
// produce KeyEvent values) without inline ever importing term. This is
// the Go rendition of the teacher's PTY-interface split (pty.go
// declaring the interface, pty_unix.go/pty_windows.go implementing it),
// generalized from "spawn and stream a PTY" to "own raw mode and decode
// keys".

// KeyKind enumerates the logical key events the decoder produces.
type KeyKind int

const (
	KeyUnknown KeyKind = iota
	KeyChar
	KeyReturn
	KeyCtrlReturn
	KeyTab
	KeyShiftTab
	KeyDelete // backspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyShiftLeft
	KeyShiftRight
	KeyCtrl   // Ctrl + letter; Rune holds the letter, uppercase
	KeyAlt    // Alt + char; Rune holds the decoded char
)

// KeyEvent is one decoded keystroke.
type KeyEvent struct {
	Kind KeyKind
	Rune rune   // valid for KeyChar, KeyCtrl, KeyAlt
	Text string // valid for KeyChar: the literal UTF-8 bytes of the character
}

// TerminalIO is the platform seam spec.md §4.F/§4.G describes: raw-mode
// entry/exit, width query, UTF-8 mode, signal/console-event handler
// installation, and the byte-level key decoder (translated from
// console events on Windows). Two implementations live in package
// term, chosen at construction by build tags.
type TerminalIO interface {
	// IsTTY reports whether standard input is an interactive terminal.
	IsTTY() bool
	// IsSupported reports whether the terminal type is one the raw
	// interactive path can drive (false for e.g. TERM=dumb).
	IsSupported() bool
	// FallbackReadLine reads one line from standard input up to a
	// newline or EOF, for the non-interactive / unsupported paths.
	FallbackReadLine() (line string, eof bool, err error)

	EnterRaw() error
	ExitRaw() error
	Width() (int, error)
	SetUTF8Mode() error

	// ReadKey blocks for the next keystroke. Returns io.EOF when
	// standard input is closed.
	ReadKey() (KeyEvent, error)

	// InstallHandlers wires graceful/crash/resize signal (or console
	// event) handlers for the duration of raw mode.
	InstallHandlers() error
	UninstallHandlers()
	// ResizePending reports and clears a pending-resize flag set
	// asynchronously by the installed handlers.
	ResizePending() bool

	// Write sends rendered output to the terminal.
	Write(p []byte) (int, error)
}
