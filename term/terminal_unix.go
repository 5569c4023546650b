//go:build linux || darwin || freebsd || netbsd || openbsd

package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/Morpho-lang/inline"
)

// unixIO is the POSIX implementation of inline.TerminalIO, grounded on
// the teacher's cli/terminal.go (term.MakeRaw/term.Restore,
// "\033[?25l"/"\033[?25h" cursor show/hide) and
// eugeniofciuvasile-ssh-x-term's pkg/sshutil/terminal_unix.go
// (NewTerminalSession/Start shape, SIGWINCH-driven resize). Narrowed
// from a full terminal session (no alternate screen, no child PTY) to
// the raw-mode-plus-key-stream contract spec.md §4.F needs.
type unixIO struct {
	inFd, outFd int
	oldState    *term.State
	reader      *bufio.Reader

	sigCh   chan os.Signal
	resized atomic.Bool

	installed bool
}

// NewStdIO constructs the standard-streams terminal I/O backend for
// interactive use (spec.md entry point 11, "Host hooks: terminal
// backend").
func NewStdIO() inline.TerminalIO {
	return &unixIO{
		inFd:   int(os.Stdin.Fd()),
		outFd:  int(os.Stdout.Fd()),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (u *unixIO) IsTTY() bool {
	return term.IsTerminal(u.inFd) && term.IsTerminal(u.outFd)
}

func (u *unixIO) IsSupported() bool {
	return !unsupportedTermTypes[os.Getenv("TERM")]
}

func (u *unixIO) FallbackReadLine() (line string, eof bool, err error) {
	s, err := u.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return stripNewline(s), true, nil
		}
		return "", false, err
	}
	return stripNewline(s), false, nil
}

func stripNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

func (u *unixIO) EnterRaw() error {
	old, err := term.MakeRaw(u.inFd)
	if err != nil {
		return fmt.Errorf("inline/term: enter raw mode: %w", err)
	}
	u.oldState = old
	registry.acquire(u)
	return nil
}

func (u *unixIO) ExitRaw() error {
	if u.oldState == nil {
		return nil
	}
	err := term.Restore(u.inFd, u.oldState)
	u.oldState = nil
	registry.release()
	return err
}

func (u *unixIO) Width() (int, error) {
	w, _, err := term.GetSize(u.outFd)
	if err != nil {
		return 0, err
	}
	return w, nil
}

func (u *unixIO) SetUTF8Mode() error {
	// POSIX terminals take their encoding from the user's locale; there
	// is nothing to toggle here (SPEC_FULL.md §4.F).
	return nil
}

func (u *unixIO) ReadKey() (inline.KeyEvent, error) {
	return decodeKey(u.reader)
}

func (u *unixIO) InstallHandlers() error {
	if u.installed {
		return nil
	}
	u.sigCh = make(chan os.Signal, 1)
	signal.Notify(u.sigCh, syscall.SIGWINCH)
	u.installed = true
	go u.watchResize()
	return nil
}

func (u *unixIO) watchResize() {
	for range u.sigCh {
		u.resized.Store(true)
	}
}

func (u *unixIO) UninstallHandlers() {
	if !u.installed {
		return
	}
	signal.Stop(u.sigCh)
	close(u.sigCh)
	u.installed = false
}

func (u *unixIO) ResizePending() bool {
	return u.resized.CompareAndSwap(true, false)
}

func (u *unixIO) Write(p []byte) (int, error) {
	return unix.Write(u.outFd, p)
}
