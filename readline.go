package inline

import (
	"context"
	"io"
)

// ReadLine reads one line of UTF-8 text from the terminal (spec.md
// entry point 3). It resets all per-read state, then follows §4.F's
// terminal-support detection: non-interactive input is read verbatim
// up to a newline or EOF; an interactive but unsupported terminal
// (e.g. TERM=dumb) prints the prompt and reads a line through the OS;
// otherwise it drives the full interactive path (raw mode, key
// decode/dispatch/render loop) until commit, EOF, or ctx is done.
//
// A true end-of-input with nothing ever entered returns ("", io.EOF),
// distinguishable from a committed empty line ("", nil) — per spec.md
// §7. EOF after some text was entered returns that text (spec.md §5
// "Cancellation": EOF ends the read with the current buffer's
// contents).
func (e *Editor) ReadLine(ctx context.Context) (string, error) {
	if e.closed {
		return "", ErrClosed
	}

	e.resetForRead()

	if e.io == nil {
		return "", ErrNoTerminal
	}

	if !e.io.IsTTY() {
		line, eof, err := e.io.FallbackReadLine()
		if err != nil {
			return "", err
		}
		if eof && line == "" {
			return "", io.EOF
		}
		return line, nil
	}

	if !e.io.IsSupported() {
		Emit(stdoutWriter{e.io}, e.prompt)
		line, eof, err := e.io.FallbackReadLine()
		if err != nil {
			return "", err
		}
		line = stripTrailingControl(line)
		if eof && line == "" {
			return "", io.EOF
		}
		return line, nil
	}

	return e.readLineInteractive(ctx)
}

// stdoutWriter adapts TerminalIO's Write to io.Writer for Emit.
type stdoutWriter struct{ io TerminalIO }

func (s stdoutWriter) Write(p []byte) (int, error) { return s.io.Write(p) }

func stripTrailingControl(s string) string {
	end := len(s)
	for end > 0 && s[end-1] < 0x20 {
		end--
	}
	return s[:end]
}

func (e *Editor) readLineInteractive(ctx context.Context) (string, error) {
	if err := e.io.EnterRaw(); err != nil {
		// Raw-mode entry failed: return without entering the
		// interactive path, producing whatever is already in the
		// buffer (spec.md §7 TerminalUnavailable).
		return e.buf.text(), nil
	}
	e.rawModeEntered = true
	_ = e.io.SetUTF8Mode()
	_ = e.io.InstallHandlers()

	defer func() {
		e.io.UninstallHandlers()
		_ = e.io.ExitRaw()
		e.rawModeEntered = false
	}()

	width, err := e.io.Width()
	if err != nil || width <= 0 {
		width = 80
	}

	everTyped := false
	out := stdoutWriter{e.io}
	Emit(out, string(e.render(width)))

	for {
		select {
		case <-ctx.Done():
			if everTyped {
				return e.buf.text(), nil
			}
			return "", io.EOF
		default:
		}

		if e.io.ResizePending() {
			if w, err := e.io.Width(); err == nil && w > 0 {
				width = w
			}
		}

		key, err := e.io.ReadKey()
		if err != nil {
			if err == io.EOF {
				if everTyped || e.buf.length > 0 {
					return e.buf.text(), nil
				}
				return "", io.EOF
			}
			return "", err
		}
		everTyped = true

		res, err := e.handleKey(key)
		if err != nil {
			return "", err
		}
		if res.commit {
			if res.commitText != "" {
				e.hist.add(res.commitText)
			}
			return res.commitText, nil
		}

		Emit(out, string(e.render(width)))
	}
}
