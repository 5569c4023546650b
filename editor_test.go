package inline

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTerminalIO is a scriptable TerminalIO for driving ReadLine and the
// dispatch table without a real terminal, in the spirit of the
// teacher's test doubles for its PTY interface.
type fakeTerminalIO struct {
	tty       bool
	supported bool
	keys      []KeyEvent
	pos       int
	written   []byte
	width     int

	fallbackLine string
	fallbackEOF  bool
}

func newFakeTerminalIO(keys ...KeyEvent) *fakeTerminalIO {
	return &fakeTerminalIO{tty: true, supported: true, keys: keys, width: 80}
}

func (f *fakeTerminalIO) IsTTY() bool       { return f.tty }
func (f *fakeTerminalIO) IsSupported() bool { return f.supported }
func (f *fakeTerminalIO) FallbackReadLine() (string, bool, error) {
	return f.fallbackLine, f.fallbackEOF, nil
}
func (f *fakeTerminalIO) EnterRaw() error { return nil }
func (f *fakeTerminalIO) ExitRaw() error  { return nil }
func (f *fakeTerminalIO) Width() (int, error) {
	return f.width, nil
}
func (f *fakeTerminalIO) SetUTF8Mode() error { return nil }
func (f *fakeTerminalIO) ReadKey() (KeyEvent, error) {
	if f.pos >= len(f.keys) {
		return KeyEvent{}, io.EOF
	}
	k := f.keys[f.pos]
	f.pos++
	return k, nil
}
func (f *fakeTerminalIO) InstallHandlers() error { return nil }
func (f *fakeTerminalIO) UninstallHandlers()      {}
func (f *fakeTerminalIO) ResizePending() bool     { return false }
func (f *fakeTerminalIO) Write(p []byte) (int, error) {
	f.written = append(f.written, p...)
	return len(p), nil
}

func charKeys(s string) []KeyEvent {
	var out []KeyEvent
	for _, r := range s {
		out = append(out, KeyEvent{Kind: KeyChar, Rune: r, Text: string(r)})
	}
	return out
}

func TestReadLineCommitsOnReturn(t *testing.T) {
	keys := append(charKeys("hello"), KeyEvent{Kind: KeyReturn})
	fio := newFakeTerminalIO(keys...)
	e := New("> ", WithTerminalIO(fio))
	defer e.Close()

	line, err := e.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello", line)
	assert.NotEmpty(t, fio.written, "renderer should have written escape sequences")
}

func TestReadLineAddsAcceptedLineToHistory(t *testing.T) {
	keys := append(charKeys("first"), KeyEvent{Kind: KeyReturn})
	fio := newFakeTerminalIO(keys...)
	e := New("> ", WithTerminalIO(fio))
	defer e.Close()

	_, err := e.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, e.hist.count())
}

func TestReadLineEOFWithNothingTypedReturnsEOF(t *testing.T) {
	fio := newFakeTerminalIO() // no keys: ReadKey immediately returns io.EOF
	e := New("> ", WithTerminalIO(fio))
	defer e.Close()

	line, err := e.ReadLine(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "", line)
}

func TestReadLineEOFAfterSomeTypingReturnsBufferedText(t *testing.T) {
	keys := charKeys("partial") // no Return, then ReadKey hits EOF
	fio := newFakeTerminalIO(keys...)
	e := New("> ", WithTerminalIO(fio))
	defer e.Close()

	line, err := e.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "partial", line)
}

func TestReadLineNonInteractiveFallback(t *testing.T) {
	fio := &fakeTerminalIO{tty: false, fallbackLine: "piped input"}
	e := New("> ", WithTerminalIO(fio))
	defer e.Close()

	line, err := e.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "piped input", line)
}

func TestReadLineUnsupportedTerminalFallback(t *testing.T) {
	fio := &fakeTerminalIO{tty: true, supported: false, fallbackLine: "typed line"}
	e := New("> ", WithTerminalIO(fio))
	defer e.Close()

	line, err := e.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "typed line", line)
}

func TestReadLineAfterCloseReturnsErrClosed(t *testing.T) {
	fio := newFakeTerminalIO()
	e := New("> ", WithTerminalIO(fio))
	require.NoError(t, e.Close())

	line, err := e.ReadLine(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
	assert.Equal(t, "", line)
}

func TestSetPaletteAndSyntaxColorWiring(t *testing.T) {
	e := New("> ")
	require.NoError(t, e.SetPalette([]int32{-1, 1}))

	var sawOffset int
	e.SetSyntaxColor(func(buf string, byteOffset int) (ColorSpan, bool) {
		sawOffset = byteOffset
		return ColorSpan{ByteEnd: len(buf), ColorIndex: 1}, false
	})

	require.NoError(t, e.buf.insert([]byte("abc")))
	var w countingWriter
	e.DisplayWithSyntaxColoring(&w, e.Text())
	assert.Equal(t, 0, sawOffset)
	assert.Contains(t, w.String(), "abc")
}

type countingWriter struct {
	data []byte
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *countingWriter) String() string { return string(w.data) }
