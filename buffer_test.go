package inline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferInsertAndText(t *testing.T) {
	b := newBuffer()
	require.NoError(t, b.insert([]byte("hello")))
	assert.Equal(t, "hello", b.text())
	assert.Equal(t, 5, b.graphemeCount())
	assert.Equal(t, 5, b.cursor)

	b.cursor = 0
	require.NoError(t, b.insert([]byte("say ")))
	assert.Equal(t, "say hello", b.text())
	assert.Equal(t, 4, b.cursor)
}

func TestBufferDeleteBackspace(t *testing.T) {
	b := newBuffer()
	require.NoError(t, b.insert([]byte("abc")))
	require.NoError(t, b.delete()) // backspace at end
	assert.Equal(t, "ab", b.text())
	assert.Equal(t, 2, b.cursor)

	b.cursor = 0
	require.NoError(t, b.delete()) // backspace at start deletes the grapheme under the cursor
	assert.Equal(t, "b", b.text())
}

func TestBufferDeleteCurrent(t *testing.T) {
	b := newBuffer()
	require.NoError(t, b.insert([]byte("abc")))
	b.cursor = 0
	require.NoError(t, b.deleteCurrent())
	assert.Equal(t, "bc", b.text())
	assert.Equal(t, 0, b.cursor)
}

func TestBufferClear(t *testing.T) {
	b := newBuffer()
	require.NoError(t, b.insert([]byte("abc")))
	b.beginSelection()
	b.clear()
	assert.Equal(t, "", b.text())
	assert.Equal(t, 0, b.cursor)
	assert.False(t, b.hasSelection())
	assert.Equal(t, 0, b.graphemeCount())
}

func TestBufferLinesAndCursorLines(t *testing.T) {
	b := newBuffer()
	require.NoError(t, b.insert([]byte("one\ntwo\nthree")))
	assert.Equal(t, 3, b.lineCount())
	assert.Equal(t, 0, b.lineOf(0))
	// "two" starts after "one\n" (4 graphemes in).
	assert.Equal(t, 1, b.lineOf(4))
	assert.Equal(t, 2, b.lineOf(b.graphemeCount()))

	row1Start := b.lineStartGrapheme(1)
	row1End := b.lineEndGrapheme(1)
	assert.Equal(t, "two", string(b.data[b.byteOffset(row1Start):b.byteOffset(row1End)]))
}

func TestBufferGrowthReservesGeometrically(t *testing.T) {
	b := newBuffer()
	long := strings.Repeat("x", minBufferCap*3)
	require.NoError(t, b.insert([]byte(long)))
	assert.Equal(t, long, b.text())
	assert.GreaterOrEqual(t, cap(b.data), len(long))
}

func TestBufferInsertKeepsIndexSentinels(t *testing.T) {
	b := newBuffer()
	require.NoError(t, b.insert([]byte("héllo\nwörld")))
	// graphemes sentinel always equals length.
	assert.Equal(t, b.length, b.graphemes[len(b.graphemes)-1])
	assert.Equal(t, b.length, b.lines[len(b.lines)-1])
}

func TestSelectionRangeAndDelete(t *testing.T) {
	b := newBuffer()
	require.NoError(t, b.insert([]byte("hello world")))
	b.cursor = 0
	b.beginSelection()
	b.cursor = 5

	l, r, byteL, byteR := b.selectionRange()
	assert.Equal(t, 0, l)
	assert.Equal(t, 5, r)
	assert.Equal(t, "hello", string(b.data[byteL:byteR]))

	require.NoError(t, b.deleteSelection())
	assert.Equal(t, " world", b.text())
	assert.False(t, b.hasSelection())
	assert.Equal(t, 0, b.cursor)
}

func TestSelectionRangeNormalisesReversedAnchor(t *testing.T) {
	b := newBuffer()
	require.NoError(t, b.insert([]byte("abcdef")))
	b.cursor = 4
	b.beginSelection()
	b.cursor = 1

	l, r, _, _ := b.selectionRange()
	assert.Equal(t, 1, l)
	assert.Equal(t, 4, r)
}

func TestClipboardCutCopyPaste(t *testing.T) {
	e := New("> ")
	require.NoError(t, e.buf.insert([]byte("hello world")))
	e.buf.cursor = 0
	e.buf.beginSelection()
	e.buf.cursor = 5

	e.copySelection()
	assert.Equal(t, "hello", string(e.clip.bytes()))

	require.NoError(t, e.cutSelection())
	assert.Equal(t, " world", e.buf.text())

	e.buf.cursor = e.buf.graphemeCount()
	require.NoError(t, e.paste())
	assert.Equal(t, " worldhello", e.buf.text())
}
