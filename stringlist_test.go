package inline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringListAppendAndCurrent(t *testing.T) {
	l := newStringList()
	_, ok := l.current()
	assert.False(t, ok)

	l.append("a")
	l.append("b")
	l.append("c")
	assert.Equal(t, 3, l.count())
}

func TestStringListAdvanceNoWrap(t *testing.T) {
	l := newStringList()
	l.append("a")
	l.append("b")
	l.append("c")

	l.advance(-1, false) // first call with no cursor jumps to the last entry
	s, ok := l.current()
	assert.True(t, ok)
	assert.Equal(t, "c", s)

	l.advance(-1, false)
	s, _ = l.current()
	assert.Equal(t, "b", s)

	l.advance(-1, false)
	s, _ = l.current()
	assert.Equal(t, "a", s)

	l.advance(-1, false) // clamped, no wrap
	s, _ = l.current()
	assert.Equal(t, "a", s)
}

func TestStringListAdvanceWrap(t *testing.T) {
	l := newStringList()
	l.append("a")
	l.append("b")
	l.browse = 0

	l.advance(-1, true)
	s, _ := l.current()
	assert.Equal(t, "b", s, "wraps backward past the start")

	l.advance(1, true)
	s, _ = l.current()
	assert.Equal(t, "a", s)
}

func TestStringListPopFrontAdjustsBrowse(t *testing.T) {
	l := newStringList()
	l.append("a")
	l.append("b")
	l.browse = 0

	l.popFront()
	assert.Equal(t, listNone, l.browse)
	assert.Equal(t, 1, l.count())

	l.browse = 0
	l.append("c")
	l.popFront()
	assert.Equal(t, listNone, l.browse)
}

func TestStringListClear(t *testing.T) {
	l := newStringList()
	l.append("a")
	l.browse = 0
	l.clear()
	assert.Equal(t, 0, l.count())
	assert.Equal(t, listNone, l.browse)
}
