package inline

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryAddRejectsEmptyAndDuplicateOfLast(t *testing.T) {
	h := newHistory()
	assert.False(t, h.add(""))
	assert.True(t, h.add("one"))
	assert.False(t, h.add("one"), "duplicate of the most recent entry is rejected")
	assert.True(t, h.add("two"))
	assert.True(t, h.add("one"), "duplicate of an older entry is fine")
	assert.Equal(t, 3, h.count())
}

func TestHistorySetMaxLengthTrimsFromFront(t *testing.T) {
	h := newHistory()
	for i := 0; i < 5; i++ {
		h.add(strconv.Itoa(i))
	}
	h.setMaxLength(3)
	assert.Equal(t, 3, h.count())
	assert.Equal(t, "2", h.list.items[0])
	assert.Equal(t, "4", h.list.items[2])
}

func TestHistorySetMaxLengthZeroClears(t *testing.T) {
	h := newHistory()
	h.add("a")
	h.add("b")
	h.setMaxLength(0)
	assert.Equal(t, 0, h.count())
}

func TestHistoryCapEvictsOnAdd(t *testing.T) {
	h := newHistory()
	h.setMaxLength(2)
	h.add("a")
	h.add("b")
	h.add("c")
	assert.Equal(t, 2, h.count())
	assert.Equal(t, []string{"b", "c"}, h.list.items)
}

func TestHistoryBrowseNoWrap(t *testing.T) {
	h := newHistory()
	h.add("a")
	h.add("b")
	h.add("c")

	h.browse(-1)
	s, ok := h.current()
	assert.True(t, ok)
	assert.Equal(t, "c", s)

	h.browse(-1)
	h.browse(-1)
	h.browse(-1) // past the start, clamped
	s, _ = h.current()
	assert.Equal(t, "a", s)

	h.endBrowse()
	assert.False(t, h.isBrowsing())
}
