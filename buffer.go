package inline

// The text buffer, grapheme index, and line index (spec.md §3 "Text
// buffer", "Grapheme index", "Line index") plus the mutation primitives
// of spec.md §4.B.
//
// Unlike the teacher's Buffer (guarded by sync.RWMutex for concurrent
// GUI/PTY consumers), this Buffer is deliberately lock-free: spec.md §5
// mandates a single-threaded, strictly synchronous model where the host
// never calls into the same editor from two goroutines at once.

const minBufferCap = 64

// buffer is the growable byte buffer plus its derived grapheme and line
// indices. It is embedded in Editor rather than exported on its own,
// since every spec.md operation on it is really an Editor operation.
type buffer struct {
	data   []byte // capacity may exceed length; always grows by doubling
	length int    // used length, buffer_len

	graphemes []int // byte offsets, strictly monotonic, sentinel == length
	lines     []int // byte offsets of line starts, sentinel == length

	cursor    int // grapheme index in [0, graphemeCount]
	selection int // grapheme index, or selNone

	splitFn SplitFunc
	widthFn WidthFunc

	dirty bool
}

const selNone = -1

func newBuffer() *buffer {
	b := &buffer{
		data:      make([]byte, 0, minBufferCap),
		graphemes: []int{0},
		lines:     []int{0, 0},
		selection: selNone,
	}
	return b
}

func (b *buffer) split() SplitFunc {
	if b.splitFn != nil {
		return b.splitFn
	}
	return defaultSplit
}

func (b *buffer) width() WidthFunc {
	if b.widthFn != nil {
		return b.widthFn
	}
	return defaultWidth
}

func (b *buffer) graphemeCount() int {
	return len(b.graphemes) - 1
}

func (b *buffer) lineCount() int {
	return len(b.lines) - 1
}

// byteOffset returns the byte offset of grapheme index i, clamped to
// [0, graphemeCount].
func (b *buffer) byteOffset(i int) int {
	if i < 0 {
		i = 0
	}
	if i > b.graphemeCount() {
		i = b.graphemeCount()
	}
	return b.graphemes[i]
}

// graphemeAt returns the bytes of grapheme i.
func (b *buffer) graphemeAt(i int) []byte {
	if i < 0 || i >= b.graphemeCount() {
		return nil
	}
	return b.data[b.graphemes[i]:b.graphemes[i+1]]
}

// reserve grows data's capacity to hold at least n bytes, doubling
// geometrically. Returns ErrOutOfMemory if the new capacity would
// overflow.
func (b *buffer) reserve(n int) error {
	if cap(b.data) >= n {
		return nil
	}
	newCap := cap(b.data)
	if newCap < minBufferCap {
		newCap = minBufferCap
	}
	for newCap < n {
		grown := newCap * 2
		if grown <= newCap { // overflow
			return ErrOutOfMemory
		}
		newCap = grown
	}
	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
	return nil
}

// recomputeIndices rebuilds graphemes and lines from scratch over
// data[0:length]. Must be called after every mutation before any
// operation consumes the indices.
func (b *buffer) recomputeIndices() {
	split := b.split()
	b.graphemes = b.graphemes[:0]
	b.graphemes = append(b.graphemes, 0)
	pos := 0
	for pos < b.length {
		n := split(b.data[:b.length], pos)
		if n <= 0 {
			n = 1
		}
		pos += n
		if pos > b.length {
			pos = b.length
		}
		b.graphemes = append(b.graphemes, pos)
	}
	if len(b.graphemes) == 0 || b.graphemes[len(b.graphemes)-1] != b.length {
		b.graphemes = append(b.graphemes, b.length)
	}

	b.lines = b.lines[:0]
	b.lines = append(b.lines, 0)
	for i := 0; i < b.graphemeCount(); i++ {
		start, end := b.graphemes[i], b.graphemes[i+1]
		if end-start == 1 && b.data[start] == '\n' {
			b.lines = append(b.lines, end)
		}
	}
	b.lines = append(b.lines, b.length)
}

func (b *buffer) markDirty() {
	b.dirty = true
}

// insert inserts bytes at the cursor's byte offset. After insertion the
// cursor is set to the grapheme immediately following the inserted run,
// per spec.md §4.B.
func (b *buffer) insert(bytes []byte) error {
	if len(bytes) == 0 {
		return nil
	}
	at := b.byteOffset(b.cursor)
	if err := b.reserve(b.length + len(bytes)); err != nil {
		return err
	}
	b.data = b.data[:b.length+len(bytes)]
	copy(b.data[at+len(bytes):], b.data[at:b.length])
	copy(b.data[at:], bytes)
	b.length += len(bytes)
	b.recomputeIndices()
	b.cursor = b.graphemeIndexForByte(at + len(bytes))
	b.markDirty()
	return nil
}

// graphemeIndexForByte returns the grapheme index whose start byte
// offset equals off (the grapheme immediately following a boundary).
func (b *buffer) graphemeIndexForByte(off int) int {
	lo, hi := 0, b.graphemeCount()
	for lo < hi {
		mid := (lo + hi) / 2
		if b.graphemes[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// deleteBytes removes [start, end) from the buffer. Caller guarantees a
// valid range.
func (b *buffer) deleteBytes(start, end int) error {
	if start < 0 || end > b.length || start > end {
		return errInvalidRange
	}
	if start == end {
		return nil
	}
	copy(b.data[start:], b.data[end:b.length])
	b.length -= end - start
	b.data = b.data[:b.length]
	b.recomputeIndices()
	b.markDirty()
	return nil
}

func (b *buffer) deleteGrapheme(i int) error {
	if i < 0 || i >= b.graphemeCount() {
		return nil
	}
	return b.deleteBytes(b.graphemes[i], b.graphemes[i+1])
}

// delete implements user backspace (spec.md §4.B delete()).
func (b *buffer) delete() error {
	if b.hasSelection() {
		return b.deleteSelection()
	}
	if b.cursor > 0 {
		if err := b.deleteGrapheme(b.cursor - 1); err != nil {
			return err
		}
		b.cursor--
		return nil
	}
	return b.deleteGrapheme(b.cursor)
}

// deleteCurrent implements user forward-delete.
func (b *buffer) deleteCurrent() error {
	return b.deleteGrapheme(b.cursor)
}

// deleteGrapheme2 deletes the half-open grapheme range [l, r).
func (b *buffer) deleteGrapheme2(l, r int) error {
	if l < 0 {
		l = 0
	}
	if r > b.graphemeCount() {
		r = b.graphemeCount()
	}
	if l >= r {
		return nil
	}
	return b.deleteBytes(b.graphemes[l], b.graphemes[r])
}

// clear resets the buffer to empty, per spec.md §4.B clear().
func (b *buffer) clear() {
	b.length = 0
	b.data = b.data[:0]
	b.graphemes = b.graphemes[:1]
	b.graphemes[0] = 0
	b.lines = append(b.lines[:0], 0, 0)
	b.cursor = 0
	b.selection = selNone
	b.markDirty()
}

// text returns a copy of the current buffer contents as a string.
func (b *buffer) text() string {
	return string(b.data[:b.length])
}

// lineOf returns the line index containing grapheme index g.
func (b *buffer) lineOf(g int) int {
	off := b.byteOffset(g)
	lo, hi := 0, b.lineCount()-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if b.lines[mid] <= off {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// lineStartGrapheme returns the grapheme index of the first grapheme of
// line row.
func (b *buffer) lineStartGrapheme(row int) int {
	return b.graphemeIndexForByte(b.lines[row])
}

// lineEndGrapheme returns the grapheme index just past the last
// grapheme of line row (excluding any trailing newline).
func (b *buffer) lineEndGrapheme(row int) int {
	end := b.lines[row+1]
	g := b.graphemeIndexForByte(end)
	if g > 0 && end > b.lines[row] && end <= b.length && b.data[end-1] == '\n' {
		g--
	}
	return g
}
