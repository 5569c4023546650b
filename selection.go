package inline

// Selection: anchor/active-position pair over the buffer (spec.md §3
// "Selection", §4.C). Grounded on the teacher's buffer_selection.go
// anchor/active coordinate-pair normalisation, generalized from
// screen (x,y) coordinates to a single grapheme index.

func (b *buffer) hasSelection() bool {
	return b.selection != selNone
}

// beginSelection sets the anchor to the current cursor if none is
// active; idempotent while a selection is already active.
func (b *buffer) beginSelection() {
	if b.selection == selNone {
		b.selection = b.cursor
	}
}

func (b *buffer) clearSelection() {
	b.selection = selNone
}

// selectionRange returns the normalised [l, r) grapheme range and the
// corresponding byte range. If there is no selection, l==r==cursor and
// byte range is empty at the cursor's byte offset.
func (b *buffer) selectionRange() (l, r, byteL, byteR int) {
	if !b.hasSelection() {
		at := b.byteOffset(b.cursor)
		return b.cursor, b.cursor, at, at
	}
	l, r = b.selection, b.cursor
	if l > r {
		l, r = r, l
	}
	return l, r, b.byteOffset(l), b.byteOffset(r)
}

// selectionBytes returns a copy of the bytes covered by the current
// selection, or nil if there is none.
func (b *buffer) selectionBytes() []byte {
	_, _, byteL, byteR := b.selectionRange()
	if byteL >= byteR {
		return nil
	}
	cp := make([]byte, byteR-byteL)
	copy(cp, b.data[byteL:byteR])
	return cp
}

// deleteSelection removes the active selection's bytes, moving the
// cursor to its left edge. No-op if there is no selection.
func (b *buffer) deleteSelection() error {
	if !b.hasSelection() {
		return nil
	}
	l, r, _, _ := b.selectionRange()
	if err := b.deleteGrapheme2(l, r); err != nil {
		return err
	}
	b.cursor = l
	b.clearSelection()
	return nil
}
