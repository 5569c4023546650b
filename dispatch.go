package inline

// The editor state machine (spec.md §2 component I, §4.H): dispatches
// one key event to buffer/selection/history/suggestion actions.
// Grounded on the teacher's buffer_cursor.go / buffer_edit.go clamping
// idiom for cursor motion, generalized from screen (x,y) to a single
// grapheme index.

// outcome reports to the outer ReadLine loop whether the read should
// commit now, and with what text. The dispatch table's "clear
// selection?" / "regenerate suggestions?" / "end history browse?"
// columns (spec.md §4.H) are applied inside handleKey itself, uniformly
// after dispatch.
type outcome struct {
	commit     bool
	commitText string
	isEOFLike  bool
}

// handleKey dispatches one key event, mutating the editor, and reports
// whether the read loop should stop.
func (e *Editor) handleKey(k KeyEvent) (outcome, error) {
	clearSel := true
	regen := true
	endBrowse := true
	var out outcome
	var err error

	switch k.Kind {
	case KeyReturn:
		if e.multilineFn != nil && e.multilineFn(e.buf.text()) {
			err = e.buf.insert([]byte{'\n'})
			regen = false
		} else {
			out.commit = true
			out.commitText = e.buf.text()
		}

	case KeyCtrlReturn:
		err = e.buf.insert([]byte{'\n'})
		regen = false

	case KeyChar:
		err = e.buf.insert([]byte(k.Text))

	case KeyTab:
		if e.suggest.hasSuggestions() {
			e.suggest.advance(1)
			regen = false
		} else {
			err = e.buf.insert([]byte{'\t'})
		}

	case KeyShiftTab:
		if e.suggest.hasSuggestions() {
			e.suggest.advance(-1)
		}
		regen = false

	case KeyRight:
		if e.suggestionShown {
			e.acceptSuggestion()
			regen = false
		} else {
			e.moveCursor(1)
		}

	case KeyLeft:
		e.moveCursor(-1)

	case KeyShiftLeft:
		clearSel = false
		e.buf.beginSelection()
		e.moveCursor(-1)

	case KeyShiftRight:
		clearSel = false
		e.buf.beginSelection()
		e.moveCursor(1)

	case KeyUp:
		endBrowse = false
		e.browseHistory(-1)

	case KeyDown:
		endBrowse = false
		e.browseHistory(1)

	case KeyHome:
		e.moveCursorTo(e.buf.lineStartGrapheme(e.buf.lineOf(e.buf.cursor)))

	case KeyEnd:
		e.moveCursorTo(e.buf.lineEndGrapheme(e.buf.lineOf(e.buf.cursor)))

	case KeyPageUp:
		e.moveCursorTo(0)

	case KeyPageDown:
		e.moveCursorTo(e.buf.graphemeCount())

	case KeyDelete:
		err = e.buf.delete()

	case KeyCtrl:
		switch k.Rune {
		case 'A':
			e.moveCursorTo(e.buf.lineStartGrapheme(e.buf.lineOf(e.buf.cursor)))
		case 'B':
			e.moveCursor(-1)
		case 'E':
			e.moveCursorTo(e.buf.lineEndGrapheme(e.buf.lineOf(e.buf.cursor)))
		case 'F':
			e.moveCursor(1)
		case 'C':
			e.buf.clear()
			out.commit = true
			out.commitText = ""
		case 'D':
			e.buf.clearSelection()
			err = e.buf.deleteCurrent()
		case 'G':
			out.commit = true
			out.commitText = e.buf.text()
			regen = false
			endBrowse = false
			clearSel = false
		case 'K':
			err = e.cutToLineEnd()
		case 'U':
			err = e.cutToLineStart()
		case 'N':
			endBrowse = false
			regen = false
			e.browseHistory(1)
		case 'P':
			endBrowse = false
			regen = false
			e.browseHistory(-1)
		case 'L':
			e.buf.clear()
		case 'O':
			e.copySelection()
		case 'V', 'Y':
			err = e.paste()
		case 'X':
			err = e.cutSelection()
		case 'T':
			err = e.transpose()
		default:
			regen = false
			clearSel = false
			endBrowse = false
		}

	case KeyAlt:
		switch k.Rune {
		case 'w', 'W':
			e.copySelection()
		default:
			regen = false
			clearSel = false
			endBrowse = false
		}

	default:
		regen = false
		clearSel = false
		endBrowse = false
	}

	if endBrowse {
		e.hist.endBrowse()
	}
	if regen {
		e.maybeRegenerateSuggestions()
	}
	if clearSel {
		e.buf.clearSelection()
	}

	return out, err
}

func (e *Editor) moveCursor(delta int) {
	e.moveCursorTo(e.buf.cursor + delta)
}

func (e *Editor) moveCursorTo(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > e.buf.graphemeCount() {
		pos = e.buf.graphemeCount()
	}
	e.buf.cursor = pos
}

func (e *Editor) acceptSuggestion() {
	suf, ok := e.suggest.current()
	e.suggest.clear()
	e.suggestionShown = false
	if !ok || suf == "" {
		return
	}
	_ = e.buf.insert([]byte(suf))
}

// maybeRegenerateSuggestions invokes the autocomplete driver only when
// the cursor is at the end of the buffer, no selection is active, and
// the buffer isn't currently showing a browsed history entry rather
// than text the user typed, per spec.md §4.D.
func (e *Editor) maybeRegenerateSuggestions() {
	if e.buf.hasSelection() || e.buf.cursor != e.buf.graphemeCount() || e.hist.isBrowsing() {
		e.suggest.clear()
		return
	}
	e.suggest.regenerate(e.buf.text())
}

func (e *Editor) browseHistory(delta int) {
	e.hist.browse(delta)
	text, ok := e.hist.current()
	if !ok {
		text = ""
	}
	e.buf.clear()
	if text != "" {
		_ = e.buf.insert([]byte(text))
	}
	e.moveCursorTo(e.buf.graphemeCount())
}

// cutToLineEnd cuts from the cursor to the end of the current line
// (Ctrl-K), storing the removed bytes in the clipboard.
func (e *Editor) cutToLineEnd() error {
	row := e.buf.lineOf(e.buf.cursor)
	end := e.buf.lineEndGrapheme(row)
	if end <= e.buf.cursor {
		return nil
	}
	byteL, byteR := e.buf.byteOffset(e.buf.cursor), e.buf.byteOffset(end)
	cp := make([]byte, byteR-byteL)
	copy(cp, e.buf.data[byteL:byteR])
	e.clip.set(cp)
	return e.buf.deleteGrapheme2(e.buf.cursor, end)
}

// cutToLineStart cuts from the start of the current line to the cursor
// (Ctrl-U).
func (e *Editor) cutToLineStart() error {
	row := e.buf.lineOf(e.buf.cursor)
	start := e.buf.lineStartGrapheme(row)
	if start >= e.buf.cursor {
		return nil
	}
	byteL, byteR := e.buf.byteOffset(start), e.buf.byteOffset(e.buf.cursor)
	cp := make([]byte, byteR-byteL)
	copy(cp, e.buf.data[byteL:byteR])
	e.clip.set(cp)
	cursorAfter := start
	if err := e.buf.deleteGrapheme2(start, e.buf.cursor); err != nil {
		return err
	}
	e.buf.cursor = cursorAfter
	return nil
}

// transpose swaps the two graphemes at cursor-1 and cursor, moving the
// cursor forward by one (spec.md §4.H "Ctrl-T").
func (e *Editor) transpose() error {
	if e.buf.graphemeCount() < 2 || e.buf.cursor == 0 {
		return nil
	}
	a, bIdx := e.buf.cursor-1, e.buf.cursor
	if bIdx >= e.buf.graphemeCount() {
		bIdx = e.buf.graphemeCount() - 1
		a = bIdx - 1
		if a < 0 {
			return nil
		}
	}
	aStart, aEnd := e.buf.graphemes[a], e.buf.graphemes[a+1]
	bStart, bEnd := e.buf.graphemes[bIdx], e.buf.graphemes[bIdx+1]
	aBytes := make([]byte, aEnd-aStart)
	copy(aBytes, e.buf.data[aStart:aEnd])
	bBytes := make([]byte, bEnd-bStart)
	copy(bBytes, e.buf.data[bStart:bEnd])

	swapped := make([]byte, 0, len(aBytes)+len(bBytes))
	swapped = append(swapped, bBytes...)
	swapped = append(swapped, aBytes...)

	if err := e.buf.deleteBytes(aStart, bEnd); err != nil {
		return err
	}
	at := e.buf.byteOffset(a)
	if err := e.buf.reserve(e.buf.length + len(swapped)); err != nil {
		return err
	}
	e.buf.data = e.buf.data[:e.buf.length+len(swapped)]
	copy(e.buf.data[at+len(swapped):], e.buf.data[at:e.buf.length])
	copy(e.buf.data[at:], swapped)
	e.buf.length += len(swapped)
	e.buf.recomputeIndices()
	e.buf.cursor = e.buf.graphemeIndexForByte(at + len(swapped))
	e.buf.markDirty()
	return nil
}
