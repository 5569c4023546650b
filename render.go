package inline

// The incremental renderer (spec.md §2 component J, §4.I). Grounded on
// the teacher's cli/renderer.go: hide-cursor/redraw/show-cursor
// framing, SGR-transition-only attribute tracking, and a single
// strings.Builder output batch per frame — narrowed from a full
// terminal-emulator cell grid to spec.md's line/prompt/selection/
// ghost-suggestion model.

// render redraws the full editor view and returns the escape sequence
// batch to write. Every step corresponds to a numbered step in
// spec.md §4.I.
func (e *Editor) render(width int) []byte {
	b := e.buf
	var out outputBuf

	out.WriteString(seqHideCursor)

	// Move cursor to the editor's origin.
	out.WriteString("\r")
	out.WriteString(seqCursorUp(e.lastTermRow))

	cursorRow := b.lineOf(b.cursor)
	lineStart := b.lineStartGrapheme(cursorRow)
	cursorCol := b.cursor - lineStart

	e.view.screenCols = width - e.promptWidth(cursorRow) - 1
	if e.view.screenCols < 1 {
		e.view.screenCols = 1
	}
	e.adjustViewport(cursorRow, cursorCol)

	lineCount := b.lineCount()
	var cursorTermCol int
	cursorFound := false

	for row := 0; row < lineCount; row++ {
		out.WriteString("\r")
		termCol, hasCursor := e.renderLine(&out, row, row == lineCount-1)
		if row == cursorRow && hasCursor {
			cursorTermCol = termCol
			cursorFound = true
		}
		if row < lineCount-1 {
			out.WriteString("\n")
		}
	}

	extra := 0
	if e.lastLinesDrawn > lineCount {
		extra = e.lastLinesDrawn - lineCount
		for i := 0; i < extra; i++ {
			out.WriteString("\n\r")
			out.WriteString(seqClearToEOL)
		}
	}

	out.WriteString("\r")
	if !cursorFound {
		cursorTermCol = 0
	}
	vertDelta := cursorRow - (lineCount - 1) - extra
	switch {
	case vertDelta < 0:
		out.WriteString(seqCursorUp(-vertDelta))
	case vertDelta > 0:
		out.WriteString(seqCursorDown(vertDelta))
	}
	out.WriteString(seqCursorRight(cursorTermCol))

	e.lastTermRow = cursorRow
	e.lastLinesDrawn = lineCount

	out.WriteString(seqShowCursor)
	return out.Bytes()
}

func (e *Editor) promptForLine(row int) string {
	if row == 0 {
		return e.prompt
	}
	return e.continuation
}

func (e *Editor) promptWidth(row int) int {
	return e.stringWidth(e.promptForLine(row))
}

func (e *Editor) stringWidth(s string) int {
	width := e.buf.width()
	total := 0
	data := []byte(s)
	i := 0
	for i < len(data) {
		n := utf8Len(data[i])
		if i+n > len(data) {
			n = len(data) - i
		}
		total += width(data[i : i+n])
		i += n
	}
	return total
}

// adjustViewport shifts firstVisibleCol the minimum amount to bring the
// cursor's terminal column within [firstVisibleCol, firstVisibleCol+screenCols).
func (e *Editor) adjustViewport(cursorRow, cursorCol int) {
	b := e.buf
	width := b.width()
	lineStart := b.lineStartGrapheme(cursorRow)

	col := 0
	for g := lineStart; g < lineStart+cursorCol; g++ {
		col += width(b.graphemeAt(g))
	}

	v := &e.view
	if col < v.firstVisibleCol {
		v.firstVisibleCol = col
	}
	if col >= v.firstVisibleCol+v.screenCols {
		v.firstVisibleCol = col - v.screenCols + 1
	}
	if v.firstVisibleCol < 0 {
		v.firstVisibleCol = 0
	}
}

// renderLine draws one logical line: prompt, clipped grapheme range,
// syntax colouring, selection inverse video, and (on the final line,
// cursor-at-end only) the ghost suggestion. Returns the terminal column
// at which the logical cursor falls within this line, and whether the
// cursor is on this line.
func (e *Editor) renderLine(out *outputBuf, row int, isFinal bool) (cursorTermCol int, hasCursor bool) {
	b := e.buf
	width := b.width()

	prompt := e.promptForLine(row)
	out.WriteString(prompt)
	promptW := e.stringWidth(prompt)

	lineStartG := b.lineStartGrapheme(row)
	lineEndG := b.lineEndGrapheme(row)

	selL, selR, _, _ := b.selectionRange()

	// Clip to the horizontal viewport.
	col := 0
	visStart := lineStartG
	for visStart < lineEndG {
		w := width(b.graphemeAt(visStart))
		if col+w > e.view.firstVisibleCol {
			break
		}
		col += w
		visStart++
	}

	termCol := 0
	var curFg int32 = -1
	spanEnd := -1 // byte offset the current fetched span covers up to
	var spanColor int32 = -1
	spanExhausted := e.syntaxFn == nil || e.palette == nil
	inverse := false
	colorActive := false

	// colorAt returns the colour covering byteOff, fetching further
	// spans from e.syntaxFn as needed. A missing callback, or a span
	// that does not advance past byteOff, aborts colouring for the
	// rest of the line (spec.md §7 CallbackFailure) but never aborts
	// rendering.
	colorAt := func(byteOff int) int32 {
		if spanExhausted && byteOff >= spanEnd {
			return -1
		}
		if byteOff < spanEnd {
			return spanColor
		}
		span, more := e.syntaxFn(b.text(), byteOff)
		if span.ByteEnd <= byteOff {
			spanExhausted = true
			return -1
		}
		spanEnd = span.ByteEnd
		spanColor = e.palette.Lookup(span.ColorIndex)
		if !more {
			spanExhausted = true
		}
		return spanColor
	}

	g := visStart
	for g < lineEndG {
		w := width(b.graphemeAt(g))
		if termCol+w > e.view.screenCols {
			break
		}
		byteOff := b.graphemes[g]
		if g == b.cursor {
			cursorTermCol = termCol
			hasCursor = true
		}

		inSel := g >= selL && g < selR
		if inSel != inverse {
			if inSel {
				out.WriteString(seqInverse)
			} else {
				out.WriteString(seqReset)
				colorActive = false
				curFg = -1
			}
			inverse = inSel
		}
		if !inverse {
			next := colorAt(byteOff)
			if next != curFg {
				if next < 0 {
					out.WriteString(seqResetFg)
				} else {
					emitColor(out, next)
				}
				curFg = next
				colorActive = curFg >= 0
			}
		}

		gr := b.graphemeAt(g)
		if len(gr) == 1 && gr[0] == '\t' {
			for i := 0; i < defaultTabWidth; i++ {
				out.WriteByte(' ')
			}
		} else {
			out.Write(gr)
		}
		termCol += w
		col += w
		g++
	}
	if b.cursor == lineEndG && row == b.lineOf(b.cursor) {
		cursorTermCol = termCol
		hasCursor = true
	}

	if inverse || colorActive {
		out.WriteString(seqReset)
		inverse = false
		colorActive = false
	}

	e.suggestionShown = false
	if isFinal && b.cursor == b.graphemeCount() && !b.hasSelection() {
		if suf, ok := e.suggest.current(); ok && suf != "" {
			sufWidth := e.stringWidth(suf)
			if termCol+sufWidth <= e.view.screenCols {
				out.WriteString(seqFaint)
				out.WriteString(suf)
				out.WriteString(seqReset)
				e.suggestionShown = true
			}
		}
	}

	if termCol < e.view.screenCols {
		out.WriteString(seqClearToEOL)
	}

	return promptW + cursorTermCol, hasCursor
}
