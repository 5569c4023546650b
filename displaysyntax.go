package inline

import "io"

// DisplayWithSyntaxColoring writes s to w using the editor's syntax
// callback and palette, with no viewport clipping (spec.md §4.J, entry
// point 10). The callback is invoked starting at offset 0 and advanced
// by each reported span until end of string; a missing callback, or a
// non-advancing span, flushes the remainder uncoloured. Unlike the
// interactive renderer (render.go), which only emits an SGR change when
// the colour actually transitions, this helper resets the foreground
// after every span (spec.md §4.J: "Foreground is reset after each
// span") since it is meant for one-shot echoing of a line, not a
// redrawn viewport where transition-diffing matters for throughput.
func (e *Editor) DisplayWithSyntaxColoring(w io.Writer, s string) {
	var out outputBuf
	n := len(s)

	if e.syntaxFn == nil || e.palette == nil {
		writePlain(&out, s)
		w.Write(out.Bytes())
		return
	}

	pos := 0
	for pos < n {
		span, more := e.syntaxFn(s, pos)
		if span.ByteEnd <= pos {
			writePlain(&out, s[pos:])
			pos = n
			break
		}
		end := span.ByteEnd
		if end > n {
			end = n
		}
		color := e.palette.Lookup(span.ColorIndex)
		if color >= 0 {
			emitColor(&out, color)
		}
		writePlain(&out, s[pos:end])
		if color >= 0 {
			out.WriteString(seqResetFg)
		}
		pos = end
		if !more {
			if pos < n {
				writePlain(&out, s[pos:])
			}
			pos = n
			break
		}
	}
	w.Write(out.Bytes())
}

// writePlain writes s verbatim except tabs, which render as
// defaultTabWidth spaces, matching the interactive renderer.
func writePlain(out *outputBuf, s string) {
	data := []byte(s)
	i := 0
	for i < len(data) {
		if data[i] == '\t' {
			for j := 0; j < defaultTabWidth; j++ {
				out.WriteByte(' ')
			}
			i++
			continue
		}
		n := utf8Len(data[i])
		if i+n > len(data) {
			n = len(data) - i
		}
		out.Write(data[i : i+n])
		i += n
	}
}
