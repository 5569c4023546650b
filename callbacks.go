package inline

// Host callback contracts (spec.md §6 "Callback contracts").

// ColorSpan names a half-open byte range [byteOffset, ByteEnd) of the
// buffer, where byteOffset is the offset the callback was invoked with
// and ByteEnd is an absolute buffer offset (see SyntaxColorFunc),
// mapped to a palette index.
type ColorSpan struct {
	ByteEnd    int
	ColorIndex int32
}

// SyntaxColorFunc reports the next colour span starting at byteOffset
// in buf. more reports whether any further span follows this one; a
// span with ByteEnd <= byteOffset (non-advancing) is treated the same
// as more == false: colouring stops and the remainder renders
// uncoloured (spec.md §7 CallbackFailure).
type SyntaxColorFunc func(buf string, byteOffset int) (span ColorSpan, more bool)

// MultilineFunc reports whether the buffer, as it stands when Return is
// pressed, needs another line before it should be committed. Must be
// pure and fast; called on each Return (spec.md §4.H).
type MultilineFunc func(buf string) (needMore bool)
