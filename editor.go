package inline

// Editor is the long-lived handle described by spec.md §3. It owns the
// buffer, clipboard, palette, suggestion and history lists,
// configuration callbacks, viewport, and mode flags.
//
// Unlike the C original, callbacks here are plain Go closures: there is
// no separate "opaque reference" parameter, since a closure already
// captures whatever state the host needs. This is the idiomatic Go
// rendition of spec.md §6's "(callback, ref)" pairs.
type Editor struct {
	prompt       string
	continuation string

	buf  *buffer
	clip clipboardState

	palette     *Palette
	suggest     *suggestions
	hist        *history
	syntaxFn    SyntaxColorFunc
	multilineFn MultilineFunc

	view viewport

	io TerminalIO

	rawModeEntered   bool
	suggestionShown  bool
	lastTermRow      int
	lastLinesDrawn   int
	closed           bool
}

// viewport is the horizontal-scroll state of spec.md §3 "Viewport".
type viewport struct {
	firstVisibleCol int
	screenCols      int
}

// Option configures an Editor at construction time.
type Option func(*Editor)

// WithTerminalIO installs the platform I/O implementation ReadLine will
// drive. Hosts normally pass term.NewStdIO() (see package term); tests pass
// a fake.
func WithTerminalIO(io TerminalIO) Option {
	return func(e *Editor) { e.io = io }
}

// New creates a new Editor handle, copying prompt (spec.md entry point
// 1 "new(prompt)").
func New(prompt string, opts ...Option) *Editor {
	e := &Editor{
		prompt:  prompt,
		buf:     newBuffer(),
		suggest: newSuggestions(),
		hist:    newHistory(),
	}
	e.continuation = prompt
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Close releases every owned allocation (spec.md entry point 2).
// Editor holds no external OS resources outside of a ReadLine call
// (raw mode is entered and exited within ReadLine itself, per spec.md
// §5's scoped-acquisition guarantee), so Close only needs to drop
// references and mark the handle unusable.
func (e *Editor) Close() error {
	if e.rawModeEntered && e.io != nil {
		_ = e.io.ExitRaw()
		e.io.UninstallHandlers()
		e.rawModeEntered = false
	}
	e.buf = nil
	e.closed = true
	return nil
}

// resetForRead resets every piece of per-read state, per spec.md §3
// "Lifecycles": buffer, indices, cursor, selection, history browse,
// suggestions, recorded row/line count.
func (e *Editor) resetForRead() {
	e.buf.clear()
	e.hist.endBrowse()
	e.suggest.clear()
	e.suggestionShown = false
	e.lastTermRow = 0
	e.lastLinesDrawn = 0
}

// SetHistoryLength sets the bounded history capacity (spec.md entry
// point 4). Positive = cap, 0 = disabled (clears), negative = unlimited.
func (e *Editor) SetHistoryLength(n int) {
	e.hist.setMaxLength(n)
}

// AddHistory copies entry into history, returning whether it was
// accepted (spec.md entry point 5).
func (e *Editor) AddHistory(entry string) bool {
	return e.hist.add(entry)
}

// SetSyntaxColor installs the syntax-colouring callback (spec.md entry
// point 6).
func (e *Editor) SetSyntaxColor(fn SyntaxColorFunc) {
	e.syntaxFn = fn
}

// SetPalette copies codes into the editor's palette, rejecting a
// non-positive count (spec.md entry point 6).
func (e *Editor) SetPalette(codes []int32) error {
	p, err := NewPalette(codes)
	if err != nil {
		return err
	}
	e.palette = p
	return nil
}

// SetAutocomplete installs the autocomplete enumerator (spec.md entry
// point 7).
func (e *Editor) SetAutocomplete(fn AutocompleteFunc) {
	e.suggest.fn = fn
}

// SetMultiline installs the multi-line continuation predicate and
// continuation prompt (spec.md entry point 8). An empty continuation
// defaults to the main prompt.
func (e *Editor) SetMultiline(fn MultilineFunc, continuation string) {
	e.multilineFn = fn
	if continuation == "" {
		continuation = e.prompt
	}
	e.continuation = continuation
}

// SetGraphemeSplitter installs a host grapheme splitter (spec.md entry
// point 9). Passing nil restores the default heuristic splitter.
func (e *Editor) SetGraphemeSplitter(fn SplitFunc) {
	e.buf.splitFn = fn
}

// SetGraphemeWidth installs a host grapheme width function (spec.md
// entry point 9). Passing nil restores the default width estimator.
func (e *Editor) SetGraphemeWidth(fn WidthFunc) {
	e.buf.widthFn = fn
}

// Text returns the editor's current buffer contents. Exposed for hosts
// and tests that want to inspect in-progress editing state.
func (e *Editor) Text() string {
	return e.buf.text()
}

// CursorPosn returns the current cursor grapheme index.
func (e *Editor) CursorPosn() int {
	return e.buf.cursor
}
