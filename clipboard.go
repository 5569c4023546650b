package inline

import "github.com/atotto/clipboard"

// Clipboard: the internal byte-level clipboard spec.md §3/§4.C
// describes, plus an opt-in mirror into the host OS clipboard via
// github.com/atotto/clipboard (wired per SPEC_FULL.md's domain-stack
// table — the same library eugeniofciuvasile-ssh-x-term depends on).
// Mirroring is off by default: spec.md's clipboard model is purely
// in-process, so reaching out to the OS clipboard is additive, never a
// substitute for it.
type clipboardState struct {
	data       []byte
	syncSystem bool
}

func (c *clipboardState) set(b []byte) {
	c.data = append(c.data[:0], b...)
	if c.syncSystem && len(b) > 0 {
		// Best-effort only: a headless or clipboard-less host must not
		// break editing because the system clipboard is unavailable.
		_ = clipboard.WriteAll(string(b))
	}
}

func (c *clipboardState) clear() {
	c.data = c.data[:0]
}

func (c *clipboardState) bytes() []byte {
	return c.data
}

// copySelection copies the active selection's bytes into the clipboard.
func (e *Editor) copySelection() {
	b := e.buf.selectionBytes()
	if b == nil {
		e.clip.clear()
		return
	}
	e.clip.set(b)
}

// cutSelection copies then deletes the active selection.
func (e *Editor) cutSelection() error {
	e.copySelection()
	return e.buf.deleteSelection()
}

// paste deletes any active selection, then inserts the clipboard bytes
// at the cursor. Pasting an empty clipboard is a no-op.
func (e *Editor) paste() error {
	if e.buf.hasSelection() {
		if err := e.buf.deleteSelection(); err != nil {
			return err
		}
	}
	if len(e.clip.bytes()) == 0 {
		return nil
	}
	return e.buf.insert(e.clip.bytes())
}

// SyncSystemClipboard toggles best-effort mirroring of cut/copy
// operations into the host OS clipboard (spec.md's own clipboard model
// stays purely internal; this is additive).
func (e *Editor) SyncSystemClipboard(enabled bool) {
	e.clip.syncSystem = enabled
}
