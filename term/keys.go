package term

import (
	"io"

	"github.com/Morpho-lang/inline"
)

// byteSource is anything decodeKey can pull single bytes from. unixIO
// decodes raw stdin bytes through it. The Windows backend does not use
// this decoder: translateKeyEvent (keys_windows.go) maps console key
// events straight to inline.KeyEvent values, without producing escape
// bytes. Grounded on the teacher's parser.go byte-stream
// state-machine shape (read-ahead, table lookup terminated by an
// alpha/~ byte), narrowed from a full VT parser to spec.md's key-event
// subset.
type byteSource interface {
	ReadByte() (byte, error)
}

func utf8Len(lead byte) int {
	switch {
	case lead&0x80 == 0x00:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// decodeKey reads one logical key event from src (spec.md §4.G).
func decodeKey(src byteSource) (inline.KeyEvent, error) {
	b, err := src.ReadByte()
	if err != nil {
		return inline.KeyEvent{}, err
	}

	switch {
	case b == 0x09:
		return inline.KeyEvent{Kind: inline.KeyTab}, nil
	case b == 0x0A:
		return inline.KeyEvent{Kind: inline.KeyCtrlReturn}, nil
	case b == 0x0D:
		return inline.KeyEvent{Kind: inline.KeyReturn}, nil
	case b == 0x08 || b == 0x7F:
		return inline.KeyEvent{Kind: inline.KeyDelete}, nil
	case b == 0x1B:
		return decodeEscape(src)
	case b >= 0x01 && b <= 0x1A:
		return inline.KeyEvent{Kind: inline.KeyCtrl, Rune: rune('A' + b - 1)}, nil
	case b >= 0x20 && b <= 0x7F:
		return inline.KeyEvent{Kind: inline.KeyChar, Rune: rune(b), Text: string(rune(b))}, nil
	default:
		return decodeUTF8Char(src, b)
	}
}

// decodeUTF8Char gathers the continuation bytes of a multi-byte UTF-8
// sequence starting with lead, per spec.md §4.G "0x80+".
func decodeUTF8Char(src byteSource, lead byte) (inline.KeyEvent, error) {
	n := utf8Len(lead)
	buf := make([]byte, 1, n)
	buf[0] = lead
	for i := 1; i < n; i++ {
		b, err := src.ReadByte()
		if err != nil {
			break
		}
		buf = append(buf, b)
	}
	r := decodeRuneBytes(buf)
	return inline.KeyEvent{Kind: inline.KeyChar, Rune: r, Text: string(buf)}, nil
}

func decodeRuneBytes(b []byte) rune {
	switch len(b) {
	case 1:
		return rune(b[0])
	case 2:
		return rune(b[0]&0x1F)<<6 | rune(b[1]&0x3F)
	case 3:
		return rune(b[0]&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
	case 4:
		return rune(b[0]&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F)
	default:
		return 0
	}
}

// decodeEscape handles the byte following ESC (spec.md §4.G "Escape
// handling").
func decodeEscape(src byteSource) (inline.KeyEvent, error) {
	b1, err := src.ReadByte()
	if err != nil {
		// A lone ESC with nothing following (common on a slow pipe or
		// at true end of input) is reported as unknown rather than
		// blocking forever.
		if err == io.EOF {
			return inline.KeyEvent{Kind: inline.KeyUnknown}, nil
		}
		return inline.KeyEvent{}, err
	}
	if b1 != '[' {
		if b1 >= 0x80 {
			k, err := decodeUTF8Char(src, b1)
			if err != nil {
				return inline.KeyEvent{}, err
			}
			return inline.KeyEvent{Kind: inline.KeyAlt, Rune: k.Rune}, nil
		}
		return inline.KeyEvent{Kind: inline.KeyAlt, Rune: rune(b1)}, nil
	}

	var seq []byte
	for {
		b, err := src.ReadByte()
		if err != nil {
			return inline.KeyEvent{Kind: inline.KeyUnknown}, nil
		}
		seq = append(seq, b)
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			break
		}
		if len(seq) > 16 {
			return inline.KeyEvent{Kind: inline.KeyUnknown}, nil
		}
	}

	return inline.KeyEvent{Kind: lookupCSI(string(seq))}, nil
}

// lookupCSI maps the bytes following "ESC [" to a logical key kind,
// per spec.md §4.G's fixed table.
func lookupCSI(seq string) inline.KeyKind {
	switch seq {
	case "A":
		return inline.KeyUp
	case "B":
		return inline.KeyDown
	case "C":
		return inline.KeyRight
	case "D":
		return inline.KeyLeft
	case "H":
		return inline.KeyHome
	case "F":
		return inline.KeyEnd
	case "Z":
		return inline.KeyShiftTab
	case "5~":
		return inline.KeyPageUp
	case "6~":
		return inline.KeyPageDown
	case "1;2C":
		return inline.KeyShiftRight
	case "1;2D":
		return inline.KeyShiftLeft
	default:
		return inline.KeyUnknown
	}
}
