package inline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string // expected grapheme clusters, in order
	}{
		{"ascii", "abc", []string{"a", "b", "c"}},
		{"combining mark glued to base", "éllo", []string{"é", "l", "l", "o"}},
		{"keycap", "1⃣x", []string{"1⃣", "x"}},
		{"zwj joined emoji", "\U0001F468‍\U0001F469", []string{"\U0001F468‍\U0001F469"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			buf := []byte(tt.in)
			pos := 0
			for pos < len(buf) {
				n := defaultSplit(buf, pos)
				require.Greater(t, n, 0, "splitter must always advance")
				got = append(got, string(buf[pos:pos+n]))
				pos += n
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultSplitAlwaysAdvances(t *testing.T) {
	// Malformed/truncated UTF-8 must never return 0 or a length that
	// leaves pos unchanged; the buffer's recomputeIndices loop relies on
	// this for termination.
	buf := []byte{0xC2} // truncated two-byte lead
	n := defaultSplit(buf, 0)
	assert.Equal(t, 1, n)
}

func TestDefaultWidth(t *testing.T) {
	tests := []struct {
		name string
		g    string
		want int
	}{
		{"ascii letter", "a", 1},
		{"tab", "\t", defaultTabWidth},
		{"combining only", "́", 0},
		{"cjk", "中", 2},
		{"fullwidth form", "Ａ", 2},
		{"emoji", "\U0001F600", 2},
		{"zwj sequence", "\U0001F468‍\U0001F469", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultWidth([]byte(tt.g)))
		})
	}
}

func TestDecodeRuneRoundTrip(t *testing.T) {
	s := "aé中\U0001F600"
	buf := []byte(s)
	pos := 0
	var decoded []rune
	for pos < len(buf) {
		r, n := decodeRune(buf, pos)
		require.Greater(t, n, 0)
		decoded = append(decoded, r)
		pos += n
	}
	assert.Equal(t, []rune(s), decoded)
}
