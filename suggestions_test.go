package inline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionsRegenerateFromCallback(t *testing.T) {
	s := newSuggestions()
	calls := map[string]bool{}
	s.fn = func(buf string, index int) (string, bool) {
		calls[buf] = true
		opts := []string{"ello", "i"}
		if index >= len(opts) {
			return "", false
		}
		return opts[index], true
	}

	s.regenerate("h")
	require.True(t, s.hasSuggestions())
	cur, ok := s.current()
	assert.True(t, ok)
	assert.Equal(t, "ello", cur)
	assert.True(t, calls["h"])

	s.advance(1)
	cur, _ = s.current()
	assert.Equal(t, "i", cur)

	s.advance(1) // wraps
	cur, _ = s.current()
	assert.Equal(t, "ello", cur)
}

func TestSuggestionsRegenerateNoMatches(t *testing.T) {
	s := newSuggestions()
	s.fn = func(buf string, index int) (string, bool) { return "", false }
	s.regenerate("x")
	assert.False(t, s.hasSuggestions())
	_, ok := s.current()
	assert.False(t, ok)
}

func TestSuggestionsClearWithoutCallback(t *testing.T) {
	s := newSuggestions()
	s.regenerate("anything") // fn is nil
	assert.False(t, s.hasSuggestions())
}
