package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsupportedTermTypes(t *testing.T) {
	assert.True(t, unsupportedTermTypes["dumb"])
	assert.True(t, unsupportedTermTypes["emacs"])
	assert.False(t, unsupportedTermTypes["xterm-256color"])
}

func TestDetectCapabilitiesFallsBackOnNonTTY(t *testing.T) {
	// Under `go test`, stdin/stdout are not a terminal; DetectCapabilities
	// must still return sane, non-zero defaults rather than erroring.
	caps := DetectCapabilities()
	assert.False(t, caps.IsTerminal)
	assert.Greater(t, caps.Width, 0)
	assert.Greater(t, caps.Height, 0)
}
