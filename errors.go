package inline

import "errors"

// Sentinel errors. OutOfMemory propagates from an internal allocation
// (buffer capacity growth that would overflow) per spec.md §7.
// NoTerminal and Closed are Go-idiomatic signals for the fallback paths
// and lifecycle the original spec describes with return codes.
var (
	ErrOutOfMemory        = errors.New("inline: out of memory")
	ErrClosed             = errors.New("inline: editor closed")
	ErrNoTerminal         = errors.New("inline: no terminal available")
	errInvalidPaletteSize = errors.New("inline: palette must have a positive number of entries")
	errInvalidRange       = errors.New("inline: invalid byte range")
)
