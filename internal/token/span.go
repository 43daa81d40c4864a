package token

import (
	"github.com/orsonlang/orson-mode/internal/source"
)

// Span is a classified byte range over the source text.
type Span struct {
	Span  source.Span
	Class Class
	Text  string
	// Open marks a region whose closing delimiter never arrived before the
	// end of the scanned range. Only regions fail open; lexeme spans never
	// set it.
	Open bool
}

// Fence tags a single byte as the boundary of an opaque literal region.
type Fence uint8

const (
	// FenceNone means the byte is not a region boundary.
	FenceNone Fence = iota
	// FenceOpen means the byte starts a literal region.
	FenceOpen
	// FenceClose means the byte ends a literal region.
	FenceClose
)

func (f Fence) String() string {
	switch f {
	case FenceOpen:
		return "open"
	case FenceClose:
		return "close"
	default:
		return "none"
	}
}

// FenceMark records a fence at an absolute byte offset.
type FenceMark struct {
	Off  uint32
	Kind Fence
}
