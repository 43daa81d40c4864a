package classify

import (
	"github.com/orsonlang/orson-mode/internal/source"
	"github.com/orsonlang/orson-mode/internal/token"
)

// Result is the composite classification of one byte range: a per-offset
// class array written by the primary passes and overridden by the secondary
// pass, plus fence markers for literal regions.
type Result struct {
	File *source.File
	From uint32
	To   uint32

	classes []token.Class
	fences  []token.Fence
	// unterminated records a string region that failed open at To.
	unterminated bool
}

func newResult(file *source.File, from, to uint32) *Result {
	n := to - from
	return &Result{
		File:    file,
		From:    from,
		To:      to,
		classes: make([]token.Class, n),
		fences:  make([]token.Fence, n),
	}
}

// ClassAt returns the class at an absolute byte offset. Offsets outside the
// classified range resolve to ClassNone.
func (r *Result) ClassAt(off uint32) token.Class {
	if off < r.From || off >= r.To {
		return token.ClassNone
	}
	return r.classes[off-r.From]
}

// FenceAt returns the fence state at an absolute byte offset.
func (r *Result) FenceAt(off uint32) token.Fence {
	if off < r.From || off >= r.To {
		return token.FenceNone
	}
	return r.fences[off-r.From]
}

// Unterminated reports whether a string region failed open at the end of
// the range.
func (r *Result) Unterminated() bool {
	return r.unterminated
}

func (r *Result) setClass(start, end uint32, c token.Class) {
	for off := start; off < end; off++ {
		r.classes[off-r.From] = c
	}
}

func (r *Result) setFence(off uint32, f token.Fence) {
	r.fences[off-r.From] = f
}

// Spans coalesces the per-offset classes into classified spans, skipping
// unclaimed bytes. Adjacent same-class bytes form one span, except that a
// fence-open always starts a new span so back-to-back string literals stay
// distinct.
func (r *Result) Spans() []token.Span {
	var out []token.Span
	content := r.File.Content

	var start uint32
	current := token.ClassNone
	flush := func(end uint32) {
		if current == token.ClassNone || start == end {
			return
		}
		sp := token.Span{
			Span:  source.Span{File: r.File.ID, Start: start, End: end},
			Class: current,
			Text:  string(content[start:end]),
		}
		if r.unterminated && current == token.ClassString && end == r.To {
			sp.Open = true
		}
		out = append(out, sp)
	}

	for off := r.From; off < r.To; off++ {
		c := r.classes[off-r.From]
		if c != current || r.fences[off-r.From] == token.FenceOpen {
			flush(off)
			start = off
			current = c
		}
	}
	flush(r.To)
	return out
}

// FenceMarks returns every fence in offset order.
func (r *Result) FenceMarks() []token.FenceMark {
	var out []token.FenceMark
	for off := r.From; off < r.To; off++ {
		if f := r.fences[off-r.From]; f != token.FenceNone {
			out = append(out, token.FenceMark{Off: off, Kind: f})
		}
	}
	return out
}
