// Package classify implements the token classification engine: a primary
// pass that tags lexeme-table matches over a byte range, and a secondary
// lexical pass that resolves the paired, content-opaque constructs the
// primary pass cannot express (string regions and line comments).
//
// Classification never fails. All inputs are valid; degraded cases (an
// unterminated string, an embedded lone quote) resolve to a best-effort
// span set plus optional diagnostics.
package classify

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/orsonlang/orson-mode/internal/dialect"
	"github.com/orsonlang/orson-mode/internal/diag"
	"github.com/orsonlang/orson-mode/internal/pattern"
	"github.com/orsonlang/orson-mode/internal/source"
)

// Options configure one classification call.
type Options struct {
	// Dialect selects the active mode descriptor; nil means the built-in
	// Orson dialect.
	Dialect *dialect.Dialect
	// Reporter receives degraded-behavior notices; nil drops them.
	Reporter diag.Reporter
}

func (o Options) dialect() *dialect.Dialect {
	if o.Dialect == nil {
		return dialect.Orson()
	}
	return o.Dialect
}

func (o Options) reporter() diag.Reporter {
	if o.Reporter == nil {
		return diag.NopReporter{}
	}
	return o.Reporter
}

// Classify runs both passes over content[from:to) and returns the composite
// result. The range is clamped to the file; an empty range yields an empty
// result. Callers re-scanning an edited region must widen the range to a
// known-safe boundary (start of the enclosing line, or the last fence
// before the edit), since the secondary pass only searches forward from.
func Classify(file *source.File, from, to uint32, opts Options) *Result {
	lenContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		panic(fmt.Errorf("len content overflow: %w", err))
	}
	if to > lenContent {
		to = lenContent
	}
	if from > to {
		from = to
	}

	r := newResult(file, from, to)
	if from == to {
		return r
	}

	d := opts.dialect()
	for _, m := range d.Matchers() {
		primaryPass(r, file.Content, m)
	}
	scanRegions(r, file.Content, opts.reporter(), d.CommentTrigger(), d.StringDelimiter())
	return r
}

// ClassifyAll classifies the whole file.
func ClassifyAll(file *source.File, opts Options) *Result {
	lenContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		panic(fmt.Errorf("len content overflow: %w", err))
	}
	return Classify(file, 0, lenContent, opts)
}

// primaryPass scans the range left to right with one matcher, writing its
// class over every non-overlapping match. Passes run in dialect priority
// order, so a later table silently overwrites an earlier one on the bytes
// they both claim; that total order is load-bearing for rendering.
func primaryPass(r *Result, content []byte, m *pattern.Matcher) {
	class := m.Class()
	i := int(r.From)
	limit := int(r.To)
	for i < limit {
		n, ok := m.MatchAt(content, i, limit)
		if !ok {
			i++
			continue
		}
		r.setClass(uint32(i), uint32(i+n), class)
		i += n
	}
}

func report(rep diag.Reporter, code diag.Code, sev diag.Severity, file source.FileID, start, end uint32, msg string) {
	rep.Report(code, sev, source.Span{File: file, Start: start, End: end}, msg)
}
