// Package testkit provides invariant checks shared by tests across the
// module.
package testkit

import (
	"fmt"

	"github.com/orsonlang/orson-mode/internal/classify"
	"github.com/orsonlang/orson-mode/internal/token"
)

// CheckResultInvariants runs structural checks every classification result
// must satisfy:
//  1. spans are sorted, non-empty, non-overlapping, and inside [From, To)
//  2. no span carries ClassNone
//  3. fences pair up in order (open before close), sit inside String
//     spans, and an unterminated result ends with an unmatched open
func CheckResultInvariants(r *classify.Result) error {
	if r == nil {
		return fmt.Errorf("nil result")
	}
	if r.From > r.To {
		return fmt.Errorf("inverted range %d..%d", r.From, r.To)
	}

	spans := r.Spans()
	var prevEnd uint32
	for i, sp := range spans {
		if sp.Class == token.ClassNone {
			return fmt.Errorf("span %d carries ClassNone", i)
		}
		if sp.Span.Empty() {
			return fmt.Errorf("span %d is empty: %v", i, sp.Span)
		}
		if sp.Span.Start < r.From || sp.Span.End > r.To {
			return fmt.Errorf("span %d escapes the range: %v not in %d..%d", i, sp.Span, r.From, r.To)
		}
		if i > 0 && sp.Span.Start < prevEnd {
			return fmt.Errorf("span %d overlaps its predecessor: %v starts before %d", i, sp.Span, prevEnd)
		}
		if sp.Open && sp.Class != token.ClassString {
			return fmt.Errorf("span %d is Open but not a string: %v", i, sp.Class)
		}
		if int(sp.Span.Len()) != len(sp.Text) {
			return fmt.Errorf("span %d text length %d does not match span %v", i, len(sp.Text), sp.Span)
		}
		prevEnd = sp.Span.End
	}

	inString := func(off uint32) bool {
		for _, sp := range spans {
			if sp.Class == token.ClassString && sp.Span.Contains(off) {
				return true
			}
		}
		return false
	}

	marks := r.FenceMarks()
	open := false
	for i, mk := range marks {
		if mk.Off < r.From || mk.Off >= r.To {
			return fmt.Errorf("fence %d outside the range: %d", i, mk.Off)
		}
		if !inString(mk.Off) {
			return fmt.Errorf("fence %d at %d is not inside a string span", i, mk.Off)
		}
		switch mk.Kind {
		case token.FenceOpen:
			if open {
				return fmt.Errorf("fence %d: open while a region is already open", i)
			}
			open = true
		case token.FenceClose:
			if !open {
				return fmt.Errorf("fence %d: close without a matching open", i)
			}
			open = false
		default:
			return fmt.Errorf("fence %d has kind none", i)
		}
	}
	if open != r.Unterminated() {
		return fmt.Errorf("dangling open = %v but Unterminated() = %v", open, r.Unterminated())
	}
	return nil
}
