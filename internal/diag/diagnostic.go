package diag

import (
	"github.com/orsonlang/orson-mode/internal/source"
)

// Diagnostic is a single finding over a span of source text.
//
// Classification has no fatal conditions, so the model stops at warnings:
// degraded behavior (an unterminated literal, an unsupported lone quote)
// surfaces here while the span set stays best-effort.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
}
