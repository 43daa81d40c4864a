package spanfmt

import (
	"encoding/json"
	"io"

	"github.com/orsonlang/orson-mode/internal/source"
	"github.com/orsonlang/orson-mode/internal/token"
)

// SpanJSON is the JSON shape of one classified span.
type SpanJSON struct {
	Class     string `json:"class"`
	Text      string `json:"text"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line"`
	StartCol  uint32 `json:"start_col"`
	EndLine   uint32 `json:"end_line"`
	EndCol    uint32 `json:"end_col"`
	Open      bool   `json:"open,omitempty"`
}

// FenceJSON is the JSON shape of one fence mark.
type FenceJSON struct {
	Kind   string `json:"kind"`
	Offset uint32 `json:"offset"`
	Line   uint32 `json:"line"`
	Col    uint32 `json:"col"`
}

// SpansOutput is the root of the JSON output for one file.
type SpansOutput struct {
	File   string      `json:"file"`
	Spans  []SpanJSON  `json:"spans"`
	Fences []FenceJSON `json:"fences,omitempty"`
	Count  int         `json:"count"`
}

// FormatSpansJSON writes the span set as indented JSON.
func FormatSpansJSON(w io.Writer, file *source.File, spans []token.Span, marks []token.FenceMark, fs *source.FileSet) error {
	out := SpansOutput{
		File:  file.Path,
		Spans: make([]SpanJSON, 0, len(spans)),
		Count: len(spans),
	}

	for _, sp := range spans {
		startPos, endPos := fs.Resolve(sp.Span)
		out.Spans = append(out.Spans, SpanJSON{
			Class:     sp.Class.String(),
			Text:      sp.Text,
			StartByte: sp.Span.Start,
			EndByte:   sp.Span.End,
			StartLine: startPos.Line,
			StartCol:  startPos.Col,
			EndLine:   endPos.Line,
			EndCol:    endPos.Col,
			Open:      sp.Open,
		})
	}

	for _, mk := range marks {
		pos, _ := fs.Resolve(source.Span{File: file.ID, Start: mk.Off, End: mk.Off + 1})
		out.Fences = append(out.Fences, FenceJSON{
			Kind:   mk.Kind.String(),
			Offset: mk.Off,
			Line:   pos.Line,
			Col:    pos.Col,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
