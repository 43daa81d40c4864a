package spanfmt

import (
	"io"

	"github.com/orsonlang/orson-mode/internal/source"
	"github.com/orsonlang/orson-mode/internal/token"
	"github.com/orsonlang/orson-mode/internal/ui"
)

// HighlightString reconstructs the source text with each classified span
// styled by the theme. Unclassified bytes pass through verbatim, so the
// output differs from the input only by escape sequences.
func HighlightString(file *source.File, spans []token.Span, theme ui.Theme) string {
	var b []byte
	cursor := uint32(0)
	for _, sp := range spans {
		if sp.Span.Start > cursor {
			b = append(b, file.Content[cursor:sp.Span.Start]...)
		}
		b = append(b, theme.Render(sp.Class, sp.Text)...)
		cursor = sp.Span.End
	}
	if int(cursor) < len(file.Content) {
		b = append(b, file.Content[cursor:]...)
	}
	return string(b)
}

// Highlight writes the styled reconstruction to w.
func Highlight(w io.Writer, file *source.File, spans []token.Span, theme ui.Theme) error {
	_, err := io.WriteString(w, HighlightString(file, spans, theme))
	return err
}
