// Package spanfmt renders classified span sets for the CLI: a
// human-readable listing, a JSON encoding, and a styled reconstruction of
// the source.
package spanfmt

import (
	"fmt"
	"io"

	"github.com/orsonlang/orson-mode/internal/source"
	"github.com/orsonlang/orson-mode/internal/token"
)

// FormatSpansPretty writes one line per span, followed by the fence marks
// when any region was found.
func FormatSpansPretty(w io.Writer, spans []token.Span, marks []token.FenceMark, fs *source.FileSet) error {
	for i, sp := range spans {
		startPos, endPos := fs.Resolve(sp.Span)

		if _, err := fmt.Fprintf(w, "%3d: %-13s %q at %d:%d-%d:%d",
			i+1, sp.Class.String(), sp.Text,
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col); err != nil {
			return err
		}
		if sp.Open {
			if _, err := fmt.Fprint(w, " (open)"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if len(marks) == 0 || len(spans) == 0 {
		return nil
	}

	fileID := spans[0].Span.File
	if _, err := fmt.Fprintln(w, "fences:"); err != nil {
		return err
	}
	for _, mk := range marks {
		pos, _ := fs.Resolve(source.Span{File: fileID, Start: mk.Off, End: mk.Off + 1})
		if _, err := fmt.Fprintf(w, "  %-5s at %d:%d\n", mk.Kind.String(), pos.Line, pos.Col); err != nil {
			return err
		}
	}
	return nil
}
