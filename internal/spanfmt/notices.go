package spanfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/orsonlang/orson-mode/internal/diag"
	"github.com/orsonlang/orson-mode/internal/source"
)

// FormatNoticesPretty writes one line per notice in source order:
//
//	warning[ORS1001] path:3:7: unterminated string literal
func FormatNoticesPretty(w io.Writer, bag *diag.Bag, fs *source.FileSet) error {
	bag.Sort()
	for _, d := range bag.Items() {
		pos, _ := fs.Resolve(d.Primary)
		path := fs.Get(d.Primary.File).Path
		if _, err := fmt.Fprintf(w, "%s[%s] %s:%d:%d: %s\n",
			strings.ToLower(d.Severity.String()), d.Code.ID(),
			path, pos.Line, pos.Col, d.Message); err != nil {
			return err
		}
	}
	return nil
}
