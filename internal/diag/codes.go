package diag

import (
	"fmt"
)

// Code is a compact, stable identifier for a diagnostic.
type Code uint16

const (
	// UnknownCode is the zero value fallback.
	UnknownCode Code = 0

	// ClassifyUnterminatedString marks a string opener with no closing
	// delimiter before the end of the scanned range.
	ClassifyUnterminatedString Code = 1001
	// ClassifyLoneQuote marks a single quote inside string content, which
	// the delimiter search does not support.
	ClassifyLoneQuote Code = 1002

	// DialectDuplicateLexeme marks a duplicated lexeme in a descriptor
	// table.
	DialectDuplicateLexeme Code = 2001
	// DialectEmptyTable marks a descriptor table with no lexemes.
	DialectEmptyTable Code = 2002
)

// ID returns the stable string form, e.g. "ORS1001".
func (c Code) ID() string {
	return fmt.Sprintf("ORS%04d", uint16(c))
}

func (c Code) String() string {
	switch c {
	case ClassifyUnterminatedString:
		return "unterminated-string"
	case ClassifyLoneQuote:
		return "lone-quote"
	case DialectDuplicateLexeme:
		return "duplicate-lexeme"
	case DialectEmptyTable:
		return "empty-table"
	default:
		return "unknown"
	}
}
