package lexicon

import (
	"slices"

	"github.com/orsonlang/orson-mode/internal/token"
)

// Table is an immutable set of literal lexeme strings sharing one class.
// Within a table, membership is a set: construction deduplicates and drops
// empty strings, so a malformed table degrades to fewer (or zero) lexemes
// rather than an error.
type Table struct {
	class   token.Class
	lexemes []string
}

// NewTable builds a table for class from the given lexemes, preserving first
// occurrence order.
func NewTable(class token.Class, lexemes ...string) Table {
	out := make([]string, 0, len(lexemes))
	for _, lex := range lexemes {
		if lex == "" {
			continue
		}
		if slices.Contains(out, lex) {
			continue
		}
		out = append(out, lex)
	}
	return Table{class: class, lexemes: out}
}

// Class returns the class every lexeme of this table carries.
func (t Table) Class() token.Class {
	return t.class
}

// Lexemes returns a copy of the table's lexemes.
func (t Table) Lexemes() []string {
	return slices.Clone(t.lexemes)
}

// Len returns the number of lexemes in the table.
func (t Table) Len() int {
	return len(t.lexemes)
}

// Contains reports whether the exact string is a member of the table.
func (t Table) Contains(lex string) bool {
	return slices.Contains(t.lexemes, lex)
}

// FindDuplicates returns the strings that occur more than once in lexemes.
// Loaders use it to reject descriptor files that violate the set invariant
// before construction silently repairs them.
func FindDuplicates(lexemes []string) []string {
	seen := make(map[string]int, len(lexemes))
	var dups []string
	for _, lex := range lexemes {
		seen[lex]++
		if seen[lex] == 2 {
			dups = append(dups, lex)
		}
	}
	return dups
}
