package lexicon

import (
	"github.com/orsonlang/orson-mode/internal/token"
)

// The built-in Orson lexicon. Tables are process-wide, read-only, and built
// once; classification calls share them without locking.
//
// Operator lexemes that share a prefix with a shorter lexeme (`<`, `<=`,
// `<<`, `<<=`) are all present; the pattern compiler resolves the ambiguity
// with longest-match ordering, not this data.
var (
	// Operators holds Orson's symbolic operators.
	Operators = NewTable(token.ClassOperator,
		":=", "::", ":",
		"<<=", "<<", "<=", "<>", "<",
		">>=", ">>", ">=", ">",
		"=", "+", "-", "*", "/",
		"&", "|", "~", "@", "^",
	)

	// ClauseKeywords holds the keywords that open or continue clauses.
	ClauseKeywords = NewTable(token.ClassClauseKeyword,
		"also", "alt", "alts", "and", "case", "catch", "do", "else",
		"for", "form", "gen", "if", "in", "load", "mod", "not", "of",
		"or", "past", "proc", "prog", "then", "tuple", "while", "with",
	)

	// QuotedNames holds the predeclared constant names.
	QuotedNames = NewTable(token.ClassQuotedName,
		"true", "false", "skip", "nil", "eof", "eol", "inf", "pi",
	)

	// PlainNames holds the predeclared transform and procedure names.
	PlainNames = NewTable(token.ClassPlainName,
		"abs", "argc", "argv", "chr", "close", "conc", "count", "halt",
		"head", "length", "max", "min", "open", "ord", "read", "tail",
		"write",
	)

	// SimpleTypes holds the concrete type names.
	SimpleTypes = NewTable(token.ClassSimpleType,
		"cha0", "cha1", "int0", "int1", "int2", "real0", "real1",
		"list", "null", "ref", "row", "string", "type", "var", "void",
	)

	// JokerTypes holds the placeholder type names.
	JokerTypes = NewTable(token.ClassJokerType,
		"alj", "cha", "exe", "foj", "inj", "mut", "num", "obj", "pla",
		"pro", "rej", "sca", "str", "sym", "tra", "tup", "vaj",
	)
)

// OrsonTables returns the built-in tables in classification priority order:
// operators, clause keywords, and plain builtins first, then the name/type
// tables applied later so they outrank the first group on overlap.
func OrsonTables() []Table {
	return []Table{
		Operators,
		ClauseKeywords,
		PlainNames,
		QuotedNames,
		SimpleTypes,
		JokerTypes,
	}
}
