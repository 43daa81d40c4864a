package token

// Class represents the semantic category assigned to a span of source text.
type Class uint8

const (
	// ClassNone marks bytes that no table or region claimed.
	ClassNone Class = iota

	// ClassOperator represents an operator lexeme.
	ClassOperator // e.g. :=
	// ClassClauseKeyword represents a clause keyword lexeme.
	ClassClauseKeyword // e.g. while
	// ClassQuotedName represents a predeclared quoted name lexeme.
	ClassQuotedName // e.g. true
	// ClassPlainName represents a predeclared plain name lexeme.
	ClassPlainName // e.g. max
	// ClassSimpleType represents a simple type name lexeme.
	ClassSimpleType // e.g. int0
	// ClassJokerType represents a joker (placeholder) type name lexeme.
	ClassJokerType // e.g. inj

	// ClassString represents an opaque string literal region.
	ClassString
	// ClassComment represents a line comment region.
	ClassComment

	classCount
)

func (c Class) String() string {
	switch c {
	case ClassNone:
		return "None"
	case ClassOperator:
		return "Operator"
	case ClassClauseKeyword:
		return "ClauseKeyword"
	case ClassQuotedName:
		return "QuotedName"
	case ClassPlainName:
		return "PlainName"
	case ClassSimpleType:
		return "SimpleType"
	case ClassJokerType:
		return "JokerType"
	case ClassString:
		return "String"
	case ClassComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// IsLexeme reports whether the class is produced by a lexeme table match.
func (c Class) IsLexeme() bool {
	switch c {
	case ClassOperator, ClassClauseKeyword, ClassQuotedName, ClassPlainName,
		ClassSimpleType, ClassJokerType:
		return true
	default:
		return false
	}
}

// IsRegion reports whether the class is produced by the secondary pass and
// therefore outranks any lexeme class on the same bytes.
func (c Class) IsRegion() bool {
	return c == ClassString || c == ClassComment
}

// Classes returns every assignable class in declaration order.
func Classes() []Class {
	out := make([]Class, 0, classCount-1)
	for c := ClassOperator; c < classCount; c++ {
		out = append(out, c)
	}
	return out
}
