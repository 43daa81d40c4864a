// Package dialect holds the declarative bundle an editor shell consumes to
// wire the classification engine over a buffer: which lexeme tables apply,
// in which priority order, which comment trigger and string delimiter the
// secondary pass uses, and the block-boundary convention for jump commands.
package dialect

import (
	"github.com/orsonlang/orson-mode/internal/lexicon"
	"github.com/orsonlang/orson-mode/internal/pattern"
)

// Dialect is an immutable mode descriptor. Matchers are compiled once at
// construction; a Dialect is safe for concurrent read-only use.
type Dialect struct {
	name       string
	tables     []lexicon.Table
	matchers   []*pattern.Matcher
	trigger    byte
	delim      string
	blockOpen  string
	blockClose string
}

// New builds a dialect from tables in classification priority order. Every
// table is compiled eagerly; empty tables compile to matchers that match
// nothing.
func New(name string, tables []lexicon.Table, trigger byte, delim, blockOpen, blockClose string) *Dialect {
	matchers := make([]*pattern.Matcher, 0, len(tables))
	for _, tab := range tables {
		matchers = append(matchers, pattern.Compile(tab))
	}
	return &Dialect{
		name:       name,
		tables:     tables,
		matchers:   matchers,
		trigger:    trigger,
		delim:      delim,
		blockOpen:  blockOpen,
		blockClose: blockClose,
	}
}

var orson = New("orson", lexicon.OrsonTables(), '!', "''", "(", ")")

// Orson returns the built-in Orson descriptor.
func Orson() *Dialect {
	return orson
}

// Name returns the dialect name.
func (d *Dialect) Name() string { return d.name }

// Tables returns the active tables in priority order.
func (d *Dialect) Tables() []lexicon.Table { return d.tables }

// Matchers returns the compiled matchers in priority order.
func (d *Dialect) Matchers() []*pattern.Matcher { return d.matchers }

// CommentTrigger returns the byte that starts a line comment.
func (d *Dialect) CommentTrigger() byte { return d.trigger }

// StringDelimiter returns the delimiter sequence that both opens and closes
// a string region.
func (d *Dialect) StringDelimiter() string { return d.delim }

// Blocks returns the block open/close convention. Classification never uses
// it; the external shell does.
func (d *Dialect) Blocks() (open, close string) { return d.blockOpen, d.blockClose }
