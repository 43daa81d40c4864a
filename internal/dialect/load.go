package dialect

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/orsonlang/orson-mode/internal/diag"
	"github.com/orsonlang/orson-mode/internal/lexicon"
	"github.com/orsonlang/orson-mode/internal/token"
)

var (
	// ErrDialectSectionMissing indicates that [dialect] is missing.
	ErrDialectSectionMissing = errors.New("missing [dialect]")
	// ErrDialectNameMissing indicates that [dialect].name is missing.
	ErrDialectNameMissing = errors.New("missing [dialect].name")
	// ErrBadCommentTrigger indicates the comment trigger is not one byte.
	ErrBadCommentTrigger = errors.New("comment trigger must be a single character")
	// ErrBadStringDelimiter indicates the string delimiter is not a
	// two-character sequence.
	ErrBadStringDelimiter = errors.New("string delimiter must be two characters")
	// ErrUnknownTable indicates an unrecognized key under [tables].
	ErrUnknownTable = errors.New("unknown table")
	// ErrDuplicateLexeme indicates a table entry occurs twice.
	ErrDuplicateLexeme = errors.New("duplicate lexeme")
)

// tableKeys maps [tables] keys to classes, in classification priority order.
var tableKeys = []struct {
	key   string
	class token.Class
}{
	{"operator", token.ClassOperator},
	{"clause", token.ClassClauseKeyword},
	{"plain", token.ClassPlainName},
	{"quoted", token.ClassQuotedName},
	{"simple", token.ClassSimpleType},
	{"joker", token.ClassJokerType},
}

type fileDescriptor struct {
	Dialect dialectSection      `toml:"dialect"`
	Tables  map[string][]string `toml:"tables"`
}

type dialectSection struct {
	Name    string   `toml:"name"`
	Comment string   `toml:"comment"`
	String  string   `toml:"string"`
	Blocks  []string `toml:"blocks"`
}

// Load parses a TOML mode descriptor. Tables absent from the file are empty
// and classification over them is a no-op; structural problems (duplicate
// lexemes, malformed delimiters) are load errors so they never reach the
// engine.
func Load(path string) (*Dialect, error) {
	var cfg fileDescriptor
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("dialect") {
		return nil, fmt.Errorf("%s: %w", path, ErrDialectSectionMissing)
	}
	if cfg.Dialect.Name == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrDialectNameMissing)
	}
	if len(cfg.Dialect.Comment) != 1 {
		return nil, fmt.Errorf("%s: %w (got %q)", path, ErrBadCommentTrigger, cfg.Dialect.Comment)
	}
	if len(cfg.Dialect.String) != 2 {
		return nil, fmt.Errorf("%s: %w (got %q)", path, ErrBadStringDelimiter, cfg.Dialect.String)
	}

	known := make(map[string]bool, len(tableKeys))
	for _, tk := range tableKeys {
		known[tk.key] = true
	}
	for key := range cfg.Tables {
		if !known[key] {
			return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownTable, key)
		}
	}

	tables := make([]lexicon.Table, 0, len(tableKeys))
	for _, tk := range tableKeys {
		lexemes := cfg.Tables[tk.key]
		if dups := lexicon.FindDuplicates(lexemes); len(dups) > 0 {
			return nil, fmt.Errorf("%s: table %q: [%s] %w %q",
				path, tk.key, diag.DialectDuplicateLexeme.ID(), ErrDuplicateLexeme, dups[0])
		}
		tables = append(tables, lexicon.NewTable(tk.class, lexemes...))
	}

	blockOpen, blockClose := "", ""
	if len(cfg.Dialect.Blocks) == 2 {
		blockOpen, blockClose = cfg.Dialect.Blocks[0], cfg.Dialect.Blocks[1]
	}

	return New(cfg.Dialect.Name, tables, cfg.Dialect.Comment[0], cfg.Dialect.String, blockOpen, blockClose), nil
}
