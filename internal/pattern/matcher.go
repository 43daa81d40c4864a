// Package pattern compiles a lexeme table into a longest-match matcher.
//
// The matcher is the moral equivalent of an alternation regexp over the
// table, but keyed by first byte with candidates ordered longest first, so
// `<=` can never be cut short as `<` followed by `=`. Word-shaped lexemes
// additionally require identifier boundaries on both sides, so `max` never
// matches inside `maximum`. Matching is case-sensitive.
package pattern

import (
	"sort"

	"github.com/orsonlang/orson-mode/internal/lexicon"
	"github.com/orsonlang/orson-mode/internal/token"
)

type entry struct {
	text string
	// wordStart/wordEnd mark lexeme edges made of identifier characters;
	// those edges must sit on an identifier boundary to match.
	wordStart bool
	wordEnd   bool
}

// Matcher matches any lexeme of one table at a byte offset.
type Matcher struct {
	class   token.Class
	byFirst [256][]entry
}

// Compile builds a matcher from the table. An empty table compiles to a
// matcher that matches nothing; Compile never fails.
func Compile(tab lexicon.Table) *Matcher {
	m := &Matcher{class: tab.Class()}
	for _, lex := range tab.Lexemes() {
		e := entry{
			text:      lex,
			wordStart: isWordByte(lex[0]),
			wordEnd:   isWordByte(lex[len(lex)-1]),
		}
		first := lex[0]
		m.byFirst[first] = append(m.byFirst[first], e)
	}
	for b := range m.byFirst {
		bucket := m.byFirst[b]
		sort.Slice(bucket, func(i, j int) bool {
			if len(bucket[i].text) != len(bucket[j].text) {
				return len(bucket[i].text) > len(bucket[j].text)
			}
			return bucket[i].text < bucket[j].text
		})
	}
	return m
}

// Class returns the class assigned to every match.
func (m *Matcher) Class() token.Class {
	return m.class
}

// MatchAt returns the length of the longest lexeme matching at text[off],
// honoring the limit as an exclusive upper bound. ok is false when no
// lexeme matches there.
func (m *Matcher) MatchAt(text []byte, off, limit int) (length int, ok bool) {
	if off < 0 || off >= limit || limit > len(text) {
		return 0, false
	}
	for _, e := range m.byFirst[text[off]] {
		end := off + len(e.text)
		if end > limit {
			continue
		}
		if string(text[off:end]) != e.text {
			continue
		}
		// Boundary checks look at the buffer, not the range: a word lexeme
		// cut off by the range limit is still inside an identifier.
		if e.wordStart && off > 0 && isWordByte(text[off-1]) {
			continue
		}
		if e.wordEnd && end < len(text) && isWordByte(text[end]) {
			continue
		}
		return len(e.text), true
	}
	return 0, false
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z') ||
		(b >= '0' && b <= '9')
}
