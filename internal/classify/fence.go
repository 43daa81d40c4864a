package classify

import (
	"github.com/orsonlang/orson-mode/internal/diag"
	"github.com/orsonlang/orson-mode/internal/token"
)

// scanRegions is the secondary lexical pass. It finds the constructs a
// longest-match alternation cannot express (paired string delimiters and
// line comments) and authoritatively overrides the primary classes inside
// each region. Fence marks on the boundary bytes tell a downstream
// tokenizer to treat the enclosed text as a single opaque unit.
//
// One forward scan resolves both region kinds, which encodes their mutual
// precedence: a comment trigger inside a string is content, and a string
// opener inside a comment is comment text.
func scanRegions(r *Result, content []byte, rep diag.Reporter, trigger byte, delim string) {
	if len(delim) != 2 {
		return
	}
	d0, d1 := delim[0], delim[1]

	i := r.From
	for i < r.To {
		switch {
		case content[i] == trigger:
			i = r.markComment(content, i)

		case content[i] == d0 && i+1 < r.To && content[i+1] == d1:
			i = r.markString(content, rep, i, d0, d1)

		default:
			i++
		}
	}
}

// markComment classifies [at, end-of-line) as a comment. The line
// terminator ends the comment and is not part of it. Returns the offset to
// resume scanning at.
func (r *Result) markComment(content []byte, at uint32) uint32 {
	end := at
	for end < r.To && content[end] != '\n' {
		end++
	}
	r.setClass(at, end, token.ClassComment)
	return end
}

// markString resolves a string region opened at `at`. The delimiter search
// treats content conservatively as delimiter-free: an embedded lone quote
// aborts the candidate match (nothing is marked) and the scan resumes after
// the quote. A missing closing delimiter fails open: the remainder of the
// range becomes an open literal, never an error.
//
// TODO: lone quotes inside literals mis-tokenize; the language side has not
// decided whether they are legal, so the behavior is preserved as is.
func (r *Result) markString(content []byte, rep diag.Reporter, at uint32, d0, d1 byte) uint32 {
	j := at + 2
	for j < r.To && content[j] != d0 {
		j++
	}

	if j < r.To && j+1 < r.To && content[j+1] == d1 {
		// Closing delimiter: fence the first and last bytes, make the
		// region opaque.
		r.setClass(at, j+2, token.ClassString)
		r.setFence(at, token.FenceOpen)
		r.setFence(j+1, token.FenceClose)
		return j + 2
	}

	if j < r.To && j+1 < r.To {
		// Lone quote inside the literal: unsupported, abort this candidate.
		report(rep, diag.ClassifyLoneQuote, diag.SevInfo, r.File.ID, j, j+1,
			"lone quote inside string content; literal not recognized")
		return j + 1
	}

	// No closing delimiter before the end of the range: fail open.
	r.setClass(at, r.To, token.ClassString)
	r.setFence(at, token.FenceOpen)
	r.unterminated = true
	report(rep, diag.ClassifyUnterminatedString, diag.SevWarning, r.File.ID, at, r.To,
		"unterminated string literal")
	return r.To
}
