// Package tokenize splits a query into word and separator tokens such that
// concatenating the tokens reproduces the input byte-for-byte. Only word
// tokens are eligible for spelling correction; separators (whitespace,
// punctuation, digit runs) are carried through untouched for reassembly.
package tokenize

import (
	"regexp"
	"strings"
)

// Token is one piece of the input. Word marks pieces made of letters only.
type Token struct {
	Text string
	Word bool
}

// Tokenizer turns a raw query into an ordered token sequence.
// Implementations must guarantee Join(Split(s)) == s.
type Tokenizer interface {
	Split(s string) []Token
}

// tokenRe matches letter runs, digit runs, whitespace runs, or a single
// other rune, so nothing in the input is ever dropped.
var tokenRe = regexp.MustCompile(`[\p{L}]+|[\p{N}]+|\s+|[^\s\p{L}\p{N}]`)

var wordRe = regexp.MustCompile(`^[\p{L}]+$`)

// Splitter is the default Tokenizer: word boundaries at whitespace,
// punctuation, and digit transitions.
type Splitter struct{}

// New returns the default Splitter.
func New() *Splitter { return &Splitter{} }

// Split implements Tokenizer.
func (*Splitter) Split(s string) []Token {
	pieces := tokenRe.FindAllString(s, -1)
	out := make([]Token, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, Token{Text: p, Word: wordRe.MatchString(p)})
	}
	return out
}

// Join reassembles tokens into the query string.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}
