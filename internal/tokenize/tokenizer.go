package tokenize

import (
	"regexp"
	"strings"
)

// WordTokenizer lowercases text and splits it into word tokens, treating any
// punctuation run as a token boundary. Builder and encoder must share one
// tokenizer so the same text always yields the same token stream.
type WordTokenizer struct {
	tokenPattern *regexp.Regexp
}

// NewWordTokenizer creates the default word tokenizer.
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{
		tokenPattern: regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}\p{N}]+)*`),
	}
}

// Tokenize returns the normalized tokens of text, in order. Empty or
// punctuation-only input yields nil.
func (t *WordTokenizer) Tokenize(text string) []string {
	lower := strings.ToLower(text)
	return t.tokenPattern.FindAllString(lower, -1)
}
