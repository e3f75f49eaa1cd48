package retrieval

import (
	"strings"
	"unicode"
)

// Tokenizer converts free text into the terms used for indexing and querying.
// Index building and query embedding must share one Tokenizer so both sides
// of the cosine comparison live in the same space.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer builds a tokenizer, optionally dropping the fixed English
// stop-word set.
func NewTokenizer(removeStopwords bool) *Tokenizer {
	t := &Tokenizer{}
	if removeStopwords {
		t.stopwords = defaultStopwords()
	}
	return t
}

// Tokenize lowercases the text, splits on non-alphanumeric boundaries and
// filters stop-words. Text made of punctuation only yields no tokens.
func (t *Tokenizer) Tokenize(text string) []string {
	fields := strings.Fields(Normalize(text))
	if len(fields) == 0 {
		return nil
	}
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		if _, skip := t.stopwords[field]; skip {
			continue
		}
		out = append(out, field)
	}
	return out
}

// Normalize lowercases text and collapses every non-alphanumeric run into a
// single space.
func Normalize(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	var builder strings.Builder
	builder.Grow(len(lowered))
	lastSpace := true
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			builder.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(builder.String())
}
