// Package tokens splits free text into lower-cased word tokens for keyword
// rules.
package tokens

import (
	"strings"
	"unicode"
)

// List is a tokenized message.
type List struct {
	words  []string
	joined string
}

// Split lower-cases text and splits it into runs of letters and combining
// marks; apostrophes inside a word are kept so "s'il" stays one token.
func Split(text string) List {
	lower := strings.ToLower(text)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		if unicode.IsLetter(r) || unicode.IsMark(r) {
			return false
		}
		return r != '\'' && r != '’'
	})
	words := make([]string, 0, len(fields))
	for _, w := range fields {
		w = strings.Trim(strings.ReplaceAll(w, "’", "'"), "'")
		if w != "" {
			words = append(words, w)
		}
	}
	return List{words: words, joined: " " + strings.Join(words, " ") + " "}
}

// Words returns the tokens in order.
func (l List) Words() []string {
	return l.words
}

// Len returns the number of tokens.
func (l List) Len() int {
	return len(l.words)
}

// HasPhrase reports whether the token sequence of phrase occurs in l.
func (l List) HasPhrase(phrase List) bool {
	if phrase.Len() == 0 {
		return false
	}
	return strings.Contains(l.joined, phrase.joined)
}

// HasPhrasePrefix is HasPhrase, except the last token of phrase only has to
// start a token in l.
func (l List) HasPhrasePrefix(phrase List) bool {
	if phrase.Len() == 0 {
		return false
	}
	return strings.Contains(l.joined, strings.TrimSuffix(phrase.joined, " "))
}
