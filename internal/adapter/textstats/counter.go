// Package textstats provides the word-frequency primitive used by the result
// analyzer. Tokenization follows Unicode UAX #29 word boundaries; tokens are
// lowercased and punctuation-only segments are dropped, so "Go, go GO!"
// counts as {"go": 3}.
package textstats

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

// Counter computes per-word occurrence counts over a corpus string.
type Counter struct{}

// NewCounter creates a Counter.
func NewCounter() *Counter {
	return &Counter{}
}

// WordCounts returns the number of occurrences of each word in text.
// Words are UAX #29 segments containing at least one letter or digit,
// lowercased. An empty corpus yields an empty map.
func (c *Counter) WordCounts(text string) map[string]int {
	counts := make(map[string]int)

	tokens := words.FromString(text)
	for tokens.Next() {
		tok := tokens.Value()
		if !hasAlphaNum(tok) {
			continue
		}
		counts[strings.ToLower(tok)]++
	}

	return counts
}

func hasAlphaNum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
