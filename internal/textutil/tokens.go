package textutil

import (
	"regexp"
	"strings"
)

var (
	wordPattern     = regexp.MustCompile(`[a-zA-Z]+`)
	wordPairPattern = regexp.MustCompile(`[a-zA-Z]+(?:\s+[a-zA-Z]+)?`)
)

// Words returns every run of ASCII letters in text, in order.
func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// WordPairs splits text into non-overlapping tokens of one or two consecutive
// words. "i like tom hanks movies" yields "i like", "tom hanks", "movies".
func WordPairs(text string) []string {
	matches := wordPairPattern.FindAllString(text, -1)
	for i, match := range matches {
		matches[i] = strings.TrimSpace(match)
	}
	return matches
}

// LastWord returns the final whitespace-separated word of token.
func LastWord(token string) string {
	fields := strings.Fields(token)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
