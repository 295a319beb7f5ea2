package intent

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	summaryLimit = 120
	ellipsis     = "..."
)

// Clean lowercases text and turns everything except ASCII letters,
// digits and whitespace into spaces. Whitespace runs are collapsed and
// the result is trimmed.
func Clean(text string) string {
	lower := cases.Lower(language.Und).String(text)

	mapped := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, lower)

	return strings.Join(strings.Fields(mapped), " ")
}

// Tokenize splits cleaned text into tokens. Empty input yields no tokens.
func Tokenize(text string) []string {
	cleaned := Clean(text)
	if cleaned == "" {
		return nil
	}
	return strings.Split(cleaned, " ")
}

// IsToken reports whether s is already a normalized token.
func IsToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// Summarize collapses whitespace and shortens text to at most 120
// characters, keeping casing and punctuation.
func Summarize(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if uniseg.GraphemeClusterCount(collapsed) <= summaryLimit {
		return collapsed
	}

	keep := summaryLimit - len(ellipsis)
	var b strings.Builder
	state := -1
	rest := collapsed
	for i := 0; i < keep && rest != ""; i++ {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		b.WriteString(cluster)
	}
	b.WriteString(ellipsis)

	return b.String()
}
