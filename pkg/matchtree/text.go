package matchtree

import (
	"regexp"
	"strings"
)

var separatorRe = regexp.MustCompile(`[\s._\-,+()\[\]{}]+`)

// CleanString collapses separator runs into single spaces and trims, turning
// "dark.city.(1998)" into "dark city 1998".
func CleanString(s string) string {
	return strings.TrimSpace(separatorRe.ReplaceAllString(s, " "))
}

// Token is a separator-delimited word with its offsets into the scanned
// string.
type Token struct {
	Text  string
	Begin int
	End   int
}

func isSeparator(r rune) bool {
	return strings.ContainsRune(" \t.-_,+()[]{}", r)
}

// Tokens splits s into words at separator runs, reporting offsets relative
// to base so spans map back into the full name.
func Tokens(s string, base int) []Token {
	var out []Token
	start := -1
	for i, r := range s {
		if isSeparator(r) {
			if start >= 0 {
				out = append(out, Token{Text: s[start:i], Begin: base + start, End: base + i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, Token{Text: s[start:], Begin: base + start, End: base + len(s)})
	}
	return out
}
