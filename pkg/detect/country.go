package detect

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kasuboski/mediaguess/pkg/guess"
	"github.com/kasuboski/mediaguess/pkg/language"
	"github.com/kasuboski/mediaguess/pkg/matchtree"
)

// countries finds production countries, only inside bracket groups like
// "(US)" where a bare code is unambiguous. Uppercase two-letter codes are
// certain; longer names and aliases slightly less so.
type countries struct{}

func (countries) Name() string { return "countries" }

func (countries) Annotate(_ context.Context, t *matchtree.Tree) {
	if t.Options.NoCountry {
		return
	}

	for _, leaf := range unannotatedLeaves(t) {
		parent := t.Parent(leaf)
		if parent == nil || !parent.Explicit {
			continue
		}
		var ms []match
		for _, tok := range matchtree.Tokens(leaf.Value, leaf.Begin) {
			c, confidence, ok := countryToken(tok.Text)
			if !ok {
				continue
			}
			ms = append(ms, match{
				span: [2]int{tok.Begin, tok.End},
				g:    guess.FromProps(map[string]any{guess.KeyCountry: c}, confidence),
			})
		}
		applyMatches(t, leaf.ID, ms)
	}
}

func countryToken(s string) (language.Country, float64, bool) {
	if len(s) == 2 && isUpperAlpha(s) {
		if c, ok := language.FindCountry(s); ok {
			return c, 1.0, true
		}
		return language.Country{}, 0, false
	}
	if utf8.RuneCountInString(s) >= 3 {
		if c, ok := language.FindCountry(strings.ToLower(s)); ok {
			return c, 0.9, true
		}
	}
	return language.Country{}, 0, false
}

func isUpperAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return len(s) > 0
}
