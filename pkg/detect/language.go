package detect

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/kasuboski/mediaguess/pkg/guess"
	"github.com/kasuboski/mediaguess/pkg/language"
	"github.com/kasuboski/mediaguess/pkg/matchtree"
)

// languages finds audio language tokens, and subtitle language tokens on
// subtitle files when the token sits in the trailing position next to the
// extension. Full names are certain; bare ISO codes are weaker. Tokens on
// the common-word exception list are never read as languages.
type languages struct{}

func (languages) Name() string { return "languages" }

func (languages) Annotate(_ context.Context, t *matchtree.Tree) {
	if t.Options.NoLanguage {
		return
	}

	base := baseSpan(t)
	boundary := subtitleTokenBoundary(t, base)

	for _, leaf := range unannotatedLeaves(t) {
		var ms []match
		for _, tok := range matchtree.Tokens(leaf.Value, leaf.Begin) {
			span := [2]int{tok.Begin, tok.End}
			lower := strings.ToLower(tok.Text)

			// french scene tags
			switch lower {
			case "vost", "vostfr":
				if l, ok := language.Find("fr"); ok {
					ms = append(ms, match{span: span, g: guess.FromProps(map[string]any{guess.KeySubtitleLanguage: l}, 1.0)})
				}
				continue
			case "vf", "vff", "vfq":
				if l, ok := language.Find("fr"); ok {
					ms = append(ms, match{span: span, g: guess.FromProps(map[string]any{guess.KeyLanguage: l}, 0.9)})
				}
				continue
			}

			if language.IsCommonWord(lower) {
				continue
			}
			l, ok := language.Find(lower)
			if !ok {
				continue
			}

			confidence := 1.0
			switch utf8.RuneCountInString(tok.Text) {
			case 2:
				confidence = 0.7
			case 3:
				confidence = 0.8
			}

			key := guess.KeyLanguage
			if t.FileType.IsSubtitle() && boundary >= 0 && tok.Begin >= boundary {
				key = guess.KeySubtitleLanguage
			}
			ms = append(ms, match{span: span, g: guess.FromProps(map[string]any{key: l}, confidence)})
		}
		applyMatches(t, leaf.ID, ms)
	}
}

// subtitleTokenBoundary returns the offset of the second-to-last token of
// the base name; a language token at or past it is in subtitle position.
func subtitleTokenBoundary(t *matchtree.Tree, base [2]int) int {
	if base[0] >= base[1] {
		return -1
	}
	toks := matchtree.Tokens(t.Filename[base[0]:base[1]], base[0])
	switch len(toks) {
	case 0:
		return -1
	case 1:
		return toks[0].Begin
	default:
		return toks[len(toks)-2].Begin
	}
}
