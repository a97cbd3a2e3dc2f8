package matcher

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/kasuboski/mediaguess/pkg/guess"
	"github.com/kasuboski/mediaguess/pkg/logger"
	"github.com/kasuboski/mediaguess/pkg/matchtree"
)

// Choice says which of the two parses the resolver picked.
type Choice int

const (
	ChoosePrimary Choice = iota
	ChooseBaseline
)

type decision struct {
	choice Choice
	rule   string
	warn   bool
}

// Resolve arbitrates between the primary parse and the language-blind
// baseline. A token like "french" can be either a language or part of a
// title ("The French Connection"); the baseline shows what the title looks
// like when language detection is off, and a fixed sequence of rules
// decides which reading wins.
func Resolve(ctx context.Context, primary, baseline *IterativeMatcher) *guess.Guess {
	m := primary.Matched()
	m2 := baseline.Matched()

	d := decide(m, m2, primary.Tree(), baseline.Tree())

	log := logger.FromCtx(ctx)
	if d.warn {
		log.Warnw("ambiguous language in title", "filename", primary.Tree().Filename, "rule", d.rule)
	} else {
		log.Debugw("resolved title", "filename", primary.Tree().Filename, "rule", d.rule)
	}

	if d.choice == ChooseBaseline {
		return m2
	}
	return m
}

// decide is a fixed-priority procedure. Rules are tried in order and the
// first applicable one wins; the order is load-bearing and must not change.
func decide(m, m2 *guess.Guess, primary, baseline *matchtree.Tree) decision {
	// 1. no language was read, so there is nothing to arbitrate
	if !m.Has(guess.KeyLanguage) && !m.Has(guess.KeySubtitleLanguage) {
		return decision{ChoosePrimary, "no language", false}
	}

	// 2. the blind parse found no title either
	title2, ok := m2.Str(guess.KeyTitle)
	if !ok {
		return decision{ChoosePrimary, "baseline has no title", false}
	}

	// 3. both parses agree on the title
	title, _ := m.Str(guess.KeyTitle)
	if title == title2 {
		return decision{ChoosePrimary, "titles agree", false}
	}

	// 4. locate the nodes behind the disputed properties
	titleNode := firstNode(primary, guess.KeyTitle)
	title2Node := firstNode(baseline, guess.KeyTitle)
	langNodes := primary.FindNodes(guess.KeyLanguage)
	langNodes = append(langNodes, primary.FindNodes(guess.KeySubtitleLanguage)...)
	if titleNode == nil || title2Node == nil || len(langNodes) == 0 {
		return decision{ChoosePrimary, "nodes missing", true}
	}

	// 5. of several language nodes, arbitrate the one sitting inside the
	// baseline title text
	lang := langNodes[0]
	for _, ln := range langNodes {
		if containsFold(title2Node.Value, ln.Value) {
			lang = ln
			break
		}
	}

	// 6. a short token is a code like "fr" or "eng", not a word the
	// title lost
	if utf8.RuneCountInString(matchtree.CleanString(lang.Value)) <= 3 {
		return decision{ChoosePrimary, "short language code", false}
	}

	// 7. the second-to-last token of a name is the conventional spot for
	// a subtitle language, as in "movie.fr.srt"
	if lang.Guess.Has(guess.KeySubtitleLanguage) && secondToLastToken(primary, lang) {
		return decision{ChoosePrimary, "subtitle language position", false}
	}

	// 8. the baseline title keeps the language word as its prefix, so the
	// primary title is a truncation of it
	if strings.HasPrefix(strings.ToLower(title2), strings.ToLower(matchtree.CleanString(lang.Value))) {
		return decision{ChoosePrimary, "title starts with language", false}
	}

	// 9. the language word sits in the middle of the baseline title, so
	// it really is part of the title
	if containsFold(title2Node.Value, lang.Value) {
		return decision{ChooseBaseline, "language inside title", false}
	}

	// 10. explicit-group placement: a title read out of a bracket group
	// is the weaker reading
	if anc := componentAncestor(primary, titleNode); anc != nil && anc.Explicit {
		return decision{ChooseBaseline, "primary title in group", false}
	}
	if anc := componentAncestor(baseline, title2Node); anc != nil && anc.Explicit {
		return decision{ChoosePrimary, "baseline title in group", false}
	}

	// 11. nothing applied
	return decision{ChoosePrimary, "unresolved", true}
}

func firstNode(t *matchtree.Tree, key string) *matchtree.Node {
	nodes := t.FindNodes(key)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// componentAncestor returns the node two levels below the root on the path
// to n, or n itself when it sits that shallow.
func componentAncestor(t *matchtree.Tree, n *matchtree.Node) *matchtree.Node {
	path := n.Path
	if len(path) > 2 {
		path = path[:2]
	}
	return t.NodeAtPath(path)
}

// secondToLastToken reports whether the language node is the second-to-last
// token of the whole name, the spot right before the extension.
func secondToLastToken(t *matchtree.Tree, lang *matchtree.Node) bool {
	parts := strings.Fields(matchtree.CleanString(t.Root().Value))
	if len(parts) < 2 {
		return false
	}
	needle := matchtree.CleanString(lang.Value)
	for i, p := range parts {
		if strings.EqualFold(p, needle) {
			return i == len(parts)-2
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
