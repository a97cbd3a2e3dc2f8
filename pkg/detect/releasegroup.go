package detect

import (
	"context"
	"regexp"
	"unicode"

	"github.com/kasuboski/mediaguess/pkg/guess"
	"github.com/kasuboski/mediaguess/pkg/matchtree"
)

var trailingGroupRe = regexp.MustCompile(`-([A-Za-z0-9][\w]*)\s*$`)

// releaseGroups finds the release group, either as the scene-style trailing
// "-GROUP" of the base name or as an otherwise unexplained bracket group at
// an edge of the base name.
type releaseGroups struct{}

func (releaseGroups) Name() string { return "releaseGroups" }

func (releaseGroups) Annotate(_ context.Context, t *matchtree.Tree) {
	base := baseSpan(t)

	for _, leaf := range unannotatedLeaves(t) {
		if !inSpan(leaf, base) || leaf.End != base[1] {
			continue
		}
		idx := trailingGroupRe.FindStringSubmatchIndex(leaf.Value)
		if idx == nil {
			continue
		}
		name := leaf.Value[idx[2]:idx[3]]
		applyMatches(t, leaf.ID, []match{{
			span: [2]int{leaf.Begin + idx[2], leaf.Begin + idx[3]},
			g:    guess.FromProps(map[string]any{guess.KeyReleaseGroup: name}, 0.8),
		}})
	}

	// a leftover bracket group at the very start or end of the base name
	for _, leaf := range unannotatedLeaves(t) {
		parent := t.Parent(leaf)
		if parent == nil || !parent.Explicit || !inSpan(parent, base) {
			continue
		}
		if parent.Begin != base[0] && parent.End != base[1] {
			continue
		}
		toks := matchtree.Tokens(leaf.Value, leaf.Begin)
		if len(toks) != 1 {
			continue
		}
		name := toks[0].Text
		if len(name) < 2 || !containsLetter(name) {
			continue
		}
		leaf.Guess = guess.FromProps(map[string]any{guess.KeyReleaseGroup: name}, 0.7)
	}
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
