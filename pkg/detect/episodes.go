package detect

import (
	"context"
	"regexp"
	"strconv"

	"github.com/kasuboski/mediaguess/pkg/guess"
	"github.com/kasuboski/mediaguess/pkg/matchtree"
)

var (
	seasonEpisodeRe = regexp.MustCompile(`(?i)\b(?:s(\d{1,2})[\s._-]*e(\d{1,3})|(\d{1,2})x(\d{2,3}))\b`)
	wordyEpisodeRe  = regexp.MustCompile(`(?i)\bseason[\s._-]+(\d{1,2})[\s._-]+(?:episode|ep)[\s._-]+(\d{1,3})\b`)
	seasonOnlyRe    = regexp.MustCompile(`(?i)\bs(?:eason)?[\s._-]*(\d{1,2})\b`)
	episodeOnlyRe   = regexp.MustCompile(`(?i)\be(?:p(?:isode)?)?[\s._-]*(\d{1,3})\b`)
	weakEpisodeRe   = regexp.MustCompile(`\b(\d{1,2})\.(\d{2})\b`)
)

// episodes finds season and episode markers. Strong forms like S01E05 and
// 1x05 are certain; bare season or episode markers are likely; dotted pairs
// like 1.05 are weak hints only.
type episodes struct{}

func (episodes) Name() string { return "episodes" }

func (episodes) Annotate(_ context.Context, t *matchtree.Tree) {
	for _, leaf := range unannotatedLeaves(t) {
		var ms []match
		var taken [][2]int

		add := func(span [2]int, g *guess.Guess) {
			if overlapsAny(span, taken) {
				return
			}
			taken = append(taken, span)
			ms = append(ms, match{span: span, g: g})
		}

		for _, idx := range seasonEpisodeRe.FindAllStringSubmatchIndex(leaf.Value, -1) {
			season, episode := pickGroup(leaf.Value, idx, 1, 3), pickGroup(leaf.Value, idx, 2, 4)
			if season == "" || episode == "" {
				continue
			}
			add(reSpan(leaf, idx), episodeGuess(season, episode, 1.0))
		}
		for _, idx := range wordyEpisodeRe.FindAllStringSubmatchIndex(leaf.Value, -1) {
			add(reSpan(leaf, idx), episodeGuess(leaf.Value[idx[2]:idx[3]], leaf.Value[idx[4]:idx[5]], 1.0))
		}
		for _, idx := range seasonOnlyRe.FindAllStringSubmatchIndex(leaf.Value, -1) {
			add(reSpan(leaf, idx), numberGuess(guess.KeySeason, leaf.Value[idx[2]:idx[3]], 0.8))
		}
		for _, idx := range episodeOnlyRe.FindAllStringSubmatchIndex(leaf.Value, -1) {
			add(reSpan(leaf, idx), numberGuess(guess.KeyEpisodeNumber, leaf.Value[idx[2]:idx[3]], 0.8))
		}
		for _, idx := range weakEpisodeRe.FindAllStringSubmatchIndex(leaf.Value, -1) {
			add(reSpan(leaf, idx), episodeGuess(leaf.Value[idx[2]:idx[3]], leaf.Value[idx[4]:idx[5]], 0.6))
		}

		applyMatches(t, leaf.ID, ms)
	}
}

func reSpan(leaf *matchtree.Node, idx []int) [2]int {
	return [2]int{leaf.Begin + idx[0], leaf.Begin + idx[1]}
}

// pickGroup returns the first non-empty submatch among the given groups.
func pickGroup(s string, idx []int, groups ...int) string {
	for _, g := range groups {
		if idx[2*g] >= 0 {
			return s[idx[2*g]:idx[2*g+1]]
		}
	}
	return ""
}

func episodeGuess(season, episode string, confidence float64) *guess.Guess {
	s, _ := strconv.Atoi(season)
	e, _ := strconv.Atoi(episode)
	return guess.FromProps(map[string]any{
		guess.KeySeason:        s,
		guess.KeyEpisodeNumber: e,
	}, confidence)
}

func numberGuess(key, value string, confidence float64) *guess.Guess {
	n, _ := strconv.Atoi(value)
	return guess.FromProps(map[string]any{key: n}, confidence)
}
