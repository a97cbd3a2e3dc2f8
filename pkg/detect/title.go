package detect

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kasuboski/mediaguess/pkg/guess"
	"github.com/kasuboski/mediaguess/pkg/matchtree"
)

// titles promotes whatever meaningful text is left after every other
// detector has taken its share. For movies the first leftover of the base
// name becomes the title; for episodes the leftover before the episode
// marker becomes the series and the one after it the episode title. When the
// base name holds nothing, directory names stand in.
type titles struct{}

func (titles) Name() string { return "titles" }

func (titles) Annotate(_ context.Context, t *matchtree.Tree) {
	base := baseSpan(t)
	leftovers := leftoverLeaves(t)
	if len(leftovers) == 0 {
		return
	}

	if t.FileType.IsEpisode() {
		annotateEpisode(t, base, leftovers)
		return
	}
	annotateMovie(base, leftovers)
}

func annotateMovie(base [2]int, leftovers []*matchtree.Node) {
	pick := leftovers[0]
	for _, l := range leftovers {
		if inSpan(l, base) {
			pick = l
			break
		}
	}
	pick.Guess = guess.FromProps(map[string]any{
		guess.KeyTitle: titleCase(matchtree.CleanString(pick.Value)),
	}, 0.6)
}

func annotateEpisode(t *matchtree.Tree, base [2]int, leftovers []*matchtree.Node) {
	markBegin, markEnd := episodeMarkerSpan(t, base)

	var series, episodeTitle *matchtree.Node
	for _, l := range leftovers {
		if !inSpan(l, base) {
			continue
		}
		if l.End <= markBegin && series == nil {
			series = l
			continue
		}
		if l.Begin >= markEnd && episodeTitle == nil {
			episodeTitle = l
		}
	}
	if series == nil {
		// fall back to the innermost directory name
		for _, l := range leftovers {
			if l.End <= base[0] {
				series = l
			}
		}
	}

	if series != nil {
		series.Guess = guess.FromProps(map[string]any{
			guess.KeySeries: titleCase(matchtree.CleanString(series.Value)),
		}, 0.7)
	}
	if episodeTitle != nil {
		episodeTitle.Guess = guess.FromProps(map[string]any{
			guess.KeyTitle: titleCase(matchtree.CleanString(episodeTitle.Value)),
		}, 0.5)
	}
}

// episodeMarkerSpan bounds the season/episode markers inside the base name.
// Without a marker both bounds sit at the end, so everything reads as being
// before it.
func episodeMarkerSpan(t *matchtree.Tree, base [2]int) (int, int) {
	begin, end := base[1], base[1]
	seen := false
	for _, key := range []string{guess.KeyEpisodeNumber, guess.KeySeason, guess.KeyDate} {
		for _, n := range t.FindNodes(key) {
			if !inSpan(n, base) {
				continue
			}
			if !seen || n.Begin < begin {
				begin = n.Begin
			}
			if !seen || n.End > end {
				end = n.End
			}
			seen = true
		}
	}
	return begin, end
}

// leftoverLeaves returns the unannotated leaves that still carry words,
// in name order.
func leftoverLeaves(t *matchtree.Tree) []*matchtree.Node {
	var out []*matchtree.Node
	for _, l := range t.Leaves() {
		if l.Guess != nil {
			continue
		}
		if matchtree.CleanString(l.Value) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

func titleCase(title string) string {
	caser := cases.Title(language.English)
	return strings.TrimSpace(caser.String(title))
}
