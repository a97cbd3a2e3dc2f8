package detect

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/kasuboski/mediaguess/pkg/guess"
	"github.com/kasuboski/mediaguess/pkg/matchtree"
)

var (
	ymdRe = regexp.MustCompile(`\b(\d{4})[-./](\d{1,2})[-./](\d{1,2})\b`)
	dmyRe = regexp.MustCompile(`\b(\d{1,2})[-./](\d{1,2})[-./](\d{4})\b`)
)

// dates finds full dates, common in daily shows. It runs before the year
// detector so a date's year is not read twice.
type dates struct{}

func (dates) Name() string { return "dates" }

func (dates) Annotate(_ context.Context, t *matchtree.Tree) {
	for _, leaf := range unannotatedLeaves(t) {
		var ms []match
		var taken [][2]int

		for _, idx := range ymdRe.FindAllStringSubmatchIndex(leaf.Value, -1) {
			if d, ok := civilDate(leaf.Value[idx[2]:idx[3]], leaf.Value[idx[4]:idx[5]], leaf.Value[idx[6]:idx[7]]); ok {
				span := [2]int{leaf.Begin + idx[0], leaf.Begin + idx[1]}
				taken = append(taken, span)
				ms = append(ms, match{span: span, g: guess.FromProps(map[string]any{guess.KeyDate: d}, 1.0)})
			}
		}
		for _, idx := range dmyRe.FindAllStringSubmatchIndex(leaf.Value, -1) {
			span := [2]int{leaf.Begin + idx[0], leaf.Begin + idx[1]}
			if overlapsAny(span, taken) {
				continue
			}
			day, month := leaf.Value[idx[2]:idx[3]], leaf.Value[idx[4]:idx[5]]
			d, ok := civilDate(leaf.Value[idx[6]:idx[7]], month, day)
			if !ok {
				// day-first did not parse, try month-first
				d, ok = civilDate(leaf.Value[idx[6]:idx[7]], day, month)
			}
			if !ok {
				continue
			}
			taken = append(taken, span)
			ms = append(ms, match{span: span, g: guess.FromProps(map[string]any{guess.KeyDate: d}, 1.0)})
		}

		applyMatches(t, leaf.ID, ms)
	}
}

// civilDate validates the parts and renders an ISO date string.
func civilDate(year, month, day string) (string, bool) {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if y < 1900 || y > 2099 || m < 1 || m > 12 || d < 1 || d > 31 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d), true
}
