package detect

import (
	"context"

	"github.com/kasuboski/mediaguess/pkg/guess"
	"github.com/kasuboski/mediaguess/pkg/matchtree"
)

// Detector annotates the spans of a match tree it recognizes. Annotation is
// heuristic and total: a detector never fails, it only adds guesses and
// reports anomalies through the context logger.
type Detector interface {
	Name() string
	Annotate(ctx context.Context, t *matchtree.Tree)
}

// Pipeline returns the standard detector chain. Order is load-bearing:
// structural splitters run first, dates before bare years so a date's year is
// not read twice, release properties before languages so codec tokens never
// read as words, and title promotion runs last over whatever is left.
func Pipeline() []Detector {
	return []Detector{
		pathComponents{},
		explicitGroups{},
		filetype{},
		dates{},
		years{},
		episodes{},
		properties{},
		languages{},
		countries{},
		releaseGroups{},
		titles{},
	}
}

// match is a span of a leaf plus the guess to attach to it.
type match struct {
	span [2]int
	g    *guess.Guess
}

func overlaps(a, b [2]int) bool {
	return a[0] < b[1] && b[0] < a[1]
}

func overlapsAny(s [2]int, taken [][2]int) bool {
	for _, t := range taken {
		if overlaps(s, t) {
			return true
		}
	}
	return false
}

// applyMatches partitions the leaf and attaches each match's guess to the
// node created for its span.
func applyMatches(t *matchtree.Tree, id matchtree.NodeID, ms []match) {
	if len(ms) == 0 {
		return
	}
	spans := make([][2]int, 0, len(ms))
	byBegin := make(map[int]*guess.Guess, len(ms))
	for _, m := range ms {
		spans = append(spans, m.span)
		byBegin[m.span[0]] = m.g
	}
	for _, n := range t.Partition(id, spans...) {
		if g, ok := byBegin[n.Begin]; ok {
			n.Guess = g
		}
	}
}

// unannotatedLeaves snapshots the leaves that still carry no guess.
func unannotatedLeaves(t *matchtree.Tree) []*matchtree.Node {
	var out []*matchtree.Node
	for _, l := range t.Leaves() {
		if l.Guess == nil {
			out = append(out, l)
		}
	}
	return out
}

// extensionNode returns the file extension component split off by
// pathComponents, nil when the name has none.
func extensionNode(t *matchtree.Tree) *matchtree.Node {
	comps := t.Children(0)
	n := len(comps)
	if n < 2 {
		return nil
	}
	ext := comps[n-1]
	if ext.Begin > 0 && t.Filename[ext.Begin-1] == '.' &&
		comps[n-2].End == ext.Begin-1 && isExtensionValue(ext.Value) {
		return ext
	}
	return nil
}

// baseSpan returns the span of the file name with directories and extension
// stripped, which is where release metadata lives.
func baseSpan(t *matchtree.Tree) [2]int {
	comps := t.Children(0)
	n := len(comps)
	if n == 0 {
		r := t.Root()
		return [2]int{r.Begin, r.End}
	}
	if ext := extensionNode(t); ext != nil && n >= 2 {
		b := comps[n-2]
		return [2]int{b.Begin, b.End}
	}
	last := comps[n-1]
	return [2]int{last.Begin, last.End}
}

func inSpan(n *matchtree.Node, span [2]int) bool {
	return n.Begin >= span[0] && n.End <= span[1]
}
