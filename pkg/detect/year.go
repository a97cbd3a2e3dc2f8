package detect

import (
	"context"
	"strconv"

	"github.com/kasuboski/mediaguess/pkg/guess"
	"github.com/kasuboski/mediaguess/pkg/matchtree"
)

// years finds standalone 4-digit years. Under SkipFirstYear the leftmost
// match in the whole name is left unannotated so a later pass can read it as
// part of the title.
type years struct{}

func (years) Name() string { return "years" }

func (years) Annotate(_ context.Context, t *matchtree.Tree) {
	type candidate struct {
		leaf *matchtree.Node
		span [2]int
		year int
	}
	var cands []candidate

	for _, leaf := range unannotatedLeaves(t) {
		for _, tok := range matchtree.Tokens(leaf.Value, leaf.Begin) {
			if len(tok.Text) != 4 {
				continue
			}
			y, err := strconv.Atoi(tok.Text)
			if err != nil || y < 1900 || y > 2099 {
				continue
			}
			cands = append(cands, candidate{leaf: leaf, span: [2]int{tok.Begin, tok.End}, year: y})
		}
	}

	if t.Options.SkipFirstYear && len(cands) > 0 {
		cands = cands[1:]
	}

	perLeaf := make(map[matchtree.NodeID][]match)
	for _, c := range cands {
		perLeaf[c.leaf.ID] = append(perLeaf[c.leaf.ID], match{
			span: c.span,
			g:    guess.FromProps(map[string]any{guess.KeyYear: c.year}, 1.0),
		})
	}
	for id, ms := range perLeaf {
		applyMatches(t, id, ms)
	}
}
