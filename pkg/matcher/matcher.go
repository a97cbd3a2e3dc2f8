package matcher

import (
	"context"

	"github.com/kasuboski/mediaguess/pkg/detect"
	"github.com/kasuboski/mediaguess/pkg/guess"
	"github.com/kasuboski/mediaguess/pkg/logger"
	"github.com/kasuboski/mediaguess/pkg/machine"
	"github.com/kasuboski/mediaguess/pkg/matchtree"
)

// Pass names the parsing passes of a matcher.
type Pass string

const (
	PassSingle   Pass = "single-pass"
	PassReparsed Pass = "reparsed"
)

// IterativeMatcher parses one name into an annotated tree. When the first
// pass finds two or more distinct years the parse restarts once with the
// first year skipped, since the extra year is almost always part of the
// title, as in "1984.2012.720p.mkv".
type IterativeMatcher struct {
	tree  *matchtree.Tree
	state *machine.StateMachine[Pass]
}

// New parses filename under the given options.
func New(ctx context.Context, filename string, filetype guess.FileType, opts matchtree.Options) *IterativeMatcher {
	m := &IterativeMatcher{
		state: machine.New(PassSingle,
			machine.From(PassSingle).To(PassReparsed),
		),
	}
	m.tree = parse(ctx, filename, filetype, opts)

	if !opts.SkipFirstYear && len(distinctYears(m.tree)) >= 2 {
		log := logger.FromCtx(ctx)
		if err := m.state.Transition(PassReparsed); err != nil {
			log.Warnw("year reparse rejected", "filename", filename, "error", err)
			return m
		}
		log.Debugw("multiple years found, reparsing", "filename", filename)
		opts.SkipFirstYear = true
		m.tree = parse(ctx, filename, filetype, opts)
	}
	return m
}

// Pass reports which parsing pass produced the tree.
func (m *IterativeMatcher) Pass() Pass {
	return m.state.Current()
}

// Tree returns the annotated tree.
func (m *IterativeMatcher) Tree() *matchtree.Tree {
	return m.tree
}

// Matched merges the tree into a single guess.
func (m *IterativeMatcher) Matched() *guess.Guess {
	return m.tree.Matched()
}

func parse(ctx context.Context, filename string, filetype guess.FileType, opts matchtree.Options) *matchtree.Tree {
	t := matchtree.New(filename, filetype, opts)
	for _, d := range detect.Pipeline() {
		d.Annotate(ctx, t)
	}
	return t
}

func distinctYears(t *matchtree.Tree) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, n := range t.FindNodes(guess.KeyYear) {
		y, ok := n.Guess.Int(guess.KeyYear)
		if !ok {
			continue
		}
		if _, dup := seen[y]; dup {
			continue
		}
		seen[y] = struct{}{}
		out = append(out, y)
	}
	return out
}

// GuessFilename parses a name twice, once with the caller's options and once
// language- and country-blind, and resolves which parse to trust.
func GuessFilename(ctx context.Context, filename string, filetype guess.FileType) *guess.Guess {
	primary := New(ctx, filename, filetype, matchtree.Options{})
	baseline := New(ctx, filename, filetype, matchtree.Options{NoLanguage: true, NoCountry: true})
	return Resolve(ctx, primary, baseline)
}
