package detect

import (
	"context"
	"strings"
	"unicode"

	"github.com/kasuboski/mediaguess/pkg/matchtree"
)

// pathComponents splits the root into directory components plus the final
// file name, with any extension split off as its own component.
type pathComponents struct{}

func (pathComponents) Name() string { return "pathComponents" }

func (pathComponents) Annotate(_ context.Context, t *matchtree.Tree) {
	root := t.Root()
	if !root.IsLeaf() {
		return
	}
	name := t.Filename

	var spans [][2]int
	start := 0
	for i := 0; i < len(name); i++ {
		if name[i] == '/' || name[i] == '\\' {
			if i > start {
				spans = append(spans, [2]int{start, i})
			}
			start = i + 1
		}
	}
	if len(name) > start {
		spans = append(spans, [2]int{start, len(name)})
	}
	if len(spans) == 0 {
		return
	}

	// split a trailing extension off the final component
	last := spans[len(spans)-1]
	if dot := strings.LastIndexByte(name[last[0]:last[1]], '.'); dot > 0 {
		extBegin := last[0] + dot + 1
		if extBegin < last[1] && isExtensionValue(name[extBegin:last[1]]) {
			spans[len(spans)-1] = [2]int{last[0], last[0] + dot}
			spans = append(spans, [2]int{extBegin, last[1]})
		}
	}

	for _, sp := range spans {
		t.AddChild(0, sp[0], sp[1])
	}
}

func isExtensionValue(s string) bool {
	if len(s) == 0 || len(s) > 4 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// explicitGroups splits components around bracket-delimited groups. The
// group node keeps its delimiters and is marked explicit; its content
// becomes a child node so later detectors only see the inside.
type explicitGroups struct{}

func (explicitGroups) Name() string { return "explicitGroups" }

func (explicitGroups) Annotate(_ context.Context, t *matchtree.Tree) {
	for _, leaf := range unannotatedLeaves(t) {
		spans := groupSpans(leaf.Value)
		for i := range spans {
			spans[i][0] += leaf.Begin
			spans[i][1] += leaf.Begin
		}
		for _, n := range t.Partition(leaf.ID, spans...) {
			n.Explicit = true
			if n.End-n.Begin > 2 {
				t.AddChild(n.ID, n.Begin+1, n.End-1)
			}
		}
	}
}

var groupClosers = map[byte]byte{'(': ')', '[': ']', '{': '}'}

// groupSpans finds top-level balanced bracket groups, delimiters included.
func groupSpans(s string) [][2]int {
	var spans [][2]int
	depth := 0
	var opener, closer byte
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if depth == 0 {
			if cl, ok := groupClosers[c]; ok {
				opener, closer = c, cl
				start = i
				depth = 1
			}
			continue
		}
		switch c {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				spans = append(spans, [2]int{start, i + 1})
			}
		}
	}
	return spans
}
