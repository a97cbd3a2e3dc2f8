package matchtree

import (
	"sort"

	"github.com/kasuboski/mediaguess/pkg/guess"
)

// NodeID addresses a node inside its tree's arena. The root is always 0.
type NodeID int

// Node is one span of the name under analysis. Nodes live in their tree's
// arena and refer to each other by index, never by pointer, so a tree has no
// reference cycles and nodes can be located by path across trees.
type Node struct {
	ID       NodeID
	Value    string
	Begin    int
	End      int
	Path     []int
	Explicit bool
	Guess    *guess.Guess

	parent   NodeID
	children []NodeID
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// Options toggle detector behavior for one tree build. They are fixed at
// construction and never change afterwards.
type Options struct {
	SkipFirstYear bool
	NoLanguage    bool
	NoCountry     bool
}

// Tree decomposes a file name into nested spans. Detectors partition leaves
// into finer spans and attach guesses to the spans they recognize.
type Tree struct {
	Filename string
	FileType guess.FileType
	Options  Options

	nodes []*Node
}

// New returns a tree holding only the root node covering the whole name.
func New(filename string, filetype guess.FileType, opts Options) *Tree {
	t := &Tree{
		Filename: filename,
		FileType: filetype,
		Options:  opts,
	}
	t.nodes = append(t.nodes, &Node{
		ID:     0,
		Value:  filename,
		Begin:  0,
		End:    len(filename),
		Path:   []int{},
		parent: -1,
	})
	return t
}

// Root returns the node covering the whole name.
func (t *Tree) Root() *Node {
	return t.nodes[0]
}

// NodeByID returns the node with the given id, nil when out of range.
func (t *Tree) NodeByID(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Parent returns the parent node, nil for the root.
func (t *Tree) Parent(n *Node) *Node {
	if n == nil || n.parent < 0 {
		return nil
	}
	return t.NodeByID(n.parent)
}

// Children returns the direct children in span order.
func (t *Tree) Children(id NodeID) []*Node {
	n := t.NodeByID(id)
	if n == nil {
		return nil
	}
	out := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, t.NodeByID(c))
	}
	return out
}

// AddChild appends a child of parent covering [begin, end) of the name.
// It returns nil when the span does not nest inside the parent's span.
func (t *Tree) AddChild(parent NodeID, begin, end int) *Node {
	p := t.NodeByID(parent)
	if p == nil || begin < p.Begin || end > p.End || begin > end {
		return nil
	}
	path := make([]int, len(p.Path)+1)
	copy(path, p.Path)
	path[len(p.Path)] = len(p.children)

	n := &Node{
		ID:     NodeID(len(t.nodes)),
		Value:  t.Filename[begin:end],
		Begin:  begin,
		End:    end,
		Path:   path,
		parent: p.ID,
	}
	p.children = append(p.children, n.ID)
	t.nodes = append(t.nodes, n)
	return n
}

// Partition splits an unannotated leaf so each given span becomes its own
// child node; text between spans becomes plain children. The returned nodes
// correspond to the surviving spans in order. Partitioning an annotated or
// non-leaf node is a no-op.
func (t *Tree) Partition(id NodeID, spans ...[2]int) []*Node {
	n := t.NodeByID(id)
	if n == nil || !n.IsLeaf() || n.Guess != nil || len(spans) == 0 {
		return nil
	}

	valid := make([][2]int, 0, len(spans))
	for _, sp := range spans {
		if sp[0] >= n.Begin && sp[1] <= n.End && sp[0] < sp[1] {
			valid = append(valid, sp)
		}
	}
	sort.Slice(valid, func(i, j int) bool { return valid[i][0] < valid[j][0] })

	out := make([]*Node, 0, len(valid))
	pos := n.Begin
	for _, sp := range valid {
		if sp[0] < pos {
			// overlaps the previous span
			continue
		}
		if sp[0] > pos {
			t.AddChild(n.ID, pos, sp[0])
		}
		out = append(out, t.AddChild(n.ID, sp[0], sp[1]))
		pos = sp[1]
	}
	if len(out) == 0 {
		return nil
	}
	if pos < n.End {
		t.AddChild(n.ID, pos, n.End)
	}
	return out
}

// Walk visits every node depth-first, left to right.
func (t *Tree) Walk(fn func(*Node)) {
	t.walk(0, fn)
}

func (t *Tree) walk(id NodeID, fn func(*Node)) {
	n := t.NodeByID(id)
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.children {
		t.walk(c, fn)
	}
}

// Leaves returns the leaf nodes in depth-first order, which is also their
// textual order in the name.
func (t *Tree) Leaves() []*Node {
	var out []*Node
	t.Walk(func(n *Node) {
		if n.IsLeaf() {
			out = append(out, n)
		}
	})
	return out
}

// NodeAtPath walks child indices from the root, nil when the path does not
// exist. It works across trees built from different options, which lets the
// matcher look up "the node at the same place" in another parse.
func (t *Tree) NodeAtPath(path []int) *Node {
	n := t.Root()
	for _, idx := range path {
		if idx < 0 || idx >= len(n.children) {
			return nil
		}
		n = t.NodeByID(n.children[idx])
	}
	return n
}

// FindNodes returns the nodes whose guess carries the given property key,
// in depth-first order.
func (t *Tree) FindNodes(key string) []*Node {
	var out []*Node
	t.Walk(func(n *Node) {
		if n.Guess.Has(key) {
			out = append(out, n)
		}
	})
	return out
}

// Matched merges every annotated node's guess in depth-first, left-to-right
// order so merge tie-breaks are reproducible.
func (t *Tree) Matched() *guess.Guess {
	var gs []*guess.Guess
	t.Walk(func(n *Node) {
		if n.Guess != nil {
			gs = append(gs, n.Guess)
		}
	})
	return guess.MergeAll(gs)
}
