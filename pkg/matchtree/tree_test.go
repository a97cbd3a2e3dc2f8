package matchtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasuboski/mediaguess/pkg/guess"
)

func TestNewTree(t *testing.T) {
	tree := New("Movies/Dark City (1998).mkv", guess.Movie, Options{})

	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, NodeID(0), root.ID)
	assert.Equal(t, "Movies/Dark City (1998).mkv", root.Value)
	assert.Equal(t, 0, root.Begin)
	assert.Equal(t, len(tree.Filename), root.End)
	assert.Empty(t, root.Path)
	assert.True(t, root.IsLeaf())
	assert.Nil(t, tree.Parent(root))
}

func TestAddChild(t *testing.T) {
	tree := New("abc/def", guess.Movie, Options{})

	a := tree.AddChild(0, 0, 3)
	require.NotNil(t, a)
	assert.Equal(t, "abc", a.Value)
	assert.Equal(t, []int{0}, a.Path)

	b := tree.AddChild(0, 4, 7)
	require.NotNil(t, b)
	assert.Equal(t, "def", b.Value)
	assert.Equal(t, []int{1}, b.Path)

	sub := tree.AddChild(b.ID, 4, 5)
	require.NotNil(t, sub)
	assert.Equal(t, "d", sub.Value)
	assert.Equal(t, []int{1, 0}, sub.Path)
	assert.Equal(t, b, tree.Parent(sub))

	// spans must nest inside the parent
	assert.Nil(t, tree.AddChild(b.ID, 0, 3))
	assert.Nil(t, tree.AddChild(NodeID(99), 0, 1))
}

func TestPartition(t *testing.T) {
	tree := New("dark city 1998 720p", guess.Movie, Options{})

	nodes := tree.Partition(0, [2]int{10, 14})
	require.Len(t, nodes, 1)
	assert.Equal(t, "1998", nodes[0].Value)

	children := tree.Children(0)
	require.Len(t, children, 3)
	assert.Equal(t, "dark city ", children[0].Value)
	assert.Equal(t, "1998", children[1].Value)
	assert.Equal(t, " 720p", children[2].Value)
}

func TestPartitionMultipleSpans(t *testing.T) {
	tree := New("a 1998 b 2012 c", guess.Movie, Options{})

	nodes := tree.Partition(0, [2]int{9, 13}, [2]int{2, 6})
	require.Len(t, nodes, 2)
	assert.Equal(t, "1998", nodes[0].Value, "spans should be ordered by position")
	assert.Equal(t, "2012", nodes[1].Value)

	var values []string
	for _, c := range tree.Children(0) {
		values = append(values, c.Value)
	}
	assert.Equal(t, []string{"a ", "1998", " b ", "2012", " c"}, values)
}

func TestPartitionGuards(t *testing.T) {
	tree := New("dark city 1998", guess.Movie, Options{})

	// overlapping spans keep the first
	nodes := tree.Partition(0, [2]int{0, 4}, [2]int{2, 6})
	require.Len(t, nodes, 1)
	assert.Equal(t, "dark", nodes[0].Value)

	// already split: no-op
	assert.Nil(t, tree.Partition(0, [2]int{5, 9}))

	// annotated leaf: no-op
	other := New("1998", guess.Movie, Options{})
	other.Root().Guess = guess.FromProps(map[string]any{guess.KeyYear: 1998}, 1.0)
	assert.Nil(t, other.Partition(0, [2]int{0, 4}))

	// span outside the node: nothing to split
	third := New("abc", guess.Movie, Options{})
	assert.Nil(t, third.Partition(0, [2]int{1, 9}))
}

func TestLeavesOrder(t *testing.T) {
	tree := New("one/two/three", guess.Movie, Options{})
	tree.AddChild(0, 0, 3)
	mid := tree.AddChild(0, 4, 7)
	tree.AddChild(0, 8, 13)
	tree.AddChild(mid.ID, 4, 5)
	tree.AddChild(mid.ID, 5, 7)

	var values []string
	for _, l := range tree.Leaves() {
		values = append(values, l.Value)
	}
	assert.Equal(t, []string{"one", "t", "wo", "three"}, values)
}

func TestNodeAtPath(t *testing.T) {
	tree := New("ab/cd", guess.Movie, Options{})
	a := tree.AddChild(0, 0, 2)
	b := tree.AddChild(0, 3, 5)
	inner := tree.AddChild(b.ID, 3, 4)

	assert.Equal(t, tree.Root(), tree.NodeAtPath(nil))
	assert.Equal(t, a, tree.NodeAtPath([]int{0}))
	assert.Equal(t, inner, tree.NodeAtPath([]int{1, 0}))
	assert.Nil(t, tree.NodeAtPath([]int{2}))
	assert.Nil(t, tree.NodeAtPath([]int{0, 0}))

	// the same path resolves in a tree built another way
	second := New("ab/cd", guess.Movie, Options{NoLanguage: true})
	second.AddChild(0, 0, 2)
	assert.NotNil(t, second.NodeAtPath(a.Path))
}

func TestFindNodes(t *testing.T) {
	tree := New("dark city 1998 1984", guess.Movie, Options{})
	nodes := tree.Partition(0, [2]int{10, 14}, [2]int{15, 19})
	require.Len(t, nodes, 2)
	nodes[0].Guess = guess.FromProps(map[string]any{guess.KeyYear: 1998}, 1.0)
	nodes[1].Guess = guess.FromProps(map[string]any{guess.KeyYear: 1984}, 1.0)

	found := tree.FindNodes(guess.KeyYear)
	require.Len(t, found, 2)
	assert.Equal(t, "1998", found[0].Value)
	assert.Equal(t, "1984", found[1].Value)

	assert.Empty(t, tree.FindNodes(guess.KeyTitle))
}

func TestMatchedMergesDepthFirst(t *testing.T) {
	tree := New("x y", guess.Movie, Options{})
	left := tree.AddChild(0, 0, 1)
	right := tree.AddChild(0, 2, 3)

	left.Guess = guess.FromProps(map[string]any{guess.KeyTitle: "left"}, 0.5)
	right.Guess = guess.FromProps(map[string]any{guess.KeyTitle: "right"}, 0.5)

	got := tree.Matched()
	title, ok := got.Str(guess.KeyTitle)
	require.True(t, ok)
	assert.Equal(t, "left", title, "earlier node wins confidence ties")

	// higher confidence on a later node still wins
	right.Guess = guess.FromProps(map[string]any{guess.KeyTitle: "right"}, 0.9)
	got = tree.Matched()
	title, _ = got.Str(guess.KeyTitle)
	assert.Equal(t, "right", title)
}

func TestCleanString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dark.city.(1998)", "dark city 1998"},
		{"The_Office__[US]", "The Office US"},
		{"  trim-me  ", "trim me"},
		{"a.b-c_d e", "a b c d e"},
		{"", ""},
		{"...", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanString(tt.in), tt.in)
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("dark.city 1998", 10)
	require.Len(t, got, 3)
	assert.Equal(t, Token{Text: "dark", Begin: 10, End: 14}, got[0])
	assert.Equal(t, Token{Text: "city", Begin: 15, End: 19}, got[1])
	assert.Equal(t, Token{Text: "1998", Begin: 20, End: 24}, got[2])

	assert.Empty(t, Tokens("...", 0))
	assert.Empty(t, Tokens("", 0))
}
