package guess

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromProps(t *testing.T) {
	g := FromProps(map[string]any{
		KeyYear:  1998,
		KeyTitle: "Dark City",
	}, 0.8)

	assert.Equal(t, []string{KeyTitle, KeyYear}, g.Keys(), "keys should insert sorted")
	assert.Equal(t, 0.8, g.Confidence(KeyTitle))
	assert.Equal(t, 0.8, g.Confidence(KeyYear))

	title, ok := g.Str(KeyTitle)
	require.True(t, ok)
	assert.Equal(t, "Dark City", title)

	year, ok := g.Int(KeyYear)
	require.True(t, ok)
	assert.Equal(t, 1998, year)
}

func TestSetClampsConfidence(t *testing.T) {
	g := New()
	g.Set(KeyTitle, "a", 1.4)
	g.Set(KeyYear, 1998, -0.2)
	assert.Equal(t, 1.0, g.Confidence(KeyTitle))
	assert.Equal(t, 0.0, g.Confidence(KeyYear))
}

func TestMergeAllUnionsKeys(t *testing.T) {
	a := FromProps(map[string]any{KeyTitle: "Dark City"}, 0.6)
	b := FromProps(map[string]any{KeyYear: 1998}, 1.0)
	c := FromProps(map[string]any{KeyVideoCodec: "h264"}, 1.0)

	got := MergeAll([]*Guess{a, b, c})
	gotRev := MergeAll([]*Guess{c, b, a})

	want := []string{KeyTitle, KeyYear, KeyVideoCodec}
	assert.ElementsMatch(t, want, got.Keys())
	assert.ElementsMatch(t, got.Keys(), gotRev.Keys(), "key union must not depend on input order")
}

func TestMergeAllHigherConfidenceWins(t *testing.T) {
	low := New()
	low.Set(KeyTitle, "Dark", 0.4)
	high := New()
	high.Set(KeyTitle, "Dark City", 0.9)

	for _, in := range [][]*Guess{{low, high}, {high, low}} {
		got := MergeAll(in)
		title, ok := got.Str(KeyTitle)
		require.True(t, ok)
		assert.Equal(t, "Dark City", title)
		assert.Equal(t, 0.9, got.Confidence(KeyTitle))
	}
}

func TestMergeAllTieKeepsEarliest(t *testing.T) {
	first := New()
	first.Set(KeyLanguage, "french", 0.8)
	second := New()
	second.Set(KeyLanguage, "english", 0.8)

	got := MergeAll([]*Guess{first, second})
	lang, ok := got.Str(KeyLanguage)
	require.True(t, ok)
	assert.Equal(t, "french", lang)
	assert.Equal(t, 0.8, got.Confidence(KeyLanguage))
}

func TestMergeAllAgreementReinforces(t *testing.T) {
	a := New()
	a.Set(KeyYear, 1998, 0.5)
	b := New()
	b.Set(KeyYear, 1998, 0.5)

	got := MergeAll([]*Guess{a, b})
	year, ok := got.Int(KeyYear)
	require.True(t, ok)
	assert.Equal(t, 1998, year)
	assert.InDelta(t, 0.75, got.Confidence(KeyYear), 1e-9)
}

func TestMergeAllDoesNotMutateInputs(t *testing.T) {
	a := New()
	a.Set(KeyTitle, "Dark City", 0.6)
	b := New()
	b.Set(KeyTitle, "Metropolis", 0.9)
	b.Set(KeyYear, 1927, 1.0)

	_ = MergeAll([]*Guess{a, b})

	title, _ := a.Str(KeyTitle)
	assert.Equal(t, "Dark City", title)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, b.Len())
}

func TestMergeAllSkipsNil(t *testing.T) {
	a := FromProps(map[string]any{KeyTitle: "Dark City"}, 0.6)
	got := MergeAll([]*Guess{nil, a, nil})
	assert.Equal(t, 1, got.Len())

	empty := MergeAll(nil)
	require.NotNil(t, empty)
	assert.Equal(t, 0, empty.Len())
}

func TestString(t *testing.T) {
	g := New()
	g.Set(KeyTitle, "Dark City", 0.6)
	g.Set(KeyYear, 1998, 1.0)
	assert.Equal(t, "{title: Dark City (0.60), year: 1998 (1.00)}", g.String())

	var nilGuess *Guess
	assert.Equal(t, "{}", nilGuess.String())
}

func TestMarshalJSON(t *testing.T) {
	g := New()
	g.Set(KeyTitle, "Dark City", 0.6)
	g.Set(KeyYear, 1998, 1.0)

	raw, err := json.Marshal(g)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "Dark City", m[KeyTitle])
	assert.Equal(t, float64(1998), m[KeyYear])
}

func TestParseFileType(t *testing.T) {
	tests := []struct {
		in      string
		want    FileType
		wantErr bool
	}{
		{"autodetect", Autodetect, false},
		{"movie", Movie, false},
		{"episode", Episode, false},
		{"moviesubtitle", MovieSubtitle, false},
		{"episodesubtitle", EpisodeSubtitle, false},
		{"music", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFileType(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestFileTypeKind(t *testing.T) {
	assert.True(t, EpisodeSubtitle.IsSubtitle())
	assert.True(t, EpisodeSubtitle.IsEpisode())
	assert.False(t, EpisodeSubtitle.IsMovie())
	assert.True(t, Movie.IsMovie())
	assert.False(t, Movie.IsSubtitle())
	assert.False(t, Autodetect.IsEpisode())
}
