package detect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasuboski/mediaguess/pkg/guess"
	"github.com/kasuboski/mediaguess/pkg/language"
	"github.com/kasuboski/mediaguess/pkg/matchtree"
)

func annotate(t *testing.T, filename string, filetype guess.FileType, opts matchtree.Options) *matchtree.Tree {
	t.Helper()
	tree := matchtree.New(filename, filetype, opts)
	for _, d := range Pipeline() {
		d.Annotate(context.Background(), tree)
	}
	return tree
}

func TestPipelineMovie(t *testing.T) {
	tree := annotate(t, "dark.city.1998.720p.x264-FGT.mkv", guess.Autodetect, matchtree.Options{})
	m := tree.Matched()

	assert.Equal(t, guess.Movie, tree.FileType)

	typ, _ := m.Str(guess.KeyType)
	assert.Equal(t, "movie", typ)
	container, _ := m.Str(guess.KeyContainer)
	assert.Equal(t, "mkv", container)
	year, _ := m.Int(guess.KeyYear)
	assert.Equal(t, 1998, year)
	size, _ := m.Str(guess.KeyScreenSize)
	assert.Equal(t, "720p", size)
	codec, _ := m.Str(guess.KeyVideoCodec)
	assert.Equal(t, "h264", codec)
	group, _ := m.Str(guess.KeyReleaseGroup)
	assert.Equal(t, "FGT", group)
	title, _ := m.Str(guess.KeyTitle)
	assert.Equal(t, "Dark City", title)

	assert.Equal(t, 1.0, m.Confidence(guess.KeyYear))
	assert.Equal(t, 0.8, m.Confidence(guess.KeyReleaseGroup))
	assert.Equal(t, 0.6, m.Confidence(guess.KeyTitle))
}

func TestPipelineEpisode(t *testing.T) {
	tree := annotate(t, "The.Office.(US).S01E05.Halloween.avi", guess.Autodetect, matchtree.Options{})
	m := tree.Matched()

	assert.Equal(t, guess.Episode, tree.FileType)

	series, _ := m.Str(guess.KeySeries)
	assert.Equal(t, "The Office", series)
	season, _ := m.Int(guess.KeySeason)
	assert.Equal(t, 1, season)
	episode, _ := m.Int(guess.KeyEpisodeNumber)
	assert.Equal(t, 5, episode)
	title, _ := m.Str(guess.KeyTitle)
	assert.Equal(t, "Halloween", title)

	country, ok := m.Value(guess.KeyCountry)
	require.True(t, ok)
	assert.Equal(t, "US", country.(language.Country).Alpha2)
	assert.Equal(t, 1.0, m.Confidence(guess.KeyCountry))
}

func TestPipelinePathComponents(t *testing.T) {
	tree := annotate(t, "Series/Season 2/s02e13.avi", guess.Autodetect, matchtree.Options{})
	m := tree.Matched()

	assert.Equal(t, guess.Episode, tree.FileType)

	series, _ := m.Str(guess.KeySeries)
	assert.Equal(t, "Series", series)
	season, _ := m.Int(guess.KeySeason)
	assert.Equal(t, 2, season)
	episode, _ := m.Int(guess.KeyEpisodeNumber)
	assert.Equal(t, 13, episode)

	// the strong s02e13 marker outranks the bare "Season 2" directory
	assert.Equal(t, 1.0, m.Confidence(guess.KeySeason))
}

func TestYearSkipFirst(t *testing.T) {
	first := annotate(t, "1984.2012.720p.mkv", guess.Movie, matchtree.Options{})
	years := first.FindNodes(guess.KeyYear)
	require.Len(t, years, 2)

	second := annotate(t, "1984.2012.720p.mkv", guess.Movie, matchtree.Options{SkipFirstYear: true})
	years = second.FindNodes(guess.KeyYear)
	require.Len(t, years, 1)

	m := second.Matched()
	year, _ := m.Int(guess.KeyYear)
	assert.Equal(t, 2012, year)
	title, _ := m.Str(guess.KeyTitle)
	assert.Equal(t, "1984", title)
}

func TestYearInsideGroup(t *testing.T) {
	m := annotate(t, "Movie.(2011).720p.mkv", guess.Autodetect, matchtree.Options{}).Matched()

	year, _ := m.Int(guess.KeyYear)
	assert.Equal(t, 2011, year)
	title, _ := m.Str(guess.KeyTitle)
	assert.Equal(t, "Movie", title)
	size, _ := m.Str(guess.KeyScreenSize)
	assert.Equal(t, "720p", size)
}

func TestDate(t *testing.T) {
	m := annotate(t, "The.Daily.Show.2012.09.14.HDTV.x264.mkv", guess.Episode, matchtree.Options{}).Matched()

	date, _ := m.Str(guess.KeyDate)
	assert.Equal(t, "2012-09-14", date)
	series, _ := m.Str(guess.KeySeries)
	assert.Equal(t, "The Daily Show", series)
	format, _ := m.Str(guess.KeyFormat)
	assert.Equal(t, "HDTV", format)

	// the date's year must not be read again as a standalone year
	assert.False(t, m.Has(guess.KeyYear))
}

func TestProperties(t *testing.T) {
	m := annotate(t, "Movie.2010.720p.BluRay.DTS.5.1.x264-GRP.mkv", guess.Movie, matchtree.Options{}).Matched()

	format, _ := m.Str(guess.KeyFormat)
	assert.Equal(t, "BluRay", format)
	channels, _ := m.Str(guess.KeyAudioChannels)
	assert.Equal(t, "5.1", channels)
	audio, _ := m.Str(guess.KeyAudioCodec)
	assert.Equal(t, "DTS", audio)
	video, _ := m.Str(guess.KeyVideoCodec)
	assert.Equal(t, "h264", video)
	group, _ := m.Str(guess.KeyReleaseGroup)
	assert.Equal(t, "GRP", group)
	title, _ := m.Str(guess.KeyTitle)
	assert.Equal(t, "Movie", title)
}

func TestWeakEpisodePattern(t *testing.T) {
	m := annotate(t, "show.1.05.mkv", guess.Episode, matchtree.Options{}).Matched()

	season, _ := m.Int(guess.KeySeason)
	assert.Equal(t, 1, season)
	episode, _ := m.Int(guess.KeyEpisodeNumber)
	assert.Equal(t, 5, episode)
	assert.Equal(t, 0.6, m.Confidence(guess.KeySeason))
	series, _ := m.Str(guess.KeySeries)
	assert.Equal(t, "Show", series)
}

func TestLanguage(t *testing.T) {
	m := annotate(t, "Amelie.2001.French.DVDRip.mkv", guess.Movie, matchtree.Options{}).Matched()

	lang, ok := m.Value(guess.KeyLanguage)
	require.True(t, ok)
	assert.Equal(t, "French", lang.(language.Language).Name)
	assert.Equal(t, 1.0, m.Confidence(guess.KeyLanguage))

	format, _ := m.Str(guess.KeyFormat)
	assert.Equal(t, "DVDRip", format)
	title, _ := m.Str(guess.KeyTitle)
	assert.Equal(t, "Amelie", title)
}

func TestLanguageDisabled(t *testing.T) {
	m := annotate(t, "Amelie.2001.French.DVDRip.mkv", guess.Movie, matchtree.Options{NoLanguage: true}).Matched()

	assert.False(t, m.Has(guess.KeyLanguage))
	title, _ := m.Str(guess.KeyTitle)
	assert.Equal(t, "Amelie", title)
}

func TestSubtitleLanguagePosition(t *testing.T) {
	tree := annotate(t, "Vertigo.1958.FR.srt", guess.Autodetect, matchtree.Options{})
	m := tree.Matched()

	assert.Equal(t, guess.MovieSubtitle, tree.FileType)

	lang, ok := m.Value(guess.KeySubtitleLanguage)
	require.True(t, ok)
	assert.Equal(t, "fr", lang.(language.Language).Alpha2)
	assert.InDelta(t, 0.7, m.Confidence(guess.KeySubtitleLanguage), 1e-9)
	assert.False(t, m.Has(guess.KeyLanguage))

	title, _ := m.Str(guess.KeyTitle)
	assert.Equal(t, "Vertigo", title)
}

func TestCountryOnlyInGroups(t *testing.T) {
	m := annotate(t, "Paris.US.2010.mkv", guess.Movie, matchtree.Options{}).Matched()
	assert.False(t, m.Has(guess.KeyCountry))

	m = annotate(t, "Paris.(US).2010.mkv", guess.Movie, matchtree.Options{NoCountry: true}).Matched()
	assert.False(t, m.Has(guess.KeyCountry))
}

func TestReleaseGroupInBrackets(t *testing.T) {
	m := annotate(t, "Movie.2011.[GRP].mkv", guess.Movie, matchtree.Options{}).Matched()

	group, _ := m.Str(guess.KeyReleaseGroup)
	assert.Equal(t, "GRP", group)
	assert.InDelta(t, 0.7, m.Confidence(guess.KeyReleaseGroup), 1e-9)
	title, _ := m.Str(guess.KeyTitle)
	assert.Equal(t, "Movie", title)
}

func TestFiletypeResolution(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		filetype guess.FileType
		want     guess.FileType
	}{
		{"movie by default", "Movie.2011.mkv", guess.Autodetect, guess.Movie},
		{"episode marker", "Show.S01E01.mkv", guess.Autodetect, guess.Episode},
		{"x notation subtitle", "Show.1x05.srt", guess.Autodetect, guess.EpisodeSubtitle},
		{"movie subtitle", "Movie.2011.srt", guess.Autodetect, guess.MovieSubtitle},
		{"explicit movie wins", "Show.S01E01.mkv", guess.Movie, guess.Movie},
		{"explicit movie upgrades", "Movie.2011.srt", guess.Movie, guess.MovieSubtitle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := annotate(t, tt.filename, tt.filetype, matchtree.Options{})
			assert.Equal(t, tt.want, tree.FileType)

			typ, ok := tree.Matched().Str(guess.KeyType)
			require.True(t, ok)
			assert.Equal(t, string(tt.want), typ)
		})
	}
}

func TestExtensionlessName(t *testing.T) {
	tree := annotate(t, "dark city 1998", guess.Autodetect, matchtree.Options{})
	m := tree.Matched()

	typ, _ := m.Str(guess.KeyType)
	assert.Equal(t, "movie", typ)
	assert.False(t, m.Has(guess.KeyContainer))
	year, _ := m.Int(guess.KeyYear)
	assert.Equal(t, 1998, year)
	title, _ := m.Str(guess.KeyTitle)
	assert.Equal(t, "Dark City", title)
}

func TestPipelineDeterminism(t *testing.T) {
	const name = "The.Office.(US).S01E05.Halloween.720p.HDTV.x264-LOL.avi"
	a := annotate(t, name, guess.Autodetect, matchtree.Options{}).Matched()
	b := annotate(t, name, guess.Autodetect, matchtree.Options{}).Matched()
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, a.Keys(), b.Keys())
}
