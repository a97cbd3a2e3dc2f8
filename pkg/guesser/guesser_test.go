package guesser

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasuboski/mediaguess/pkg/guess"
	fileio "github.com/kasuboski/mediaguess/pkg/io"
	"github.com/kasuboski/mediaguess/pkg/language"
)

func newGuesser() *Guesser {
	return New(&fileio.MediaFileSystem{})
}

func TestGuessFileInfoFilename(t *testing.T) {
	ctx := context.Background()
	gu := newGuesser()

	g := gu.GuessFileInfo(ctx, "dark.city.1998.720p.x264-FGT.mkv", guess.Autodetect, nil)

	title, _ := g.Str(guess.KeyTitle)
	assert.Equal(t, "Dark City", title)
	year, _ := g.Int(guess.KeyYear)
	assert.Equal(t, 1998, year)
	typ, _ := g.Str(guess.KeyType)
	assert.Equal(t, "movie", typ)

	// facts default to just the filename
	explicit := gu.GuessFileInfo(ctx, "dark.city.1998.720p.x264-FGT.mkv", guess.Autodetect, []string{guess.FactFilename})
	assert.Equal(t, explicit.String(), g.String())
}

func TestGuessFileInfoHashes(t *testing.T) {
	ctx := context.Background()
	gu := newGuesser()

	path := filepath.Join(t.TempDir(), "dark.city.1998.mkv")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	g := gu.GuessFileInfo(ctx, path, guess.Movie, []string{guess.FactFilename, "hash_md5", "hash_sha1"})

	title, _ := g.Str(guess.KeyTitle)
	assert.Equal(t, "Dark City", title)

	md5sum, _ := g.Str("hash_md5")
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", md5sum)
	sha1sum, _ := g.Str("hash_sha1")
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", sha1sum)
	assert.Equal(t, 1.0, g.Confidence("hash_md5"))

	// hash facts come after the filename facts in key order
	keys := g.Keys()
	assert.Equal(t, "hash_md5", keys[len(keys)-2])
	assert.Equal(t, "hash_sha1", keys[len(keys)-1])
}

func TestGuessFileInfoEd2k(t *testing.T) {
	ctx := context.Background()
	gu := newGuesser()

	path := filepath.Join(t.TempDir(), "abc.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	g := gu.GuessFileInfo(ctx, path, guess.Movie, []string{"hash_ed2k"})

	link, ok := g.Str("hash_ed2k")
	require.True(t, ok)
	assert.Equal(t, "ed2k://|file|abc.txt|3|a448017aaf21d8525fc10ae87aa6729d|/", link)
}

func TestGuessFileInfoDegradesPerFact(t *testing.T) {
	ctx := context.Background()
	gu := newGuesser()

	// too small for the mpc hash, fine for md5
	path := filepath.Join(t.TempDir(), "small.avi")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	g := gu.GuessFileInfo(ctx, path, guess.Movie, []string{"hash_mpc", "hash_md5"})

	assert.False(t, g.Has("hash_mpc"))
	md5sum, _ := g.Str("hash_md5")
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", md5sum)
}

func TestGuessFileInfoUnknownFacts(t *testing.T) {
	ctx := context.Background()
	gu := newGuesser()

	plain := gu.GuessFileInfo(ctx, "dark.city.1998.mkv", guess.Movie, []string{guess.FactFilename})
	noisy := gu.GuessFileInfo(ctx, "dark.city.1998.mkv", guess.Movie, []string{guess.FactFilename, "frobnicate", "hash_whirlpool"})
	assert.Equal(t, plain.String(), noisy.String())

	empty := gu.GuessFileInfo(ctx, "dark.city.1998.mkv", guess.Movie, []string{"frobnicate"})
	assert.Equal(t, 0, empty.Len())
}

func TestGuessFileInfoFoldsCountry(t *testing.T) {
	ctx := context.Background()
	gu := newGuesser()

	g := gu.GuessFileInfo(ctx, "The.Office.(US).S01E05.avi", guess.Autodetect, nil)

	series, _ := g.Str(guess.KeySeries)
	assert.Equal(t, "The Office (US)", series)

	country, ok := g.Value(guess.KeyCountry)
	require.True(t, ok)
	assert.Equal(t, "US", country.(language.Country).Alpha2)
}

func TestGuessWrappers(t *testing.T) {
	ctx := context.Background()
	gu := newGuesser()

	g := gu.GuessVideoInfo(ctx, "Vertigo.1958.FR.srt", nil)
	typ, _ := g.Str(guess.KeyType)
	assert.Equal(t, "moviesubtitle", typ)

	g = gu.GuessMovieInfo(ctx, "Show.S01E01.mkv", nil)
	typ, _ = g.Str(guess.KeyType)
	assert.Equal(t, "movie", typ)

	g = gu.GuessEpisodeInfo(ctx, "anything.mkv", nil)
	typ, _ = g.Str(guess.KeyType)
	assert.Equal(t, "episode", typ)
}
