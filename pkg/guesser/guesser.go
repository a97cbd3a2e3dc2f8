package guesser

import (
	"context"
	"fmt"
	"strings"

	"github.com/kasuboski/mediaguess/pkg/guess"
	"github.com/kasuboski/mediaguess/pkg/hashfile"
	fileio "github.com/kasuboski/mediaguess/pkg/io"
	"github.com/kasuboski/mediaguess/pkg/language"
	"github.com/kasuboski/mediaguess/pkg/logger"
	"github.com/kasuboski/mediaguess/pkg/matcher"
)

// Guesser infers media metadata from file names and file contents.
type Guesser struct {
	fileIO fileio.FileIO
}

// New returns a Guesser reading files through the given file io.
func New(fileIO fileio.FileIO) *Guesser {
	return &Guesser{fileIO: fileIO}
}

// GuessFileInfo runs the requested facts over one file and merges their
// guesses. The "filename" fact parses the name; "hash_mpc", "hash_ed2k" and
// "hash_<digest>" facts read the file's contents. Facts default to just
// "filename". A failing fact degrades to a warning; the merged guess carries
// whatever succeeded.
func (gu *Guesser) GuessFileInfo(ctx context.Context, filename string, filetype guess.FileType, facts []string) *guess.Guess {
	log := logger.FromCtx(ctx)

	if len(facts) == 0 {
		facts = []string{guess.FactFilename}
	}

	var sources []*guess.Guess
	var digestAlgs []string

	for _, fact := range facts {
		switch {
		case fact == guess.FactFilename:
			sources = append(sources, matcher.GuessFilename(ctx, filename, filetype))

		case fact == "hash_mpc":
			h, err := hashfile.MpcHash(gu.fileIO, filename)
			if err != nil {
				log.Warnw("could not compute mpc hash", "file", filename, "error", err)
				continue
			}
			sources = append(sources, guess.FromProps(map[string]any{fact: h}, 1.0))

		case fact == "hash_ed2k":
			link, err := hashfile.Ed2kLink(gu.fileIO, filename)
			if err != nil {
				log.Warnw("could not compute ed2k hash", "file", filename, "error", err)
				continue
			}
			sources = append(sources, guess.FromProps(map[string]any{fact: link}, 1.0))

		case strings.HasPrefix(fact, guess.FactHashPrefix):
			alg := strings.TrimPrefix(fact, guess.FactHashPrefix)
			if !hashfile.Supported(alg) {
				log.Warnw("unsupported hash digest", "fact", fact)
				continue
			}
			digestAlgs = append(digestAlgs, alg)

		default:
			log.Warnw("invalid fact", "fact", fact)
		}
	}

	// all plain digests share one read of the file
	if len(digestAlgs) > 0 {
		hashes, err := hashfile.DigestFile(gu.fileIO, filename, digestAlgs)
		if err != nil {
			log.Warnw("could not compute hashes", "file", filename, "error", err)
		} else {
			for _, alg := range digestAlgs {
				sources = append(sources, guess.FromProps(map[string]any{guess.FactHashPrefix + alg: hashes[alg]}, 1.0))
			}
		}
	}

	result := guess.MergeAll(sources)
	foldCountry(result)
	return result
}

// GuessVideoInfo guesses with the file kind detected from the name.
func (gu *Guesser) GuessVideoInfo(ctx context.Context, filename string, facts []string) *guess.Guess {
	return gu.GuessFileInfo(ctx, filename, guess.Autodetect, facts)
}

// GuessMovieInfo guesses treating the file as a movie.
func (gu *Guesser) GuessMovieInfo(ctx context.Context, filename string, facts []string) *guess.Guess {
	return gu.GuessFileInfo(ctx, filename, guess.Movie, facts)
}

// GuessEpisodeInfo guesses treating the file as a series episode.
func (gu *Guesser) GuessEpisodeInfo(ctx context.Context, filename string, facts []string) *guess.Guess {
	return gu.GuessFileInfo(ctx, filename, guess.Episode, facts)
}

// foldCountry renders the country into the series name, "The Office (US)".
// It runs once on the merged result so repeated country matches cannot stack
// the suffix.
func foldCountry(g *guess.Guess) {
	series, ok := g.Str(guess.KeySeries)
	if !ok {
		return
	}
	v, ok := g.Value(guess.KeyCountry)
	if !ok {
		return
	}
	c, ok := v.(language.Country)
	if !ok {
		return
	}
	folded := fmt.Sprintf("%s (%s)", series, strings.ToUpper(c.Alpha2))
	g.Set(guess.KeySeries, folded, g.Confidence(guess.KeySeries))
}
