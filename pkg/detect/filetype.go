package detect

import (
	"context"
	"regexp"
	"strings"

	"github.com/kasuboski/mediaguess/pkg/guess"
	"github.com/kasuboski/mediaguess/pkg/matchtree"
)

var videoExtensions = map[string]struct{}{
	"3gp": {}, "avi": {}, "divx": {}, "flv": {}, "iso": {}, "m2ts": {},
	"m4v": {}, "mkv": {}, "mov": {}, "mp4": {}, "mpeg": {}, "mpg": {},
	"ogm": {}, "ogv": {}, "ts": {}, "vob": {}, "webm": {}, "wmv": {},
}

var subtitleExtensions = map[string]struct{}{
	"ass": {}, "idx": {}, "smi": {}, "srt": {}, "ssa": {}, "sub": {},
	"vtt": {},
}

var episodeHintRe = regexp.MustCompile(`(?i)\b(?:s\d{1,2}[\s._-]*e\d{1,3}|\d{1,2}x\d{2,3}|season[\s._-]*\d{1,2})\b`)

// VideoExtension reports whether ext (without the dot) names a video
// container.
func VideoExtension(ext string) bool {
	_, ok := videoExtensions[strings.ToLower(ext)]
	return ok
}

// SubtitleExtension reports whether ext (without the dot) names a subtitle
// format.
func SubtitleExtension(ext string) bool {
	_, ok := subtitleExtensions[strings.ToLower(ext)]
	return ok
}

// filetype resolves the requested file type against the name and annotates
// the extension. An autodetect request becomes episode when an episode
// pattern appears anywhere in the name, movie otherwise; a subtitle
// extension upgrades either to its subtitle variant.
type filetype struct{}

func (filetype) Name() string { return "filetype" }

func (filetype) Annotate(_ context.Context, t *matchtree.Tree) {
	resolved := t.FileType
	if resolved == "" {
		resolved = guess.Autodetect
	}

	ext := extensionNode(t)
	extValue := ""
	if ext != nil {
		extValue = strings.ToLower(ext.Value)
	}
	_, isSubtitle := subtitleExtensions[extValue]

	if resolved == guess.Autodetect {
		if episodeHintRe.MatchString(t.Filename) {
			resolved = guess.Episode
		} else {
			resolved = guess.Movie
		}
	}
	if isSubtitle {
		switch resolved {
		case guess.Movie:
			resolved = guess.MovieSubtitle
		case guess.Episode:
			resolved = guess.EpisodeSubtitle
		}
	}
	t.FileType = resolved

	g := guess.New()
	g.Set(guess.KeyType, string(resolved), 1.0)
	if ext != nil {
		g.Set(guess.KeyContainer, extValue, 1.0)
		ext.Guess = g
		return
	}
	t.Root().Guess = g
}
