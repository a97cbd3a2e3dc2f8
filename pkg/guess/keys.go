package guess

import "fmt"

// Well-known property keys. The key space is open; detectors may introduce
// new keys without touching this list.
const (
	KeyType             = "type"
	KeyContainer        = "container"
	KeyTitle            = "title"
	KeySeries           = "series"
	KeySeason           = "season"
	KeyEpisodeNumber    = "episodeNumber"
	KeyYear             = "year"
	KeyDate             = "date"
	KeyLanguage         = "language"
	KeySubtitleLanguage = "subtitleLanguage"
	KeyCountry          = "country"
	KeyFormat           = "format"
	KeyScreenSize       = "screenSize"
	KeyVideoCodec       = "videoCodec"
	KeyAudioCodec       = "audioCodec"
	KeyAudioChannels    = "audioChannels"
	KeyOther            = "other"
	KeyReleaseGroup     = "releaseGroup"
)

// Fact sources understood by the guesser.
const (
	FactFilename   = "filename"
	FactHashPrefix = "hash_"
)

// FileType tells the engine what kind of file a name refers to.
type FileType string

const (
	Autodetect      FileType = "autodetect"
	Movie           FileType = "movie"
	Episode         FileType = "episode"
	MovieSubtitle   FileType = "moviesubtitle"
	EpisodeSubtitle FileType = "episodesubtitle"
)

// ParseFileType validates a filetype string.
func ParseFileType(s string) (FileType, error) {
	switch FileType(s) {
	case Autodetect, Movie, Episode, MovieSubtitle, EpisodeSubtitle:
		return FileType(s), nil
	}
	return "", fmt.Errorf("unknown filetype %q", s)
}

// IsSubtitle reports whether the type refers to a subtitle file.
func (f FileType) IsSubtitle() bool {
	return f == MovieSubtitle || f == EpisodeSubtitle
}

// IsEpisode reports whether the type refers to series content.
func (f FileType) IsEpisode() bool {
	return f == Episode || f == EpisodeSubtitle
}

// IsMovie reports whether the type refers to movie content.
func (f FileType) IsMovie() bool {
	return f == Movie || f == MovieSubtitle
}
