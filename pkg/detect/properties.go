package detect

import (
	"context"
	"regexp"
	"strings"

	"github.com/kasuboski/mediaguess/pkg/guess"
	"github.com/kasuboski/mediaguess/pkg/matchtree"
)

// propPattern is a regex-shaped release property. An empty value is derived
// from the match itself.
type propPattern struct {
	re    *regexp.Regexp
	key   string
	value string
}

var propRexps = []propPattern{
	{re: regexp.MustCompile(`(?i)\bblu[-._ ]?ray\b`), key: guess.KeyFormat, value: "BluRay"},
	{re: regexp.MustCompile(`(?i)\bweb[-._ ]?dl\b`), key: guess.KeyFormat, value: "WEB-DL"},
	{re: regexp.MustCompile(`(?i)\bhd[-._ ]?dvd\b`), key: guess.KeyFormat, value: "HD-DVD"},
	{re: regexp.MustCompile(`(?i)\bdvd[-._ ]?scr(?:eener)?\b`), key: guess.KeyFormat, value: "Screener"},
	{re: regexp.MustCompile(`(?i)\bdts[-._ ]?hd\b`), key: guess.KeyAudioCodec, value: "DTS-HD"},
	{re: regexp.MustCompile(`(?i)\bh[._ ]?26([45])\b`), key: guess.KeyVideoCodec},
	{re: regexp.MustCompile(`(?i)\b([1257])[._ ]([01])(?:ch)?\b`), key: guess.KeyAudioChannels},
	{re: regexp.MustCompile(`(?i)\b(\d{3,4})([pi])\b`), key: guess.KeyScreenSize},
	{re: regexp.MustCompile(`(?i)\b4k\b`), key: guess.KeyScreenSize, value: "2160p"},
}

var formatTokens = map[string]string{
	"bluray": "BluRay", "bd": "BluRay", "bdrip": "BDRip", "brrip": "BRRip",
	"hddvd": "HD-DVD", "hdtv": "HDTV", "pdtv": "PDTV", "sdtv": "SDTV",
	"dvd": "DVD", "dvdr": "DVD", "dvdrip": "DVDRip",
	"webdl": "WEB-DL", "web": "WEB-DL", "webrip": "WEBRip",
	"cam": "CAM", "camrip": "CAM", "telesync": "Telesync", "telecine": "Telecine",
	"r5": "R5", "vhs": "VHS", "ppv": "PPV",
}

var videoCodecTokens = map[string]string{
	"x264": "h264", "h264": "h264", "avc": "h264",
	"x265": "h265", "h265": "h265", "hevc": "h265",
	"xvid": "XviD", "divx": "DivX", "mpeg2": "Mpeg2",
	"vp9": "VP9", "av1": "AV1",
}

var audioCodecTokens = map[string]string{
	"ac3": "AC3", "dd": "AC3", "eac3": "EAC3", "ddp": "EAC3",
	"dts": "DTS", "truehd": "TrueHD", "aac": "AAC", "mp3": "MP3",
	"flac": "FLAC", "opus": "Opus", "atmos": "Atmos",
}

var otherTokens = map[string]string{
	"proper": "Proper", "repack": "Repack", "limited": "Limited",
	"internal": "Internal", "unrated": "Unrated", "extended": "Extended",
	"remux": "Remux", "remastered": "Remastered", "complete": "Complete",
	"uncut": "Uncut", "3d": "3D", "hdr": "HDR", "hdr10": "HDR10",
}

var validScreenSizes = map[string]struct{}{
	"480": {}, "540": {}, "576": {}, "720": {}, "900": {},
	"1080": {}, "1440": {}, "2160": {}, "4320": {},
}

// properties finds release tokens: source format, screen size, codecs,
// channels, and quality flags, all with canonical values.
type properties struct{}

func (properties) Name() string { return "properties" }

func (properties) Annotate(_ context.Context, t *matchtree.Tree) {
	for _, leaf := range unannotatedLeaves(t) {
		var ms []match
		var taken [][2]int

		for _, p := range propRexps {
			for _, idx := range p.re.FindAllStringSubmatchIndex(leaf.Value, -1) {
				span := [2]int{leaf.Begin + idx[0], leaf.Begin + idx[1]}
				if overlapsAny(span, taken) {
					continue
				}
				value := p.value
				if value == "" {
					value = deriveValue(p.key, leaf.Value, idx)
					if value == "" {
						continue
					}
				}
				taken = append(taken, span)
				ms = append(ms, match{span: span, g: guess.FromProps(map[string]any{p.key: value}, 1.0)})
			}
		}

		for _, tok := range matchtree.Tokens(leaf.Value, leaf.Begin) {
			span := [2]int{tok.Begin, tok.End}
			if overlapsAny(span, taken) {
				continue
			}
			lower := strings.ToLower(tok.Text)
			var key, value string
			switch {
			case formatTokens[lower] != "":
				key, value = guess.KeyFormat, formatTokens[lower]
			case videoCodecTokens[lower] != "":
				key, value = guess.KeyVideoCodec, videoCodecTokens[lower]
			case audioCodecTokens[lower] != "":
				key, value = guess.KeyAudioCodec, audioCodecTokens[lower]
			case otherTokens[lower] != "":
				key, value = guess.KeyOther, otherTokens[lower]
			default:
				continue
			}
			taken = append(taken, span)
			ms = append(ms, match{span: span, g: guess.FromProps(map[string]any{key: value}, 1.0)})
		}

		applyMatches(t, leaf.ID, ms)
	}
}

func deriveValue(key, s string, idx []int) string {
	switch key {
	case guess.KeyVideoCodec:
		return "h26" + s[idx[2]:idx[3]]
	case guess.KeyAudioChannels:
		return s[idx[2]:idx[3]] + "." + s[idx[4]:idx[5]]
	case guess.KeyScreenSize:
		size := s[idx[2]:idx[3]]
		if _, ok := validScreenSizes[size]; !ok {
			return ""
		}
		return size + strings.ToLower(s[idx[4]:idx[5]])
	}
	return ""
}
