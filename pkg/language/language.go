package language

import (
	"encoding/json"
	"strings"

	xlang "golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/kasuboski/mediaguess/pkg/cache"
)

// Language identifies a spoken language inferred from a file name.
type Language struct {
	Alpha2 string
	Alpha3 string
	Name   string
}

func (l Language) String() string {
	return l.Name
}

func (l Language) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Name)
}

// alpha2 codes the engine recognizes. Alpha3 codes and English and native
// names are derived from the unicode tables at init.
var alpha2Codes = []string{
	"en", "fr", "es", "de", "it", "pt", "nl", "sv", "no", "da",
	"fi", "is", "ru", "uk", "pl", "cs", "sk", "sl", "hr", "sr",
	"bg", "ro", "hu", "el", "tr", "ar", "he", "fa", "hi", "ja",
	"zh", "ko", "th", "vi", "id", "ms", "et", "lv", "lt", "ca",
	"gl", "eu", "sq", "mk", "bs", "ka", "hy",
}

// bibliographic ISO 639-2/B codes that differ from the terminology codes.
var bibliographic = map[string]string{
	"fre": "fr", "ger": "de", "dut": "nl", "gre": "el", "chi": "zh",
	"cze": "cs", "slo": "sk", "rum": "ro", "per": "fa", "ice": "is",
	"alb": "sq", "arm": "hy", "mac": "mk", "geo": "ka", "may": "ms",
	"baq": "eu",
}

// commonWords are tokens that collide with language codes or names and never
// mean a language on their own in a media file name.
var commonWords = map[string]struct{}{
	"a": {}, "an": {}, "as": {}, "at": {}, "be": {}, "by": {},
	"cat": {}, "da": {}, "day": {}, "de": {}, "do": {}, "el": {},
	"est": {}, "fin": {}, "he": {}, "hi": {}, "ice": {}, "id": {},
	"in": {}, "is": {}, "it": {}, "la": {}, "mac": {}, "mad": {},
	"man": {}, "may": {}, "men": {}, "ms": {}, "my": {}, "new": {},
	"no": {}, "of": {}, "on": {}, "or": {}, "per": {}, "rum": {},
	"run": {}, "so": {}, "st": {}, "the": {}, "to": {}, "war": {},
}

var byToken map[string]Language

func init() {
	byToken = make(map[string]Language)
	for _, code := range alpha2Codes {
		tag := xlang.MustParse(code)
		base, _ := tag.Base()
		l := Language{
			Alpha2: code,
			Alpha3: base.ISO3(),
			Name:   display.English.Languages().Name(tag),
		}
		addToken(code, l)
		addToken(l.Alpha3, l)
		addToken(l.Name, l)
		addToken(display.Self.Name(tag), l)
	}
	for code3, code2 := range bibliographic {
		if l, ok := byToken[code2]; ok {
			addToken(code3, l)
		}
	}
}

func addToken(token string, l Language) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return
	}
	if _, exists := byToken[token]; !exists {
		byToken[token] = l
	}
}

type findResult struct {
	lang Language
	ok   bool
}

// Token lookups repeat heavily across a scan, so results are memoized.
var findCache = cache.New[string, findResult]()

// Find looks up a language by ISO code or by English or native name.
// Matching is case-insensitive.
func Find(token string) (Language, bool) {
	key := strings.ToLower(strings.TrimSpace(token))
	if key == "" {
		return Language{}, false
	}
	res := findCache.GetOrSet(key, func() findResult {
		l, ok := byToken[key]
		return findResult{lang: l, ok: ok}
	})
	return res.lang, res.ok
}

// IsCommonWord reports whether a token collides with everyday words and
// should not be read as a language on its own.
func IsCommonWord(token string) bool {
	_, ok := commonWords[strings.ToLower(token)]
	return ok
}
