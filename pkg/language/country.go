package language

import (
	"encoding/json"
	"strings"

	xlang "golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/kasuboski/mediaguess/pkg/cache"
)

// Country identifies a production country inferred from a file name,
// typically distinguishing series remakes like "The Office (US)".
type Country struct {
	Alpha2 string
	Name   string
}

func (c Country) String() string {
	return c.Name
}

func (c Country) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Alpha2)
}

var countryCodes = []string{
	"US", "GB", "FR", "DE", "IT", "ES", "PT", "NL", "BE", "CH",
	"AT", "SE", "NO", "DK", "FI", "IS", "RU", "UA", "PL", "CZ",
	"SK", "HU", "RO", "BG", "GR", "TR", "AU", "NZ", "CA", "MX",
	"BR", "AR", "JP", "CN", "TW", "HK", "KR", "IN", "IE", "ZA",
	"IL",
}

var countryAliases = map[string]string{
	"uk":  "GB",
	"usa": "US",
}

var countryByToken map[string]Country

func init() {
	countryByToken = make(map[string]Country)
	for _, code := range countryCodes {
		region := xlang.MustParseRegion(code)
		c := Country{
			Alpha2: code,
			Name:   display.English.Regions().Name(region),
		}
		addCountryToken(code, c)
		addCountryToken(c.Name, c)
	}
	for alias, code := range countryAliases {
		if c, ok := countryByToken[strings.ToLower(code)]; ok {
			addCountryToken(alias, c)
		}
	}
}

func addCountryToken(token string, c Country) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return
	}
	if _, exists := countryByToken[token]; !exists {
		countryByToken[token] = c
	}
}

var findCountryCache = cache.New[string, countryResult]()

type countryResult struct {
	country Country
	ok      bool
}

// FindCountry looks up a country by alpha2 code or English name.
// Matching is case-insensitive.
func FindCountry(token string) (Country, bool) {
	key := strings.ToLower(strings.TrimSpace(token))
	if key == "" {
		return Country{}, false
	}
	res := findCountryCache.GetOrSet(key, func() countryResult {
		c, ok := countryByToken[key]
		return countryResult{country: c, ok: ok}
	})
	return res.country, res.ok
}
