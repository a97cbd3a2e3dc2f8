package language

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	tests := []struct {
		token string
		want  string
		ok    bool
	}{
		{"fr", "French", true},
		{"fra", "French", true},
		{"fre", "French", true},
		{"french", "French", true},
		{"français", "French", true},
		{"FRENCH", "French", true},
		{"en", "English", true},
		{"eng", "English", true},
		{"ger", "German", true},
		{"deu", "German", true},
		{"spanish", "Spanish", true},
		{"jpn", "Japanese", true},
		{"xx", "", false},
		{"", "", false},
		{"bluray", "", false},
	}
	for _, tt := range tests {
		got, ok := Find(tt.token)
		assert.Equal(t, tt.ok, ok, tt.token)
		if tt.ok {
			assert.Equal(t, tt.want, got.Name, tt.token)
		}
	}
}

func TestFindAlpha3(t *testing.T) {
	l, ok := Find("french")
	require.True(t, ok)
	assert.Equal(t, "fr", l.Alpha2)
	assert.Equal(t, "fra", l.Alpha3)
}

func TestFindIsCached(t *testing.T) {
	first, ok1 := Find("italian")
	second, ok2 := Find("ITALIAN")
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
}

func TestIsCommonWord(t *testing.T) {
	assert.True(t, IsCommonWord("it"))
	assert.True(t, IsCommonWord("IT"))
	assert.True(t, IsCommonWord("the"))
	assert.False(t, IsCommonWord("french"))
	assert.False(t, IsCommonWord("vostfr"))
}

func TestLanguageJSON(t *testing.T) {
	l, ok := Find("fr")
	require.True(t, ok)
	raw, err := json.Marshal(l)
	require.NoError(t, err)
	assert.Equal(t, `"French"`, string(raw))
}

func TestFindCountry(t *testing.T) {
	tests := []struct {
		token string
		want  string
		ok    bool
	}{
		{"US", "US", true},
		{"us", "US", true},
		{"usa", "US", true},
		{"United States", "US", true},
		{"uk", "GB", true},
		{"GB", "GB", true},
		{"France", "FR", true},
		{"ZZ", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := FindCountry(tt.token)
		assert.Equal(t, tt.ok, ok, tt.token)
		if tt.ok {
			assert.Equal(t, tt.want, got.Alpha2, tt.token)
		}
	}
}

func TestCountryJSON(t *testing.T) {
	c, ok := FindCountry("united states")
	require.True(t, ok)
	raw, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `"US"`, string(raw))
}
