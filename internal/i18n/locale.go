package i18n

import (
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

// Locale is a supported interface language.
type Locale string

const (
	English  Locale = "en"
	Hindi    Locale = "hi"
	Assamese Locale = "as"
	Bengali  Locale = "bn"
)

// English first: the matcher falls back to the first tag.
var supported = []Locale{English, Hindi, Assamese, Bengali}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Hindi,
	language.Make("as"),
	language.Bengali,
})

func Supported() []Locale {
	return append([]Locale(nil), supported...)
}

func (l Locale) Supported() bool {
	for _, s := range supported {
		if l == s {
			return true
		}
	}
	return false
}

// Negotiate picks the best supported locale for the given preferences, which
// may be bare codes ("as") or Accept-Language values ("hi-IN,hi;q=0.9").
// Empty values are skipped; nothing usable yields English.
func Negotiate(prefs ...string) Locale {
	var values []string
	for _, p := range prefs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if l := Locale(strings.ToLower(p)); l.Supported() {
			return l
		}
		values = append(values, p)
	}
	if len(values) == 0 {
		return English
	}
	_, idx := language.MatchStrings(matcher, values...)
	if idx < 0 || idx >= len(supported) {
		return English
	}
	return supported[idx]
}

// DetectLocale guesses the locale of free text from its script. Assamese and
// Bengali share a script; the letters ৰ and ৱ occur only in Assamese.
func DetectLocale(text string) Locale {
	switch whatlanggo.DetectScript(text) {
	case unicode.Devanagari:
		return Hindi
	case unicode.Bengali:
		if strings.ContainsAny(text, "ৰৱ") {
			return Assamese
		}
		return Bengali
	default:
		return English
	}
}
