package locale

import (
	"golang.org/x/text/language"
)

// Locale is a supported language/region variant of the site
type Locale string

const (
	English Locale = "en"
	Turkish Locale = "tr"

	// Default is the locale used when no locale can be determined
	Default = English
)

// Supported lists all supported locales in stable order
var Supported = []Locale{English, Turkish}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Turkish,
})

// Parse maps a path segment to a supported locale.
// The second return value reports whether the segment was recognized.
func Parse(segment string) (Locale, bool) {
	switch segment {
	case string(English):
		return English, true
	case string(Turkish):
		return Turkish, true
	}
	return Default, false
}

// IsSupported reports whether the locale is one of the supported set
func IsSupported(l Locale) bool {
	_, ok := Parse(string(l))
	return ok
}

// FromAcceptLanguage picks the best supported locale for an
// Accept-Language header value. An empty or unparseable header
// yields the default locale.
func FromAcceptLanguage(header string) Locale {
	if header == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, index, _ := matcher.Match(tags...)
	if index == 1 {
		return Turkish
	}
	return English
}

// BCP47 returns the full language tag used in metadata and hreflang links
func (l Locale) BCP47() string {
	switch l {
	case Turkish:
		return "tr-TR"
	default:
		return "en-US"
	}
}

// OpenGraphLocale returns the locale in Open Graph underscore notation
func (l Locale) OpenGraphLocale() string {
	switch l {
	case Turkish:
		return "tr_TR"
	default:
		return "en_US"
	}
}

func (l Locale) String() string {
	return string(l)
}
