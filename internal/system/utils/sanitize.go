package utils

import (
	"html"
	"net/url"
	"strings"
	"unicode"
)

// SanitizeString strips control characters (newline and tab excepted) and
// HTML-escapes the result. Used when embedding user-submitted values in
// notification email bodies.
func SanitizeString(input string) string {
	trimmed := strings.TrimSpace(input)
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, trimmed)
	return html.EscapeString(cleaned)
}

// IsValidURI reports whether the value is an absolute URL carrying both a
// scheme and a host.
func IsValidURI(uri string) bool {
	parsed, err := url.Parse(uri)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}
