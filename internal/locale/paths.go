package locale

import "strings"

// pathMappings maps each internal canonical path to its per-locale external
// path. Every canonical path has exactly one external string per supported
// locale; the table is fixed at build time. English external paths equal the
// canonical path, so only divergent locales are listed.
var pathMappings = map[string]map[Locale]string{
	"/":         {Turkish: "/"},
	"/pricing":  {Turkish: "/fiyatlandirma"},
	"/about":    {Turkish: "/hakkimizda"},
	"/contact":  {Turkish: "/iletisim"},
	"/features": {Turkish: "/ozellikler"},
	"/careers":  {Turkish: "/kariyer"},
	"/privacy":  {Turkish: "/gizlilik-politikasi"},
	"/terms":    {Turkish: "/kullanim-kosullari"},
}

// reverseMappings indexes external path per locale back to the canonical path
var reverseMappings = map[Locale]map[string]string{}

func init() {
	for _, l := range Supported {
		reverseMappings[l] = map[string]string{}
	}
	for canonical, externals := range pathMappings {
		for _, l := range Supported {
			external, ok := externals[l]
			if !ok {
				external = canonical
			}
			reverseMappings[l][external] = canonical
		}
	}
}

// CanonicalPaths returns all canonical page paths in the mapping table
func CanonicalPaths() []string {
	paths := make([]string, 0, len(pathMappings))
	for p := range pathMappings {
		paths = append(paths, p)
	}
	return paths
}

// Localize translates an internal canonical path to the external path for
// the given locale, without the locale prefix. Unmapped canonical paths
// pass through unchanged.
func Localize(canonical string, l Locale) string {
	canonical = normalize(canonical)
	if externals, ok := pathMappings[canonical]; ok {
		if external, ok := externals[l]; ok {
			return external
		}
	}
	return canonical
}

// Canonicalize translates an external, locale-specific path back to the
// internal canonical path. Unknown external paths pass through unchanged;
// resolution of unknown pages is deferred to the not-found view.
func Canonicalize(external string, l Locale) string {
	external = normalize(external)
	if canonical, ok := reverseMappings[l][external]; ok {
		return canonical
	}
	return external
}

// PrefixedPath returns the locale-prefixed external path for a canonical
// path, e.g. ("/pricing", tr) -> "/tr/fiyatlandirma".
func PrefixedPath(canonical string, l Locale) string {
	external := Localize(canonical, l)
	if external == "/" {
		return "/" + l.String()
	}
	return "/" + l.String() + external
}

// SplitPrefix splits a request path into its locale segment and the
// remainder. The second return value reports whether a supported locale
// prefix was present.
func SplitPrefix(path string) (Locale, string, bool) {
	path = normalize(path)
	trimmed := strings.TrimPrefix(path, "/")
	segment, rest, _ := strings.Cut(trimmed, "/")
	l, ok := Parse(segment)
	if !ok {
		return Default, path, false
	}
	if rest == "" {
		return l, "/", true
	}
	return l, "/" + rest, true
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" {
		path = strings.TrimRight(path, "/")
	}
	return path
}
