package seo

import (
	"strings"

	"github.com/praisepoint/site-api/internal/locale"
	"github.com/praisepoint/site-api/internal/system/config"
)

// PageInput describes a page for metadata generation
type PageInput struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Path        string        `json:"path"`
	Image       string        `json:"image,omitempty"`
	Locale      locale.Locale `json:"locale"`
	Keywords    []string      `json:"keywords,omitempty"`
	NoIndex     bool          `json:"noindex,omitempty"`
}

// OpenGraph holds Open Graph metadata
type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	SiteName    string `json:"siteName"`
	Image       string `json:"image"`
	Locale      string `json:"locale"`
	Type        string `json:"type"`
}

// Twitter holds Twitter Card metadata
type Twitter struct {
	Card        string `json:"card"`
	Site        string `json:"site,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Alternates holds canonical and alternate-language links
type Alternates struct {
	Canonical string            `json:"canonical"`
	Languages map[string]string `json:"languages"`
}

// Robots holds indexing directives
type Robots struct {
	Index  bool `json:"index"`
	Follow bool `json:"follow"`
}

// Verification holds search-engine site verification tokens
type Verification struct {
	Google string `json:"google,omitempty"`
	Yandex string `json:"yandex,omitempty"`
	Yahoo  string `json:"yahoo,omitempty"`
}

// Metadata is the complete metadata record for a page
type Metadata struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Keywords     []string     `json:"keywords,omitempty"`
	Alternates   Alternates   `json:"alternates"`
	OpenGraph    OpenGraph    `json:"openGraph"`
	Twitter      Twitter      `json:"twitter"`
	Robots       Robots       `json:"robots"`
	Verification Verification `json:"verification,omitempty"`
}

// Builder produces metadata records absolutized against a configured
// site origin. Build is pure: identical input yields identical output.
type Builder struct {
	origin        string
	siteName      string
	defaultImage  string
	twitterHandle string
	verification  config.VerificationConfig
}

// NewBuilder creates a metadata builder from the site configuration
func NewBuilder(site *config.SiteConfig) *Builder {
	return &Builder{
		origin:        site.Origin(),
		siteName:      site.Name,
		defaultImage:  site.DefaultImage,
		twitterHandle: site.TwitterHandle,
		verification:  site.Verification,
	}
}

// Build produces the complete metadata record for a page
func (b *Builder) Build(in PageInput) Metadata {
	title := in.Title
	if title == "" {
		title = b.siteName
	} else if !strings.Contains(title, b.siteName) {
		title = title + " | " + b.siteName
	}

	image := in.Image
	if image == "" {
		image = b.defaultImage
	}
	image = b.Absolutize(image)

	canonical := b.Absolutize(locale.PrefixedPath(in.Path, in.Locale))

	// Both supported locales are always present, regardless of which
	// locale was requested
	languages := make(map[string]string, len(locale.Supported))
	for _, l := range locale.Supported {
		languages[l.String()] = b.Absolutize(locale.PrefixedPath(in.Path, l))
	}

	return Metadata{
		Title:       title,
		Description: in.Description,
		Keywords:    in.Keywords,
		Alternates: Alternates{
			Canonical: canonical,
			Languages: languages,
		},
		OpenGraph: OpenGraph{
			Title:       title,
			Description: in.Description,
			URL:         canonical,
			SiteName:    b.siteName,
			Image:       image,
			Locale:      in.Locale.OpenGraphLocale(),
			Type:        "website",
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Site:        b.twitterHandle,
			Title:       title,
			Description: in.Description,
			Image:       image,
		},
		Robots: Robots{
			Index:  !in.NoIndex,
			Follow: !in.NoIndex,
		},
		Verification: Verification{
			Google: b.verification.Google,
			Yandex: b.verification.Yandex,
			Yahoo:  b.verification.Yahoo,
		},
	}
}

// Absolutize resolves a path or URL against the site origin
func (b *Builder) Absolutize(pathOrURL string) string {
	if pathOrURL == "" {
		return b.origin
	}
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL
	}
	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return b.origin + pathOrURL
}

// Origin returns the configured site origin
func (b *Builder) Origin() string {
	return b.origin
}

// SiteName returns the configured site name
func (b *Builder) SiteName() string {
	return b.siteName
}
