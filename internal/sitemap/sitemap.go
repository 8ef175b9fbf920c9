package sitemap

import (
	"encoding/xml"
	"fmt"

	"github.com/praisepoint/site-api/internal/locale"
	"github.com/praisepoint/site-api/internal/seo"
)

// ChangeFreq is a sitemap change-frequency hint
type ChangeFreq string

const (
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
)

// StaticPageEntry describes one canonical page in the sitemap
type StaticPageEntry struct {
	Path       string
	Priority   float64
	ChangeFreq ChangeFreq
}

// staticPages is the fixed page list cross-joined with locales at
// generation time
var staticPages = []StaticPageEntry{
	{Path: "/", Priority: 1.0, ChangeFreq: Weekly},
	{Path: "/pricing", Priority: 0.9, ChangeFreq: Weekly},
	{Path: "/features", Priority: 0.9, ChangeFreq: Weekly},
	{Path: "/about", Priority: 0.7, ChangeFreq: Monthly},
	{Path: "/contact", Priority: 0.7, ChangeFreq: Monthly},
	{Path: "/careers", Priority: 0.6, ChangeFreq: Weekly},
	{Path: "/privacy", Priority: 0.3, ChangeFreq: Yearly},
	{Path: "/terms", Priority: 0.3, ChangeFreq: Yearly},
}

type xmlAlternate struct {
	XMLName  xml.Name `xml:"xhtml:link"`
	Rel      string   `xml:"rel,attr"`
	HrefLang string   `xml:"hreflang,attr"`
	Href     string   `xml:"href,attr"`
}

type xmlURL struct {
	XMLName    xml.Name       `xml:"url"`
	Loc        string         `xml:"loc"`
	ChangeFreq string         `xml:"changefreq"`
	Priority   string         `xml:"priority"`
	Alternates []xmlAlternate `xml:"xhtml:link"`
}

type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	XHTMLNS string   `xml:"xmlns:xhtml,attr"`
	URLs    []xmlURL `xml:"url"`
}

// Generator renders the sitemap and robots documents
type Generator struct {
	builder *seo.Builder
}

// NewGenerator creates a sitemap generator absolutizing URLs against the
// site metadata builder
func NewGenerator(builder *seo.Builder) *Generator {
	return &Generator{builder: builder}
}

// Pages returns the static page list
func Pages() []StaticPageEntry {
	return staticPages
}

// GenerateSitemapXML emits one <url> entry per (page, locale) pair. Each
// entry's alternate-language links enumerate both locales' absolute URLs
// for the same logical page, including the entry itself (self-referencing
// hreflang).
func (g *Generator) GenerateSitemapXML() (string, error) {
	set := xmlURLSet{
		XMLNS:   "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTMLNS: "http://www.w3.org/1999/xhtml",
	}

	for _, page := range staticPages {
		alternates := make([]xmlAlternate, 0, len(locale.Supported))
		for _, l := range locale.Supported {
			alternates = append(alternates, xmlAlternate{
				Rel:      "alternate",
				HrefLang: l.String(),
				Href:     g.builder.Absolutize(locale.PrefixedPath(page.Path, l)),
			})
		}

		for _, l := range locale.Supported {
			set.URLs = append(set.URLs, xmlURL{
				Loc:        g.builder.Absolutize(locale.PrefixedPath(page.Path, l)),
				ChangeFreq: string(page.ChangeFreq),
				Priority:   fmt.Sprintf("%.1f", page.Priority),
				Alternates: alternates,
			})
		}
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal sitemap: %w", err)
	}

	return xml.Header + string(body) + "\n", nil
}
