package seo

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/praisepoint/site-api/internal/locale"
	"github.com/praisepoint/site-api/internal/system/config"
	"github.com/praisepoint/site-api/internal/system/error/serviceerror"
	"github.com/praisepoint/site-api/internal/system/utils"
)

// PageRecord is the full per-page payload served to the rendering frontend
type PageRecord struct {
	Locale         locale.Locale  `json:"locale"`
	CanonicalPath  string         `json:"canonicalPath"`
	LocalizedPath  string         `json:"localizedPath"`
	Found          bool           `json:"found"`
	Metadata       Metadata       `json:"metadata"`
	StructuredData StructuredData `json:"structuredData"`
}

// StructuredData bundles the JSON-LD records embedded on a page
type StructuredData struct {
	Organization Organization    `json:"organization"`
	WebSite      WebSite         `json:"website"`
	Product      Product         `json:"product"`
	Breadcrumbs  *BreadcrumbList `json:"breadcrumbs,omitempty"`
}

type Handler struct {
	builder *Builder
	site    *config.SiteConfig
	logger  *logrus.Logger
}

// NewHandler creates the pages handler
func NewHandler(builder *Builder, site *config.SiteConfig, logger *logrus.Logger) *Handler {
	return &Handler{builder: builder, site: site, logger: logger}
}

// GetPage handles GET /api/pages/:locale/*page
func (h *Handler) GetPage(c *gin.Context) {
	l, ok := locale.Parse(c.Param("locale"))
	if !ok {
		utils.SendError(c, &serviceerror.UnsupportedLocaleError)
		return
	}

	external := c.Param("page")
	if external == "" {
		external = "/"
	}
	h.servePage(c, l, external)
}

func (h *Handler) servePage(c *gin.Context, l locale.Locale, external string) {
	canonical := locale.Canonicalize(external, l)

	pc, found := CopyFor(canonical, l)
	status := http.StatusOK
	if !found {
		// Unknown slugs resolve to the dedicated 404 view, not an error
		pc = NotFoundCopy(l)
		status = http.StatusNotFound
	}

	record := PageRecord{
		Locale:        l,
		CanonicalPath: canonical,
		LocalizedPath: locale.PrefixedPath(canonical, l),
		Found:         found,
		Metadata: h.builder.Build(PageInput{
			Title:       pc.Title,
			Description: pc.Description,
			Path:        canonical,
			Locale:      l,
			Keywords:    pc.Keywords,
			NoIndex:     !found,
		}),
		StructuredData: h.structuredData(l, canonical, pc),
	}

	c.JSON(status, record)
}

// ServeLocalizedPath serves the page record for a locale-prefixed page
// path that matched no registered route, e.g. GET /tr/fiyatlandirma.
// Unknown slugs resolve to the 404 view; exempt paths get a plain 404.
func (h *Handler) ServeLocalizedPath(c *gin.Context) {
	path := c.Request.URL.Path
	if locale.BypassesRewrite(path) {
		utils.SendError(c, &serviceerror.ResourceNotFoundError)
		return
	}

	l, rest, _ := locale.SplitPrefix(path)
	h.servePage(c, l, rest)
}

func (h *Handler) structuredData(l locale.Locale, canonical string, pc PageCopy) StructuredData {
	sd := StructuredData{
		Organization: h.builder.OrganizationLD(
			h.site.ContactEmail,
			strconv.Itoa(h.site.FoundingYear),
			h.profileLinks(),
		),
		WebSite: h.builder.WebSiteLD(l.BCP47()),
		Product: h.builder.ProductLD(pc.Description),
	}

	if canonical != "/" {
		home, _ := CopyFor("/", l)
		trail := h.builder.BreadcrumbLD([]Crumb{
			{Name: home.Title, Path: locale.PrefixedPath("/", l)},
			{Name: pc.Title, Path: locale.PrefixedPath(canonical, l)},
		})
		sd.Breadcrumbs = &trail
	}

	return sd
}

func (h *Handler) profileLinks() []string {
	var links []string
	if h.site.LinkedInURL != "" {
		links = append(links, h.site.LinkedInURL)
	}
	return links
}
