package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praisepoint/site-api/internal/assistant"
	"github.com/praisepoint/site-api/internal/consent"
	"github.com/praisepoint/site-api/internal/contact"
	"github.com/praisepoint/site-api/internal/contact/hubspot"
	"github.com/praisepoint/site-api/internal/contact/mailer"
	"github.com/praisepoint/site-api/internal/content"
	"github.com/praisepoint/site-api/internal/seo"
	"github.com/praisepoint/site-api/internal/sitemap"
	"github.com/praisepoint/site-api/internal/system/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Site: config.SiteConfig{
			URL:          "https://www.praisepoint.com",
			Name:         "PraisePoint",
			DefaultImage: "/images/og-default.png",
			ContactEmail: "hello@praisepoint.com",
			FoundingYear: 2021,
			Development:  true,
		},
		Consent: config.ConsentConfig{
			PolicyVersion: "2024-06",
			CookieName:    "pp_consent",
			CookieMaxAge:  15552000,
		},
	}
}

// setupTestRouter wires the full route table with unconfigured outbound
// sinks, matching a bare deployment with no CRM or mail credentials.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store, err := content.NewStore()
	require.NoError(t, err)

	builder := seo.NewBuilder(&cfg.Site)
	contactService := contact.NewService(
		hubspot.NewClient(&cfg.HubSpot, logger),
		mailer.NewResendNotifier(&cfg.Mail, cfg.Site.Name, logger),
		logger,
	)

	return SetupRouter(cfg, Handlers{
		Pages:     seo.NewHandler(builder, &cfg.Site, logger),
		Sitemap:   sitemap.NewHandler(sitemap.NewGenerator(builder), logger),
		Contact:   contact.NewHandler(contactService),
		Consent:   consent.NewHandler(consent.NewService(&cfg.Consent), cfg),
		Assistant: assistant.NewHandler(),
		Content:   content.NewHandler(store),
	})
}

func get(r *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r := setupTestRouter(t)

	w := get(r, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "healthy"}`, w.Body.String())
}

func TestUnprefixedPathRedirects(t *testing.T) {
	r := setupTestRouter(t)

	w := get(r, "/pricing", nil)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/en/pricing", w.Header().Get("Location"))

	w = get(r, "/pricing", map[string]string{"Accept-Language": "tr-TR,tr;q=0.9"})
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/tr/pricing", w.Header().Get("Location"))
}

// The Turkish slug and the English slug are the same page
func TestLocalizedSlugsResolveToSameCanonical(t *testing.T) {
	r := setupTestRouter(t)

	var en, tr seo.PageRecord

	w := get(r, "/en/pricing", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &en))

	w = get(r, "/tr/fiyatlandirma", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tr))

	assert.Equal(t, en.CanonicalPath, tr.CanonicalPath)
	assert.Equal(t, "/pricing", en.CanonicalPath)
	assert.True(t, en.Found)
	assert.True(t, tr.Found)
	assert.NotEqual(t, en.Metadata.Title, tr.Metadata.Title)
}

func TestUnknownSlugServes404View(t *testing.T) {
	r := setupTestRouter(t)

	w := get(r, "/en/no-such-page", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var record seo.PageRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.False(t, record.Found)
	assert.False(t, record.Metadata.Robots.Index)
	assert.False(t, record.Metadata.Robots.Follow)
}

func TestPageRecordEndpoint(t *testing.T) {
	r := setupTestRouter(t)

	w := get(r, "/api/pages/tr/contact", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var record seo.PageRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "/contact", record.CanonicalPath)
	assert.Equal(t, "/tr/iletisim", record.LocalizedPath)
	assert.Equal(t, "https://www.praisepoint.com/tr/iletisim", record.Metadata.Alternates.Canonical)
}

func TestPageRecordEndpoint_UnsupportedLocale(t *testing.T) {
	r := setupTestRouter(t)

	w := get(r, "/api/pages/de/pricing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{
		"error": "unsupported_locale",
		"error_description": "The requested locale is not supported"
	}`, w.Body.String())
}

// A valid submission succeeds even when no CRM or mail sink is
// configured; delivery is best effort.
func TestContactSubmission_EndToEnd(t *testing.T) {
	r := setupTestRouter(t)

	body := `{
		"name": "Ayşe Yılmaz",
		"company": "Acme Lojistik",
		"email": "ayse@acme.example",
		"employees": "51-200",
		"message": "We would like a demo for our Istanbul office.",
		"agree": true
	}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}

func TestSitemapAndRobots(t *testing.T) {
	r := setupTestRouter(t)

	w := get(r, "/api/sitemap", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, w.Header().Get("Cache-Control"), "s-maxage=86400")
	assert.Contains(t, w.Body.String(), "https://www.praisepoint.com/tr/fiyatlandirma")

	w = get(r, "/api/robots", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "Sitemap: https://www.praisepoint.com/api/sitemap")
}

func TestAPIPathsBypassLocaleRewrite(t *testing.T) {
	r := setupTestRouter(t)

	// An unknown API path must 404, never redirect to a locale prefix
	w := get(r, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "resource_not_found")
}

// A handler panic on the contact route must still produce the {ok, error}
// envelope; other routes get the standard error shape.
func TestRecovery_ErrorEnvelopes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(gin.CustomRecovery(recoveryHandler))
	panics := func(c *gin.Context) { panic("boom") }
	r.POST("/api/contact", panics)
	r.GET("/api/sitemap", panics)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"ok": false, "error": "internal_server_error"}`, w.Body.String())

	w = get(r, "/api/sitemap", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{
		"error": "internal_server_error",
		"error_description": "An unexpected error occurred"
	}`, w.Body.String())
}
