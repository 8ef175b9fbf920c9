package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praisepoint/site-api/internal/assistant"
	"github.com/praisepoint/site-api/internal/consent"
	"github.com/praisepoint/site-api/internal/contact"
	"github.com/praisepoint/site-api/internal/contact/model"
	"github.com/praisepoint/site-api/internal/content"
	"github.com/praisepoint/site-api/internal/locale"
	"github.com/praisepoint/site-api/internal/seo"
	"github.com/praisepoint/site-api/internal/sitemap"
	"github.com/praisepoint/site-api/internal/system/config"
	"github.com/praisepoint/site-api/internal/system/error/serviceerror"
	"github.com/praisepoint/site-api/internal/system/middleware"
	"github.com/praisepoint/site-api/internal/system/utils"
)

// Handlers bundles the per-domain handlers wired into the router
type Handlers struct {
	Pages     *seo.Handler
	Sitemap   *sitemap.Handler
	Contact   *contact.Handler
	Consent   *consent.Handler
	Assistant *assistant.Handler
	Content   *content.Handler
}

// SetupRouter configures all API routes
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	if !cfg.Site.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.CustomRecovery(recoveryHandler))

	router.Use(middleware.CorrelationIDMiddleware())
	if cfg.CORS.Enabled {
		router.Use(middleware.CORSMiddleware(middleware.CORSOptionsFromConfig(&cfg.CORS)))
	}
	router.Use(locale.Middleware())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	api := router.Group("/api")
	{
		api.GET("/sitemap", h.Sitemap.GetSitemap)
		api.GET("/robots", h.Sitemap.GetRobots)

		api.POST("/contact", h.Contact.Submit)
		api.OPTIONS("/contact", h.Contact.Preflight)

		api.POST("/assistant", h.Assistant.Ask)

		api.GET("/consent", h.Consent.GetConsent)
		api.POST("/consent", h.Consent.UpdateConsent)
		api.GET("/consent/scripts", h.Consent.GetScripts)

		api.GET("/content/:kind", h.Content.GetContent)

		api.GET("/pages/:locale/*page", h.Pages.GetPage)
		api.GET("/pages/:locale", h.Pages.GetPage)
	}

	// Locale-prefixed page paths fall through to the page-record handler;
	// unknown slugs get the 404 view rather than an error
	router.NoRoute(h.Pages.ServeLocalizedPath)

	return router
}

// recoveryHandler turns a handler panic into a 500 response. The contact
// endpoint keeps its {ok, error} envelope so form clients can always parse
// the body; everything else gets the standard error shape.
func recoveryHandler(c *gin.Context, _ any) {
	if c.Request.URL.Path == "/api/contact" {
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.SubmitResult{
			OK:    false,
			Error: "internal_server_error",
		})
		return
	}
	utils.SendError(c, &serviceerror.InternalServerError)
}
