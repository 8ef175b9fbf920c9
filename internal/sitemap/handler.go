package sitemap

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/praisepoint/site-api/internal/system/constants"
	"github.com/praisepoint/site-api/internal/system/error/serviceerror"
	"github.com/praisepoint/site-api/internal/system/utils"
)

type Handler struct {
	generator *Generator
	logger    *logrus.Logger
}

// NewHandler creates the sitemap/robots handler
func NewHandler(generator *Generator, logger *logrus.Logger) *Handler {
	return &Handler{generator: generator, logger: logger}
}

// GetSitemap handles GET /api/sitemap
func (h *Handler) GetSitemap(c *gin.Context) {
	xmlBody, err := h.generator.GenerateSitemapXML()
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate sitemap")
		utils.SendError(c, &serviceerror.InternalServerError)
		return
	}

	c.Header(constants.CacheControlHeaderName, constants.SitemapCacheControl)
	c.Data(http.StatusOK, constants.ContentTypeXML, []byte(xmlBody))
}

// GetRobots handles GET /api/robots
func (h *Handler) GetRobots(c *gin.Context) {
	c.Header(constants.CacheControlHeaderName, constants.SitemapCacheControl)
	c.Data(http.StatusOK, constants.ContentTypePlainText, []byte(h.generator.GenerateRobotsTxt()))
}
